package project

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// SelectEnv is what a --filter expression sees for each project
type SelectEnv struct {
	Name     string   `expr:"name"`
	Path     string   `expr:"path"`
	Category string   `expr:"category"`
	Tags     []string `expr:"tags"`
	Index    int      `expr:"index"`
}

func newSelectEnv(p Project) SelectEnv {
	return SelectEnv{
		Name:     p.Name,
		Path:     filepath.ToSlash(p.Dir),
		Category: p.Category(),
		Tags:     p.Tags.Strings(),
		Index:    p.Index,
	}
}

// Selector narrows a resolved project list. A project is kept when it matches
// any of the globs (or there are none) and the filter expression (if any)
// evaluates to true. Indices are never renumbered.
type Selector struct {
	globs   []string
	program *vm.Program
}

func NewSelector(globs []string, filter string) (*Selector, error) {
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("invalid glob pattern %q", g)
		}
	}
	s := &Selector{globs: globs}
	if filter != "" {
		program, err := expr.Compile(filter, expr.Env(SelectEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("failed to compile filter %q: %w", filter, err)
		}
		s.program = program
	}
	return s, nil
}

func (s *Selector) Match(p Project) (bool, error) {
	env := newSelectEnv(p)
	if len(s.globs) > 0 {
		matched := false
		for _, g := range s.globs {
			if ok, _ := doublestar.Match(g, env.Path); ok {
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}
	if s.program == nil {
		return true, nil
	}
	result, err := expr.Run(s.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to run filter for %q: %w", p.Name, err)
	}
	matched, _ := result.(bool)
	return matched, nil
}

func (s *Selector) Select(projects []Project) ([]Project, error) {
	var out []Project
	for _, p := range projects {
		ok, err := s.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}
