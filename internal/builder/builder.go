package builder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pasraylib/projgen/internal/builder/gen"
	"github.com/pasraylib/projgen/internal/msg"
	"github.com/pasraylib/projgen/internal/project"
)

type Options struct {
	Root      string // directory the project paths are relative to
	Generator string // one of the gen.Generator* names
	LibName   string
	Out       io.Writer // progress lines, os.Stdout when nil
}

// Builder writes the project files for a list of resolved projects
type Builder struct {
	root    string
	libName string
	gen     gen.Generator
	out     io.Writer
}

func New(opts Options) (*Builder, error) {
	g, err := gen.New(opts.Generator)
	if err != nil {
		return nil, err
	}
	if opts.LibName == "" {
		opts.LibName = project.DefaultLibName
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Builder{root: opts.Root, libName: opts.LibName, gen: g, out: opts.Out}, nil
}

// Render returns the documents for a single project without touching the disk
func (b *Builder) Render(p project.Project) []gen.File {
	return b.gen.Files(gen.NewParams(p, b.libName))
}

// writeProject writes every document of p into its directory. The directory
// must already exist.
func (b *Builder) writeProject(p project.Project) error {
	dir := filepath.Join(b.root, p.Dir)
	for _, f := range b.Render(p) {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Build processes projects in order and stops at the first error. Projects
// written before the error keep their new files.
func (b *Builder) Build(projects []project.Project) error {
	for _, p := range projects {
		fmt.Fprintf(b.out, "work with: \"%s\"\n", p.Name)
		if err := b.writeProject(p); err != nil {
			return fmt.Errorf("failed to write project %q: %w", p.Name, err)
		}
	}
	msg.Info("generated %d projects", len(projects))
	return nil
}
