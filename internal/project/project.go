package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

var (
	ErrUnknownTag = errors.New("unknown extra-library tag")
	ErrEmptyPath  = errors.New("empty project path")
)

// Tag selects an optional helper unit compiled into a project
type Tag string

const (
	TagReasings Tag = "reasings" // easing functions, ../../reasings.pas
	TagRlights  Tag = "rlights"  // lighting helper next to the project
	TagCthreads Tag = "cthreads" // native thread manager on unix
)

// KnownTags lists the tag vocabulary in the order renderers test it
var KnownTags = []Tag{TagReasings, TagRlights, TagCthreads}

func ParseTag(s string) (Tag, error) {
	t := Tag(strings.TrimSpace(s))
	if !slices.Contains(KnownTags, t) {
		return "", fmt.Errorf("%w %q, known tags: %s", ErrUnknownTag, s, joinTags(KnownTags))
	}
	return t, nil
}

// TagSet is an ordered set of tags. The zero value is empty.
type TagSet []Tag

// Tags builds a TagSet, dropping duplicates while keeping first-seen order
func Tags(tags ...Tag) TagSet {
	var set TagSet
	for _, t := range tags {
		if !set.Has(t) {
			set = append(set, t)
		}
	}
	return set
}

func (s TagSet) Has(t Tag) bool { return slices.Contains(s, t) }

func (s TagSet) Strings() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = string(t)
	}
	return out
}

func (s TagSet) String() string { return joinTags(s) }

func joinTags(tags []Tag) string {
	return strings.Join(TagSet(tags).Strings(), ", ")
}

// Descriptor names one example directory (relative, slash separated) and the
// helper units it needs
type Descriptor struct {
	Path string
	Tags TagSet
}

// Project is a resolved Descriptor
type Project struct {
	Dir   string
	Name  string
	Tags  TagSet
	Index int // 1-based position in the full descriptor list
}

// Category returns the first path segment, e.g. "core" for core/core_basic_window
func (p Project) Category() string {
	first, _, _ := strings.Cut(filepath.ToSlash(filepath.Clean(p.Dir)), "/")
	return first
}

// Resolve derives the project name from the last path component. The path
// must have a non-empty last component; this is not checked.
func (d Descriptor) Resolve(index int) Project {
	dir := filepath.FromSlash(d.Path)
	return Project{
		Dir:   dir,
		Name:  filepath.Base(filepath.Clean(dir)),
		Tags:  Tags(d.Tags...),
		Index: index,
	}
}

// Resolve resolves a whole list, numbering it from 1 in order
func Resolve(list []Descriptor) []Project {
	projects := make([]Project, len(list))
	for i, d := range list {
		projects[i] = d.Resolve(i + 1)
	}
	return projects
}
