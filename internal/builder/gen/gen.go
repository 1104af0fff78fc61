package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pasraylib/projgen/internal/project"
)

const (
	GeneratorLazarus = "lazarus"
	GeneratorDelphi  = "delphi"
	GeneratorAll     = "all"
)

// Params is everything a renderer depends on
type Params struct {
	Name    string
	LibName string
	Tags    project.TagSet
	Index   int
}

func NewParams(p project.Project, libName string) Params {
	return Params{Name: p.Name, LibName: libName, Tags: p.Tags, Index: p.Index}
}

// File is one rendered document, Name is relative to the project directory
type File struct {
	Name    string
	Content string
}

type Generator interface {
	Files(p Params) []File
}

// Multi runs generators in order and concatenates their files
type Multi []Generator

func (m Multi) Files(p Params) []File {
	var files []File
	for _, g := range m {
		files = append(files, g.Files(p)...)
	}
	return files
}

// Generators maps each --gen value to its help text
var Generators = map[string]string{
	GeneratorLazarus: "Lazarus .lpi/.lpr files",
	GeneratorDelphi:  "Delphi .dproj/.dpr files",
	GeneratorAll:     "Lazarus and Delphi files (default)",
}

func New(name string) (Generator, error) {
	switch name {
	case GeneratorLazarus:
		return LazarusGen{}, nil
	case GeneratorDelphi:
		return DelphiGen{}, nil
	case GeneratorAll:
		return Multi{LazarusGen{}, DelphiGen{}}, nil
	default:
		known := make([]string, 0, len(Generators))
		for k := range Generators {
			known = append(known, k)
		}
		slices.Sort(known)
		return nil, fmt.Errorf("unknown generator %q, known generators: %s", name, strings.Join(known, ", "))
	}
}
