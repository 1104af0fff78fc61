package project

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Manifest is an on-disk replacement for Samples:
//
//	lib = "libraylib.420.dylib"
//
//	[[project]]
//	path = "shaders/shaders_basic_lighting"
//	tags = ["rlights"]
type Manifest struct {
	Lib      string            `toml:"lib"`
	Projects []ManifestProject `toml:"project"`
}

// ManifestProject defines a [[project]] entry
type ManifestProject struct {
	Path string   `toml:"path"`
	Tags []string `toml:"tags"`
}

func ParseManifest(rdr io.Reader) (*Manifest, error) {
	m := new(Manifest)
	dec := toml.NewDecoder(rdr)
	dec.DisallowUnknownFields()
	if err := dec.Decode(m); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			return nil, errors.New(derr.String())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, errors.New(serr.String())
		}
		return nil, err
	}
	return m, nil
}

// ParseManifestFromFile parses a manifest from a filepath
func ParseManifestFromFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseManifest(bufio.NewReader(f))
}

// Descriptors validates the manifest entries and converts them, keeping order
func (m *Manifest) Descriptors() ([]Descriptor, error) {
	list := make([]Descriptor, 0, len(m.Projects))
	for i, p := range m.Projects {
		if strings.Trim(p.Path, `/\ `) == "" {
			return nil, fmt.Errorf("project #%d: %w", i+1, ErrEmptyPath)
		}
		var tags TagSet
		for _, s := range p.Tags {
			t, err := ParseTag(s)
			if err != nil {
				return nil, fmt.Errorf("project %q: %w", p.Path, err)
			}
			tags = append(tags, t)
		}
		list = append(list, Descriptor{Path: p.Path, Tags: Tags(tags...)})
	}
	return list, nil
}

// LoadManifest reads a manifest file and returns its descriptors and library
// name. The library name is empty when the manifest does not set one.
func LoadManifest(path string) ([]Descriptor, string, error) {
	m, err := ParseManifestFromFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	list, err := m.Descriptors()
	if err != nil {
		return nil, "", fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return list, m.Lib, nil
}
