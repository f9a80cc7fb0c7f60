package definition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .json, .yaml, .yml and .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported definition file format")

// document is the on-disk layout: either a single definition at the top
// level or a list under "sections".
type document struct {
	Definition `yaml:",inline"`
	Sections   []Definition `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// sectionList is the layout Save writes
type sectionList struct {
	Sections []Definition `json:"sections" yaml:"sections"`
}

// LoadFile reads the definitions in a JSON, YAML or XLSX file.
// Unnamed definitions are named after the file and their position.
func LoadFile(path string) ([]Definition, error) {
	var (
		defs []Definition
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		defs, err = readText(path, decodeJSON)
	case ".yaml", ".yml":
		defs, err = readText(path, decodeYAML)
	case ".xlsx":
		defs, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("%s: no sections defined", path)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for i := range defs {
		if defs[i].Name == "" {
			defs[i].Name = fmt.Sprintf("%s#%d", base, i+1)
		}
	}
	return defs, nil
}

// Glob expands a pattern that may contain ** into the matching files,
// sorted
func Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// LoadAll loads every definition file matched by the patterns, in
// pattern order. A pattern that matches nothing is an error.
func LoadAll(patterns ...string) ([]Definition, error) {
	var all []Definition
	for _, pattern := range patterns {
		files, err := Glob(pattern)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		for _, f := range files {
			defs, err := LoadFile(f)
			if err != nil {
				return nil, err
			}
			all = append(all, defs...)
		}
	}
	return all, nil
}

// Save writes definitions in the format given by the file extension
func Save(path string, defs []Definition) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err := json.MarshalIndent(sectionList{Sections: defs}, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(path, append(data, '\n'), 0o644)
	case ".yaml", ".yml":
		data, err := yaml.Marshal(sectionList{Sections: defs})
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	case ".xlsx":
		return writeXLSX(path, defs)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func readText(path string, decode func([]byte) ([]Definition, error)) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

// decodeJSON accepts a single definition, {"sections": [...]} or a bare
// array. Numbers are kept as json.Number.
func decodeJSON(data []byte) ([]Definition, error) {
	data = bytes.TrimSpace(data)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if len(data) > 0 && data[0] == '[' {
		var defs []Definition
		if err := dec.Decode(&defs); err != nil {
			return nil, err
		}
		return defs, nil
	}

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.definitions()
}

// decodeYAML accepts the same layouts as decodeJSON
func decodeYAML(data []byte) ([]Definition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	if node.Kind == yaml.SequenceNode {
		var defs []Definition
		if err := node.Decode(&defs); err != nil {
			return nil, err
		}
		return defs, nil
	}

	var doc document
	if err := node.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.definitions()
}

func (d document) definitions() ([]Definition, error) {
	if len(d.Sections) > 0 {
		if d.Kind != "" {
			return nil, errors.New(`a top-level "kind" cannot be combined with "sections"`)
		}
		return d.Sections, nil
	}
	if d.Kind == "" {
		return nil, nil
	}
	return []Definition{d.Definition}, nil
}
