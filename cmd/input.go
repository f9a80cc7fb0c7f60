package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toruinaba/structools/internal/definition"
	"github.com/toruinaba/structools/internal/section"
	"github.com/toruinaba/structools/internal/service"
)

// sectionInput collects a section from flags or from a definition file
type sectionInput struct {
	kind  string
	dims  map[string]string
	rebar string
	grade string

	file string
	name string
}

func (in *sectionInput) register(cmd *cobra.Command) {
	kinds := make([]string, 0, len(section.Kinds()))
	for _, k := range section.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd.Flags().StringVarP(&in.kind, "kind", "k", "", "Section kind ("+strings.Join(kinds, ", ")+")")
	cmd.Flags().StringToStringVarP(&in.dims, "dim", "d", nil, "Dimensions in mm, e.g. h=400,b=200,t_w=8,t_f=13")
	cmd.Flags().StringVar(&in.rebar, "rebar", "", "RC reinforcement layers as y:area[:desc];... (mm, mm²)")
	cmd.Flags().StringVarP(&in.grade, "grade", "g", "", "Steel grade (SN400, SN490, SM490, SM520)")

	cmd.Flags().StringVarP(&in.file, "file", "f", "", "Definition file (json, yaml, xlsx)")
	cmd.Flags().StringVar(&in.name, "name", "", "Only use the named section from --file")
}

// definitions returns the sections named on the command line
func (in *sectionInput) definitions() ([]definition.Definition, error) {
	if in.file != "" {
		return in.fromFile()
	}
	if in.kind == "" {
		return nil, errors.New("either --kind or --file is required")
	}

	def := definition.Definition{
		Kind:       in.kind,
		Grade:      in.grade,
		Dimensions: make(map[string]any, len(in.dims)),
	}
	for k, v := range in.dims {
		def.Dimensions[strings.ToLower(strings.TrimSpace(k))] = definition.ParseValue(v)
	}
	if in.rebar != "" {
		layers, err := definition.ParseLayers(in.rebar)
		if err != nil {
			return nil, err
		}
		def.Reinforcement = layers
	}
	return []definition.Definition{def}, nil
}

func (in *sectionInput) fromFile() ([]definition.Definition, error) {
	defs, err := definition.LoadFile(in.file)
	if err != nil {
		return nil, err
	}

	if in.grade != "" {
		for i := range defs {
			defs[i].Grade = in.grade
		}
	}
	if in.name == "" {
		return defs, nil
	}

	for _, d := range defs {
		if d.Name == in.name {
			return []definition.Definition{d}, nil
		}
	}
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Label()
	}
	sort.Strings(names)
	return nil, fmt.Errorf("%w: no section %q in %s (have %s)",
		service.ErrNotFound, in.name, in.file, strings.Join(names, ", "))
}
