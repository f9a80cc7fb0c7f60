package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/toruinaba/structools/internal/definition"
	"github.com/toruinaba/structools/internal/section"
)

// DefaultWorkers is used when Evaluate is given no worker count
const DefaultWorkers = 4

// Result is the outcome of evaluating one definition
type Result struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`

	Properties     *section.Properties          `json:"properties,omitempty" yaml:"properties,omitempty"`
	WidthThickness *section.WidthThicknessCheck `json:"width_thickness,omitempty" yaml:"width_thickness,omitempty"`

	Err   error  `json:"-" yaml:"-"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the definition was evaluated without error
func (r Result) OK() bool { return r.Err == nil }

// Summary counts the results
type Summary struct {
	Total  int `json:"total" yaml:"total"`
	Failed int `json:"failed" yaml:"failed"`
	// NG counts sections that failed a width-thickness check
	NG int `json:"ng" yaml:"ng"`
}

// Summarize counts failed items and NG width-thickness checks
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case !r.OK():
			s.Failed++
		case r.WidthThickness != nil && !r.WidthThickness.OK():
			s.NG++
		}
	}
	return s
}

// Evaluate builds and calculates every definition using at most workers
// goroutines. Results keep the input order; a bad definition is recorded
// in its Result and does not stop the others. The returned error is only
// set when ctx is cancelled.
func Evaluate(ctx context.Context, defs []definition.Definition, workers int) ([]Result, error) {
	if workers < 1 {
		workers = DefaultWorkers
	}

	results := make([]Result, len(defs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, def := range defs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = EvaluateOne(def)
			results[i].Index = i
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// EvaluateOne builds a single definition, calculates its properties and,
// for steel sections, checks its width-thickness ratios
func EvaluateOne(def definition.Definition) Result {
	r := Result{Name: def.Label(), Kind: def.Kind}

	s, err := def.Build()
	if err != nil {
		return r.fail(err)
	}
	r.Kind = string(s.Kind())

	props := section.Calculate(s)
	r.Properties = &props

	if checker, ok := s.(section.WidthThicknessChecker); ok {
		check, err := checker.CheckWidthThickness(def.Grade)
		if err != nil {
			return r.fail(err)
		}
		r.WidthThickness = &check
	}
	return r
}

func (r Result) fail(err error) Result {
	r.Err = err
	r.Error = err.Error()
	return r
}
