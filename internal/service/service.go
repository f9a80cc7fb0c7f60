package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/toruinaba/structools/internal/batch"
	"github.com/toruinaba/structools/internal/definition"
	"github.com/toruinaba/structools/internal/logging"
	"github.com/toruinaba/structools/internal/section"
)

// ErrNotFound is returned for an unknown section ID
var ErrNotFound = errors.New("section not found")

// WebService is the boundary the HTTP adapter serves: sections are
// created once, stored under an ID and queried by that ID.
type WebService interface {
	CreateSection(ctx context.Context, def definition.Definition) (Handle, error)
	CalculateProperties(ctx context.Context, id string) (section.Properties, error)
	CheckWidthThickness(ctx context.Context, id, grade string) (section.WidthThicknessCheck, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Handle, error)
	Evaluate(ctx context.Context, defs []definition.Definition) ([]batch.Result, error)
}

// Handle identifies a stored section
type Handle struct {
	ID        string       `json:"id"`
	Name      string       `json:"name,omitempty"`
	Kind      section.Kind `json:"kind"`
	Grade     string       `json:"grade,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

type entry struct {
	handle  Handle
	section section.Section
}

// Service keeps sections in memory. Sections are immutable, so readers
// only hold the lock for the map lookup.
type Service struct {
	mu      sync.RWMutex
	entries map[string]*entry

	logger  *logging.Logger
	workers int
	now     func() time.Time
	newID   func() string
}

var _ WebService = (*Service)(nil)

// Option configures a Service
type Option func(*Service)

// WithWorkers sets the batch evaluation worker count
func WithWorkers(n int) Option {
	return func(s *Service) { s.workers = n }
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates an empty service
func New(logger *logging.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	s := &Service{
		entries: make(map[string]*entry),
		logger:  logger.Named("service"),
		workers: batch.DefaultWorkers,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSection validates the definition and stores the section
func (s *Service) CreateSection(ctx context.Context, def definition.Definition) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return Handle{}, err
	}

	sec, err := def.Build()
	if err != nil {
		s.logger.Debug("rejected section", zap.String("kind", def.Kind), zap.Error(err))
		return Handle{}, err
	}

	h := Handle{
		ID:        s.newID(),
		Name:      def.Name,
		Kind:      sec.Kind(),
		Grade:     def.Grade,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.entries[h.ID] = &entry{handle: h, section: sec}
	s.mu.Unlock()

	s.logger.Info("section created", zap.String("id", h.ID), zap.String("kind", string(h.Kind)))
	return h, nil
}

// CalculateProperties returns the properties of a stored section
func (s *Service) CalculateProperties(ctx context.Context, id string) (section.Properties, error) {
	e, err := s.lookup(ctx, id)
	if err != nil {
		return section.Properties{}, err
	}
	return section.Calculate(e.section), nil
}

// CheckWidthThickness runs the width-thickness check of a stored steel
// section. An empty grade falls back to the grade the section was
// created with, then to SN400.
func (s *Service) CheckWidthThickness(ctx context.Context, id, grade string) (section.WidthThicknessCheck, error) {
	e, err := s.lookup(ctx, id)
	if err != nil {
		return section.WidthThicknessCheck{}, err
	}

	checker, ok := e.section.(section.WidthThicknessChecker)
	if !ok {
		return section.WidthThicknessCheck{}, fmt.Errorf("%w: %s has no width-thickness check",
			section.ErrUnsupportedShape, e.handle.Kind)
	}
	if grade == "" {
		grade = e.handle.Grade
	}
	return checker.CheckWidthThickness(grade)
}

// Delete removes a stored section
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	_, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.logger.Info("section deleted", zap.String("id", id))
	return nil
}

// List returns the stored sections, oldest first
func (s *Service) List(ctx context.Context) ([]Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	handles := make([]Handle, 0, len(s.entries))
	for _, e := range s.entries {
		handles = append(handles, e.handle)
	}
	s.mu.RUnlock()

	sort.Slice(handles, func(i, j int) bool {
		if !handles[i].CreatedAt.Equal(handles[j].CreatedAt) {
			return handles[i].CreatedAt.Before(handles[j].CreatedAt)
		}
		return handles[i].ID < handles[j].ID
	})
	return handles, nil
}

// Len returns the number of stored sections
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Evaluate calculates definitions without storing them
func (s *Service) Evaluate(ctx context.Context, defs []definition.Definition) ([]batch.Result, error) {
	start := s.now()
	results, err := batch.Evaluate(ctx, defs, s.workers)
	if err != nil {
		return nil, err
	}

	sum := batch.Summarize(results)
	s.logger.Info("batch evaluated",
		zap.Int("total", sum.Total),
		zap.Int("failed", sum.Failed),
		zap.Int("ng", sum.NG),
		zap.Duration("elapsed", s.now().Sub(start)))
	return results, nil
}

func (s *Service) lookup(ctx context.Context, id string) (*entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}
