package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toruinaba/structools/internal/definition"
	"github.com/toruinaba/structools/internal/section"
)

var hSection = definition.Definition{
	Name:       "G1",
	Kind:       "h_section",
	Dimensions: map[string]any{"h": 400, "b": 200, "t_w": 8, "t_f": 13},
}

func newTestService() *Service {
	var tick int64
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	return New(nil, WithWorkers(2), WithClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}))
}

func TestCreateAndCalculate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	h, err := svc.CreateSection(ctx, hSection)
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, section.KindHSection, h.Kind)
	assert.Equal(t, "G1", h.Name)

	props, err := svc.CalculateProperties(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 8192.0, props.Area)
	assert.Equal(t, section.Point{X: 100, Y: 200}, props.Centroid)
	require.NotNil(t, props.Steel)

	again, err := svc.CalculateProperties(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, props, again)
}

func TestCreateSectionValidation(t *testing.T) {
	svc := newTestService()

	bad := hSection
	bad.Dimensions = map[string]any{"h": -200, "b": 200, "t_w": 8, "t_f": 13}
	_, err := svc.CreateSection(context.Background(), bad)
	assert.ErrorIs(t, err, section.ErrOutOfRange)

	bad.Dimensions = map[string]any{"h": "deep", "b": 200, "t_w": 8, "t_f": 13}
	_, err = svc.CreateSection(context.Background(), bad)
	assert.ErrorIs(t, err, section.ErrInvalidDimension)

	assert.Equal(t, 0, svc.Len())
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CalculateProperties(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CheckWidthThickness(ctx, "missing", "SN400")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}

func TestCheckWidthThickness(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	withGrade := hSection
	withGrade.Grade = "SM520"
	h, err := svc.CreateSection(ctx, withGrade)
	require.NoError(t, err)

	check, err := svc.CheckWidthThickness(ctx, h.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "SM520", string(check.Grade))

	check, err = svc.CheckWidthThickness(ctx, h.ID, "SN400")
	require.NoError(t, err)
	assert.Equal(t, 72.0, check.Web.Limit)

	_, err = svc.CheckWidthThickness(ctx, h.ID, "INVALID")
	assert.ErrorIs(t, err, section.ErrUnsupportedGrade)

	rect, err := svc.CreateSection(ctx, definition.Definition{Kind: "rectangular", Dimensions: map[string]any{"b": 100, "h": 300}})
	require.NoError(t, err)
	_, err = svc.CheckWidthThickness(ctx, rect.ID, "SN400")
	assert.ErrorIs(t, err, section.ErrUnsupportedShape)
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	var ids []string
	for i := 0; i < 3; i++ {
		def := hSection
		def.Name = fmt.Sprintf("G%d", i+1)
		h, err := svc.CreateSection(ctx, def)
		require.NoError(t, err)
		ids = append(ids, h.ID)
	}

	handles, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, handles, 3)
	for i, h := range handles {
		assert.Equal(t, ids[i], h.ID)
	}

	require.NoError(t, svc.Delete(ctx, ids[1]))
	_, err = svc.CalculateProperties(ctx, ids[1])
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, svc.Len())
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	svc := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, err := svc.CreateSection(ctx, hSection)
			if !assert.NoError(t, err) {
				return
			}
			_, err = svc.CalculateProperties(ctx, h.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, svc.Len())
}

func TestEvaluate(t *testing.T) {
	svc := newTestService()

	results, err := svc.Evaluate(context.Background(), []definition.Definition{
		hSection,
		{Kind: "circular", Dimensions: map[string]any{"diameter": 0}},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].OK())
	assert.ErrorIs(t, results[1].Err, section.ErrOutOfRange)

	assert.Equal(t, 0, svc.Len())
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := newTestService()

	_, err := svc.CreateSection(ctx, hSection)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
