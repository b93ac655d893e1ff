package app

import (
	"context"
	"time"

	"cpe-synth/internal/core"
	"cpe-synth/internal/types"
)

type stubSource struct {
	names []string
	err   error
	calls *int
}

func (s stubSource) Fetch(_ context.Context, _ int) ([]string, error) {
	if s.calls != nil {
		*s.calls++
	}
	return s.names, s.err
}

type recordingSink struct {
	name    string
	err     error
	records *[]types.Record
}

func (s recordingSink) Name() string {
	return s.name
}

func (s recordingSink) Store(_ context.Context, records []types.Record) error {
	if s.err != nil {
		return s.err
	}
	if s.records != nil {
		*s.records = append(*s.records, records...)
	}
	return nil
}

type stubRand struct{}

func (stubRand) IntN(int) int     { return 0 }
func (stubRand) Float64() float64 { return 0.5 }

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestService(source stubSource, sinks ...recordingSink) Service {
	service := NewService(source)
	for _, sink := range sinks {
		service.Sinks = append(service.Sinks, sink)
	}
	service.Clock = func() time.Time { return fixedNow }
	service.Augmenter = core.Augmenter{
		Rand:      stubRand{},
		Locations: []string{"/opt"},
	}
	return service
}
