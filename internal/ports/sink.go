package ports

import (
	"context"

	"cpe-synth/internal/types"
)

// SinkPort seeds a database with the generated records.
type SinkPort interface {
	Name() string
	Store(ctx context.Context, records []types.Record) error
}
