package ports

import "cpe-synth/internal/types"

// ExportPort writes the full record list to path, replacing any existing file.
type ExportPort interface {
	Format() types.ExportFormat
	Export(path string, records []types.Record) error
}

// ExportReaderPort loads records back from a previous export.
type ExportReaderPort interface {
	ReadRecords(path string) ([]types.Record, error)
}
