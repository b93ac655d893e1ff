package app

import (
	"time"

	"cpe-synth/internal/types"
)

type GenerateRequest struct {
	Source      types.SourceKind
	Count       int
	OutputDir   string
	JSONFile    string
	CSVFile     string
	YAMLFile    string
	PreviewSize int
}

type GenerateResult struct {
	RunID       string
	Source      types.SourceKind
	GeneratedAt time.Time
	Requested   int
	Records     []types.Record
	Files       []ExportedFile
	Sinks       []string
	Summary     types.Summary
}

type ExportedFile struct {
	Format types.ExportFormat
	Path   string
}

type InspectRequest struct {
	File        string
	PreviewSize int
}

type InspectResult struct {
	File    string
	Summary types.Summary
	Records []types.Record
	Latest  []LatestVersion
}

// LatestVersion is the highest version recorded for a vendor:product pair.
type LatestVersion struct {
	Product string
	Version string
}
