package app

import (
	"time"

	"cpe-synth/internal/adapters"
	"cpe-synth/internal/core"
	"cpe-synth/internal/ports"
	"cpe-synth/internal/types"
)

type Service struct {
	Source    ports.SourcePort
	Exporters map[types.ExportFormat]ports.ExportPort
	Reader    ports.ExportReaderPort
	Sinks     []ports.SinkPort
	Augmenter core.Augmenter
	Clock     func() time.Time
}

func NewService(source ports.SourcePort, sinks ...ports.SinkPort) Service {
	return Service{
		Source: source,
		Exporters: exporterSet(
			adapters.NewJSONExportAdapter(),
			adapters.NewCSVExportAdapter(),
			adapters.NewYAMLExportAdapter(),
		),
		Reader:    adapters.NewExportReaderAdapter(),
		Sinks:     sinks,
		Augmenter: core.NewAugmenter(),
		Clock:     time.Now,
	}
}

func exporterSet(exporters ...ports.ExportPort) map[types.ExportFormat]ports.ExportPort {
	set := make(map[types.ExportFormat]ports.ExportPort, len(exporters))
	for _, exporter := range exporters {
		set[exporter.Format()] = exporter
	}
	return set
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}
