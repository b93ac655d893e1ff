package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"cpe-synth/internal/core"
	"cpe-synth/internal/types"
)

func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	if req.Count <= 0 {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("count must be positive")
	}
	if s.Source == nil {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no cpe source configured")
	}
	targets, err := exportTargets(req)
	if err != nil {
		return GenerateResult{}, err
	}

	runID := uuid.NewString()
	logger := log.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)
	started := s.now()
	logger.Info().Str("source", string(req.Source)).Int("requested", req.Count).Msg("generating cpe data")

	names, err := s.Source.Fetch(ctx, req.Count)
	if err != nil {
		return GenerateResult{}, err
	}
	if len(names) == 0 {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("failed to fetch cpe data")
	}

	augmenter := s.Augmenter
	if s.Clock != nil {
		augmenter.Clock = s.Clock
	}
	records := processNames(ctx, augmenter, names)
	if len(records) == 0 {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no valid cpe data was processed")
	}
	if len(records) < req.Count {
		logger.Warn().
			Int("generated", len(records)).
			Int("requested", req.Count).
			Msg(fmt.Sprintf("only generated %d entries (requested %d)", len(records), req.Count))
	}

	result := GenerateResult{
		RunID:       runID,
		Source:      req.Source,
		GeneratedAt: started,
		Requested:   req.Count,
		Records:     records,
	}
	for _, target := range targets {
		exporter, ok := s.Exporters[target.Format]
		if !ok {
			return GenerateResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("no exporter registered for %s", target.Format))
		}
		if err := exporter.Export(target.Path, records); err != nil {
			return GenerateResult{}, err
		}
		logger.Info().Str("format", string(target.Format)).Str("path", target.Path).Int("records", len(records)).Msg("export written")
		result.Files = append(result.Files, target)
	}
	for _, sink := range s.Sinks {
		if err := sink.Store(ctx, records); err != nil {
			return GenerateResult{}, err
		}
		logger.Info().Str("sink", sink.Name()).Int("records", len(records)).Msg("records stored")
		result.Sinks = append(result.Sinks, sink.Name())
	}

	result.Summary = core.Summarize(records, previewSize(req.PreviewSize))
	logger.Debug().Dur("elapsed", s.now().Sub(started)).Msg("generation completed")
	return result, nil
}

func processNames(ctx context.Context, augmenter core.Augmenter, names []string) []types.Record {
	records := make([]types.Record, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			log.Ctx(ctx).Warn().Int("index", i).Msg("skipping entry without cpe name")
			continue
		}
		record := augmenter.Augment(core.ParseCPE(name))
		assert.NotEmpty(ctx, record.Date, "date must be set")
		assert.NotEmpty(ctx, record.Location, "location must be set")
		records = append(records, record)
	}
	return records
}

func exportTargets(req GenerateRequest) ([]ExportedFile, error) {
	jsonFile := strings.TrimSpace(req.JSONFile)
	if jsonFile == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("json file is required")
	}
	csvFile := strings.TrimSpace(req.CSVFile)
	if csvFile == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("csv file is required")
	}
	targets := []ExportedFile{
		{Format: types.ExportFormatJSON, Path: resolveOutputPath(req.OutputDir, jsonFile)},
		{Format: types.ExportFormatCSV, Path: resolveOutputPath(req.OutputDir, csvFile)},
	}
	if yamlFile := strings.TrimSpace(req.YAMLFile); yamlFile != "" {
		targets = append(targets, ExportedFile{Format: types.ExportFormatYAML, Path: resolveOutputPath(req.OutputDir, yamlFile)})
	}
	return targets, nil
}

func resolveOutputPath(dir string, file string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

func previewSize(size int) int {
	if size <= 0 {
		return core.DefaultPreviewSize
	}
	return size
}
