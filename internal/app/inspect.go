package app

import (
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cpe-synth/internal/core"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	path := strings.TrimSpace(req.File)
	if path == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("export file is required")
	}
	records, err := s.Reader.ReadRecords(path)
	if err != nil {
		return InspectResult{}, err
	}
	if len(records) == 0 {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("export file contains no records")
	}

	latest := core.LatestVersions(records)
	keys := make([]string, 0, len(latest))
	for key := range latest {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	versions := make([]LatestVersion, 0, len(keys))
	for _, key := range keys {
		versions = append(versions, LatestVersion{Product: key, Version: latest[key]})
	}

	return InspectResult{
		File:    path,
		Summary: core.Summarize(records, previewSize(req.PreviewSize)),
		Records: core.SortRecords(records),
		Latest:  versions,
	}, nil
}
