package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpe-synth/internal/types"
)

var testNames = []string{
	"cpe:2.3:a:apache:http_server:2.4.41:*:*:*:*:*:*:*",
	"",
	"cpe:2.3:o:canonical:ubuntu_linux:*:*:*:*:*:*:*:*",
	"cpe:2.3:h",
}

func TestGenerateWritesExportsAndSinks(t *testing.T) {
	dir := t.TempDir()
	var stored []types.Record
	service := newTestService(
		stubSource{names: testNames},
		recordingSink{name: "memory", records: &stored},
	)

	result, err := service.Generate(context.Background(), GenerateRequest{
		Source:    types.SourceKindCatalog,
		Count:     4,
		OutputDir: dir,
		JSONFile:  "cpe_data.json",
		CSVFile:   "cpe_data.csv",
		YAMLFile:  "nested/cpe_data.yaml",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.RunID)
	assert.Equal(t, fixedNow, result.GeneratedAt)
	assert.Equal(t, 4, result.Requested)
	assert.Equal(t, types.SourceKindCatalog, result.Source)

	names := make([]types.CPEName, 0, len(result.Records))
	for _, record := range result.Records {
		names = append(names, types.CPEName{
			Category: record.Category,
			Vendor:   record.Vendor,
			Product:  record.Product,
			Version:  record.Version,
		})
		assert.Equal(t, "2026-03-15", record.Date)
		assert.Equal(t, "/opt", record.Location)
		assert.GreaterOrEqual(t, record.SizeMB, 0.1)
		assert.LessOrEqual(t, record.SizeMB, 500.0)
	}
	wantNames := []types.CPEName{
		{Category: "a", Vendor: "apache", Product: "http_server", Version: "2.4.41"},
		{Category: "o", Vendor: "canonical", Product: "ubuntu_linux", Version: "1.0"},
		{Category: "*", Vendor: "*", Product: "*", Version: "*"},
	}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Fatalf("unexpected parsed names (-want +got):\n%s", diff)
	}

	wantFiles := []ExportedFile{
		{Format: types.ExportFormatJSON, Path: filepath.Join(dir, "cpe_data.json")},
		{Format: types.ExportFormatCSV, Path: filepath.Join(dir, "cpe_data.csv")},
		{Format: types.ExportFormatYAML, Path: filepath.Join(dir, "nested", "cpe_data.yaml")},
	}
	if diff := cmp.Diff(wantFiles, result.Files); diff != "" {
		t.Fatalf("unexpected exported files (-want +got):\n%s", diff)
	}
	for _, file := range result.Files {
		readBack, err := service.Reader.ReadRecords(file.Path)
		require.NoError(t, err)
		if diff := cmp.Diff(result.Records, readBack); diff != "" {
			t.Fatalf("unexpected %s contents (-want +got):\n%s", file.Format, diff)
		}
	}

	assert.Equal(t, []string{"memory"}, result.Sinks)
	if diff := cmp.Diff(result.Records, stored); diff != "" {
		t.Fatalf("unexpected stored records (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, result.Summary.Total)
	assert.Len(t, result.Summary.Preview, 3)
}

func TestGenerateFailuresWriteNothing(t *testing.T) {
	tests := []struct {
		name    string
		source  stubSource
		message string
	}{
		{
			name:    "empty source",
			source:  stubSource{},
			message: "failed to fetch cpe data",
		},
		{
			name:    "only unnamed entries",
			source:  stubSource{names: []string{"", "  "}},
			message: "no valid cpe data was processed",
		},
		{
			name: "source error",
			source: stubSource{err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("catalog file not found")},
			message: "catalog file not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			service := newTestService(tt.source)
			_, err := service.Generate(context.Background(), GenerateRequest{
				Count:     5,
				OutputDir: dir,
				JSONFile:  "cpe_data.json",
				CSVFile:   "cpe_data.csv",
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestGenerateValidatesRequest(t *testing.T) {
	calls := 0
	service := newTestService(stubSource{names: testNames, calls: &calls})
	tests := []struct {
		name    string
		req     GenerateRequest
		message string
	}{
		{
			name:    "zero count",
			req:     GenerateRequest{Count: 0, JSONFile: "a.json", CSVFile: "a.csv"},
			message: "count must be positive",
		},
		{
			name:    "missing json file",
			req:     GenerateRequest{Count: 1, CSVFile: "a.csv"},
			message: "json file is required",
		},
		{
			name:    "missing csv file",
			req:     GenerateRequest{Count: 1, JSONFile: "a.json"},
			message: "csv file is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Generate(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
	assert.Zero(t, calls, "source must not be queried for invalid requests")
}

func TestGenerateSinkFailure(t *testing.T) {
	service := newTestService(
		stubSource{names: testNames},
		recordingSink{name: "broken", err: assert.AnError},
	)
	_, err := service.Generate(context.Background(), GenerateRequest{
		Count:     1,
		OutputDir: t.TempDir(),
		JSONFile:  "cpe_data.json",
		CSVFile:   "cpe_data.csv",
	})
	require.ErrorIs(t, err, assert.AnError)
}

func TestResolveOutputPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "abs.json")
	tests := []struct {
		name string
		dir  string
		file string
		want string
	}{
		{name: "relative joined", dir: "out", file: "cpe_data.json", want: filepath.Join("out", "cpe_data.json")},
		{name: "absolute kept", dir: "out", file: abs, want: abs},
		{name: "empty dir", dir: " ", file: "cpe_data.csv", want: "cpe_data.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveOutputPath(tt.dir, tt.file))
		})
	}
}
