package adapters

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"cpe-synth/internal/ports"
	"cpe-synth/internal/types"
)

type ExportReaderAdapter struct{}

func NewExportReaderAdapter() ExportReaderAdapter {
	return ExportReaderAdapter{}
}

// ReadRecords loads a previous export, picking the decoder from the file
// extension (.json, .csv, .yaml or .yml).
func (a ExportReaderAdapter) ReadRecords(path string) ([]types.Record, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("export file not found").
			WithCause(err)
	}
	switch format {
	case types.ExportFormatJSON:
		return decodeJSONRecords(data)
	case types.ExportFormatYAML:
		return decodeYAMLRecords(data)
	default:
		return decodeCSVRecords(data)
	}
}

func formatFromPath(path string) (types.ExportFormat, error) {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(path))) {
	case ".json":
		return types.ExportFormatJSON, nil
	case ".csv":
		return types.ExportFormatCSV, nil
	case ".yaml", ".yml":
		return types.ExportFormatYAML, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported export file extension: %q", filepath.Ext(path)))
	}
}

func decodeJSONRecords(data []byte) ([]types.Record, error) {
	var records []types.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse json export").
			WithCause(err)
	}
	return records, nil
}

func decodeYAMLRecords(data []byte) ([]types.Record, error) {
	var records []types.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse yaml export").
			WithCause(err)
	}
	return records, nil
}

func decodeCSVRecords(data []byte) ([]types.Record, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse csv export").
			WithCause(err)
	}
	if len(rows) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("csv export has no header")
	}
	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range types.ExportColumns {
		if _, ok := columns[name]; !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("csv export missing column %s", name))
		}
	}
	records := make([]types.Record, 0, len(rows)-1)
	for line, row := range rows[1:] {
		size, err := strconv.ParseFloat(strings.TrimSpace(row[columns["size_mb"]]), 64)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid size_mb on csv line %d", line+2)).
				WithCause(err)
		}
		records = append(records, types.Record{
			Category: row[columns["category"]],
			Product:  row[columns["product"]],
			Version:  row[columns["version"]],
			Vendor:   row[columns["vendor"]],
			Date:     row[columns["date"]],
			Location: row[columns["location"]],
			SizeMB:   size,
		})
	}
	return records, nil
}

var _ ports.ExportReaderPort = ExportReaderAdapter{}
