package adapters

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cpe-synth/internal/ports"
	"cpe-synth/internal/types"
)

type CSVExportAdapter struct{}

func NewCSVExportAdapter() CSVExportAdapter {
	return CSVExportAdapter{}
}

func (a CSVExportAdapter) Format() types.ExportFormat {
	return types.ExportFormatCSV
}

func (a CSVExportAdapter) Export(path string, records []types.Record) error {
	if err := prepareExport(path, records); err != nil {
		return err
	}
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, types.ExportColumns)
	for _, record := range records {
		rows = append(rows, csvRow(record))
	}
	if err := writer.WriteAll(rows); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode csv export").
			WithCause(err)
	}
	return writeExport(path, buf.Bytes())
}

func csvRow(record types.Record) []string {
	return []string{
		record.Category,
		record.Product,
		record.Version,
		record.Vendor,
		record.Date,
		record.Location,
		formatSize(record.SizeMB),
	}
}

func formatSize(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

var _ ports.ExportPort = CSVExportAdapter{}
