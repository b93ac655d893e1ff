package adapters

import (
	"bytes"
	"encoding/json"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cpe-synth/internal/ports"
	"cpe-synth/internal/types"
)

type JSONExportAdapter struct{}

func NewJSONExportAdapter() JSONExportAdapter {
	return JSONExportAdapter{}
}

func (a JSONExportAdapter) Format() types.ExportFormat {
	return types.ExportFormatJSON
}

func (a JSONExportAdapter) Export(path string, records []types.Record) error {
	if err := prepareExport(path, records); err != nil {
		return err
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(records); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal json export").
			WithCause(err)
	}
	return writeExport(path, buf.Bytes())
}

var _ ports.ExportPort = JSONExportAdapter{}
