package adapters

import (
	"bytes"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"cpe-synth/internal/ports"
	"cpe-synth/internal/types"
)

type YAMLExportAdapter struct{}

func NewYAMLExportAdapter() YAMLExportAdapter {
	return YAMLExportAdapter{}
}

func (a YAMLExportAdapter) Format() types.ExportFormat {
	return types.ExportFormatYAML
}

func (a YAMLExportAdapter) Export(path string, records []types.Record) error {
	if err := prepareExport(path, records); err != nil {
		return err
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal yaml export").
			WithCause(err)
	}
	if err := encoder.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to finish yaml export").
			WithCause(err)
	}
	return writeExport(path, buf.Bytes())
}

var _ ports.ExportPort = YAMLExportAdapter{}
