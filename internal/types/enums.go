package types

type Category string

const (
	CategoryApplication     Category = "a"
	CategoryOperatingSystem Category = "o"
	CategoryHardware        Category = "h"
	CategoryAny             Category = "*"
)

// DisplayName returns the human readable label used in summaries. Unknown
// codes are returned unchanged.
func (c Category) DisplayName() string {
	switch c {
	case CategoryApplication:
		return "Application"
	case CategoryOperatingSystem:
		return "Operating System"
	case CategoryHardware:
		return "Hardware"
	default:
		return string(c)
	}
}

type SourceKind string

const (
	SourceKindCatalog SourceKind = "catalog"
	SourceKindNVD     SourceKind = "nvd"
)

type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatYAML ExportFormat = "yaml"
)
