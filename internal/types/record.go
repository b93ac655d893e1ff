package types

// Record is one synthesized CPE entry. Field order matches every export.
type Record struct {
	Category string  `json:"category" yaml:"category"`
	Product  string  `json:"product" yaml:"product"`
	Version  string  `json:"version" yaml:"version"`
	Vendor   string  `json:"vendor" yaml:"vendor"`
	Date     string  `json:"date" yaml:"date"`
	Location string  `json:"location" yaml:"location"`
	SizeMB   float64 `json:"size_mb" yaml:"size_mb"`
}

// CPEName holds the four fields decoded from a CPE 2.3 formatted string.
type CPEName struct {
	Category string
	Vendor   string
	Product  string
	Version  string
}

// Simulated holds the synthetic attributes attached to a parsed CPE name.
type Simulated struct {
	Date     string
	Location string
	SizeMB   float64
}

// ExportColumns is the fixed column order of tabular exports.
var ExportColumns = []string{"category", "product", "version", "vendor", "date", "location", "size_mb"}

func NewRecord(name CPEName, sim Simulated) Record {
	return Record{
		Category: name.Category,
		Product:  name.Product,
		Version:  name.Version,
		Vendor:   name.Vendor,
		Date:     sim.Date,
		Location: sim.Location,
		SizeMB:   sim.SizeMB,
	}
}
