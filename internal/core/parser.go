package core

import (
	"strings"

	"cpe-synth/internal/types"
)

const (
	placeholder     = "*"
	defaultCategory = "a"
	defaultName     = "unknown"
	defaultVersion  = "1.0"

	// cpe:2.3:part:vendor:product is the shortest decodable prefix.
	minCPESegments = 5
)

// ParseCPE decomposes a CPE 2.3 formatted string into its part, vendor,
// product and version fields. Only the segment count is checked; a string
// with fewer than five segments yields placeholders for every field.
func ParseCPE(uri string) types.CPEName {
	name := types.CPEName{
		Category: placeholder,
		Vendor:   placeholder,
		Product:  placeholder,
		Version:  placeholder,
	}
	parts := strings.Split(uri, ":")
	if len(parts) < minCPESegments {
		return name
	}
	name.Category = orDefault(parts[2], defaultCategory)
	name.Vendor = orDefault(parts[3], defaultName)
	name.Product = orDefault(parts[4], defaultName)
	if len(parts) > minCPESegments {
		name.Version = orDefault(parts[5], defaultVersion)
	}
	return name
}

func orDefault(value string, fallback string) string {
	if value == placeholder {
		return fallback
	}
	return value
}
