package core

import (
	"sort"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"cpe-synth/internal/types"
)

// CompareVersions orders two CPE version strings. PEP 440 is tried first
// since most vendor versions are dotted numerics, then Debian ordering which
// also accepts suffixes like "1.1.1k" or dates. Anything else falls back to a
// plain string comparison.
func CompareVersions(a string, b string) int {
	if va, err := pep440.Parse(a); err == nil {
		if vb, err := pep440.Parse(b); err == nil {
			return va.Compare(vb)
		}
	}
	if va, err := debversion.NewVersion(a); err == nil {
		if vb, err := debversion.NewVersion(b); err == nil {
			return va.Compare(vb)
		}
	}
	return strings.Compare(a, b)
}

// SortRecords returns a copy of records ordered by category, vendor,
// product and then version.
func SortRecords(records []types.Record) []types.Record {
	ordered := append([]types.Record(nil), records...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Category != ordered[j].Category {
			return ordered[i].Category < ordered[j].Category
		}
		if ordered[i].Vendor != ordered[j].Vendor {
			return ordered[i].Vendor < ordered[j].Vendor
		}
		if ordered[i].Product != ordered[j].Product {
			return ordered[i].Product < ordered[j].Product
		}
		return CompareVersions(ordered[i].Version, ordered[j].Version) < 0
	})
	return ordered
}

// LatestVersions maps vendor:product to the highest version present.
func LatestVersions(records []types.Record) map[string]string {
	latest := map[string]string{}
	for _, record := range records {
		key := record.Vendor + ":" + record.Product
		current, ok := latest[key]
		if !ok || CompareVersions(record.Version, current) > 0 {
			latest[key] = record.Version
		}
	}
	return latest
}
