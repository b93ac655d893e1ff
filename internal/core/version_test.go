package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"cpe-synth/internal/types"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "numeric components", a: "2.4.9", b: "2.4.41", want: -1},
		{name: "equal", a: "1.18.0", b: "1.18.0", want: 0},
		{name: "pep440 release vs pre", a: "3.0.0", b: "3.0.0rc1", want: 1},
		{name: "letter suffix uses debian ordering", a: "1.1.1k", b: "1.1.1j", want: 1},
		{name: "date versions", a: "2021-03-10", b: "2020-12-01", want: 1},
		{name: "placeholder falls back to string order", a: "*", b: "1.0", want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareVersions(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestSortRecords(t *testing.T) {
	records := []types.Record{
		{Category: "o", Vendor: "debian", Product: "debian_linux", Version: "10.0"},
		{Category: "a", Vendor: "nginx", Product: "nginx", Version: "1.18.0"},
		{Category: "a", Vendor: "nginx", Product: "nginx", Version: "1.9.2"},
		{Category: "a", Vendor: "apache", Product: "http_server", Version: "2.4.41"},
	}
	got := SortRecords(records)
	var keys []string
	for _, record := range got {
		keys = append(keys, record.Vendor+"@"+record.Version)
	}
	want := []string{"apache@2.4.41", "nginx@1.9.2", "nginx@1.18.0", "debian@10.0"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	assert.Equal(t, "debian", records[0].Vendor, "input must not be reordered")
}

func TestLatestVersions(t *testing.T) {
	records := []types.Record{
		{Vendor: "openssl", Product: "openssl", Version: "1.1.1j"},
		{Vendor: "openssl", Product: "openssl", Version: "1.1.1k"},
		{Vendor: "git", Product: "git", Version: "2.30.2"},
	}
	want := map[string]string{
		"openssl:openssl": "1.1.1k",
		"git:git":         "2.30.2",
	}
	if diff := cmp.Diff(want, LatestVersions(records)); diff != "" {
		t.Fatalf("unexpected latest versions (-want +got):\n%s", diff)
	}
}
