package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogEntries(t *testing.T) {
	entries, err := NewCatalogSourceAdapter("").Entries()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(entries), 75)
	for _, entry := range entries {
		assert.True(t, strings.HasPrefix(entry, "cpe:2.3:"), "unexpected entry %q", entry)
		assert.Len(t, strings.Split(entry, ":"), 13, "entry %q", entry)
	}
}

func TestCatalogSourceFetchExactCount(t *testing.T) {
	adapter := NewCatalogSourceAdapter("")
	entries, err := adapter.Entries()
	require.NoError(t, err)

	tests := []struct {
		name  string
		count int
	}{
		{name: "default sample", count: 50},
		{name: "whole catalog", count: len(entries)},
		{name: "more than catalog repeats entries", count: len(entries) + 25},
		{name: "single", count: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := adapter.Fetch(context.Background(), tt.count)
			require.NoError(t, err)
			assert.Len(t, got, tt.count)
			for _, uri := range got {
				assert.Contains(t, entries, uri)
			}
		})
	}
}

func TestCatalogSourceFetchDistinctWhenCatalogLargeEnough(t *testing.T) {
	got, err := NewCatalogSourceAdapter("").Fetch(context.Background(), 50)
	require.NoError(t, err)
	seen := map[string]struct{}{}
	for _, uri := range got {
		seen[uri] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestCatalogSourceRejectsNonPositiveCount(t *testing.T) {
	_, err := NewCatalogSourceAdapter("").Fetch(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requested record count must be positive")
}

func TestCatalogSourceCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.txt")
	content := strings.Join([]string{
		"# lab inventory",
		"cpe:2.3:a:vendor:tool:1.0:*:*:*:*:*:*:*",
		"",
		"   cpe:2.3:o:vendor:os:2.0:*:*:*:*:*:*:*   ",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := NewCatalogSourceAdapter(path).Entries()
	require.NoError(t, err)
	want := []string{
		"cpe:2.3:a:vendor:tool:1.0:*:*:*:*:*:*:*",
		"cpe:2.3:o:vendor:os:2.0:*:*:*:*:*:*:*",
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestCatalogSourceCustomFileErrors(t *testing.T) {
	_, err := NewCatalogSourceAdapter(filepath.Join(t.TempDir(), "missing.txt")).Entries()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file not found")

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n\n"), 0o644))
	_, err = NewCatalogSourceAdapter(empty).Entries()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog contains no cpe entries")
}
