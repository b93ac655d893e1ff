package adapters

import (
	"bufio"
	"context"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"cpe-synth/internal/core"
	"cpe-synth/internal/ports"
)

//go:embed catalog/default.txt
var defaultCatalog string

type CatalogSourceAdapter struct {
	// Path points at a replacement catalog; the embedded one is used when empty.
	Path string
	Rand core.RandomSource
}

func NewCatalogSourceAdapter(path string) CatalogSourceAdapter {
	return CatalogSourceAdapter{Path: strings.TrimSpace(path)}
}

func (a CatalogSourceAdapter) Fetch(ctx context.Context, count int) ([]string, error) {
	if count <= 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("requested record count must be positive")
	}
	catalog, err := a.Entries()
	if err != nil {
		return nil, err
	}
	selected := core.SelectFromCatalog(a.Rand, catalog, count)
	log.Ctx(ctx).Info().
		Int("catalog_size", len(catalog)).
		Int("selected", len(selected)).
		Bool("repeated", len(catalog) < count).
		Msg("using fallback cpe catalog")
	return selected, nil
}

// Entries returns every identifier in the active catalog in file order.
func (a CatalogSourceAdapter) Entries() ([]string, error) {
	if a.Path == "" {
		return parseCatalog(strings.NewReader(defaultCatalog))
	}
	file, err := os.Open(a.Path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("catalog file not found").
			WithCause(err)
	}
	defer file.Close()
	entries, err := parseCatalog(file)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog contains no cpe entries")
	}
	return entries, nil
}

func parseCatalog(reader io.Reader) ([]string, error) {
	var entries []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read catalog").
			WithCause(err)
	}
	return entries, nil
}

var _ ports.SourcePort = CatalogSourceAdapter{}
