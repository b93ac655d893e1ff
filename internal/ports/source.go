package ports

import "context"

// SourcePort yields raw CPE 2.3 identifiers. Implementations may return
// fewer than count entries; empty strings mark entries without a name.
type SourcePort interface {
	Fetch(ctx context.Context, count int) ([]string, error)
}
