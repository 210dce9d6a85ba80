package port

import "context"

// RawPalette is one entry as returned by the external catalog, before
// canonicalization.
type RawPalette struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
	Tags        []string `json:"tags"`
}

// PaletteProvider is the external catalog consumed through a narrow
// interface. Implementations carry a bounded timeout and surface
// domain.ErrUpstreamUnavailable on timeout or error responses, and
// domain.ErrNotFound for an unknown id.
type PaletteProvider interface {
	Search(ctx context.Context, query string, limit int) ([]RawPalette, error)
	FetchByID(ctx context.Context, externalID string) (*RawPalette, error)
}

// ColorNamer resolves a hex color to a best-effort human name. It never
// fails; unresolvable input yields a placeholder.
type ColorNamer interface {
	NameFor(hex string) string
}
