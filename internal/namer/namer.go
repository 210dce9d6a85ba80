// Package namer resolves hex colors to human-readable names by nearest match
// against a name table. The built-in table covers the common CSS names; the
// seeded color_names table can extend it at startup.
package namer

import (
	"sync"

	"palettehub/internal/domain"
)

// Placeholder is returned when a hex value cannot be resolved at all.
const Placeholder = "Unknown"

type entry struct {
	name string
	rgb  domain.RGB
}

// Namer matches colors to the closest named color by squared RGB distance.
type Namer struct {
	mu      sync.RWMutex
	entries []entry
}

// New creates a Namer seeded with the built-in name table.
func New() *Namer {
	n := &Namer{}
	n.Extend(baseNames)
	return n
}

// Extend adds name rows to the table. Rows with invalid hex values are skipped.
func (n *Namer) Extend(names []domain.ColorName) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, cn := range names {
		rgb, err := domain.HexToRGB(cn.Hex)
		if err != nil {
			continue
		}
		n.entries = append(n.entries, entry{name: cn.Name, rgb: rgb})
	}
}

// NameFor returns the name of the closest table entry, or Placeholder when
// the hex value is invalid or the table is empty. It never fails.
func (n *Namer) NameFor(hex string) string {
	rgb, err := domain.HexToRGB(hex)
	if err != nil {
		return Placeholder
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	if len(n.entries) == 0 {
		return Placeholder
	}

	best := n.entries[0]
	bestDist := distance(rgb, best.rgb)
	for _, e := range n.entries[1:] {
		if d := distance(rgb, e.rgb); d < bestDist {
			best, bestDist = e, d
			if d == 0 {
				break
			}
		}
	}
	return best.name
}

func distance(a, b domain.RGB) int {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return dr*dr + dg*dg + db*db
}
