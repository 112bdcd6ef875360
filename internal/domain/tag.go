package domain

import "time"

// Tag is a catalog entry sessions can reference. Position fixes the
// catalog order used for deterministic tie-breaking in rankings.
type Tag struct {
	ID        string
	Name      string
	Icon      string
	Color     string
	Position  int
	CreatedAt time.Time
}
