// SPDX-License-Identifier: MIT

package geo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paulmach/orb"
)

// ErrNoCoordinate indicates a location has no coordinate.
var ErrNoCoordinate = errors.New("geo: location has no coordinate")

// Coordinates maps a location ID to its planar position.
// A Coordinates value is treated as read-only once handed to a search.
type Coordinates map[string]orb.Point

// Lookup returns the coordinate of id or an error wrapping ErrNoCoordinate.
func (c Coordinates) Lookup(id string) (orb.Point, error) {
	p, ok := c[id]
	if !ok {
		return orb.Point{}, fmt.Errorf("%w: %q", ErrNoCoordinate, id)
	}

	return p, nil
}

// IDs returns every location ID, sorted.
func (c Coordinates) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Bound returns the smallest box containing every coordinate.
// An empty set yields the zero Bound.
func (c Coordinates) Bound() orb.Bound {
	mp := make(orb.MultiPoint, 0, len(c))
	for _, id := range c.IDs() {
		mp = append(mp, c[id])
	}
	if len(mp) == 0 {
		return orb.Bound{}
	}

	return mp.Bound()
}

// Clone returns an independent copy.
func (c Coordinates) Clone() Coordinates {
	out := make(Coordinates, len(c))
	for id, p := range c {
		out[id] = p
	}

	return out
}
