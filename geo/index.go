// SPDX-License-Identifier: MIT

package geo

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// pointTolerance is the side length of the box each location occupies in the tree.
const pointTolerance = 1e-9

// nearestCandidates is the initial number of R-tree hits re-ranked to break distance ties by name.
const nearestCandidates = 4

// entry wraps a location for R-tree storage.
type entry struct {
	id   string
	at   orb.Point
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.bbox
}

// Index answers nearest-location and box queries over a fixed set of coordinates.
// It is read-only after construction.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex builds an R-tree over coords.
func NewIndex(coords Coordinates) *Index {
	tree := rtreego.NewTree(2, 2, 8) // 2D, min 2, max 8 entries per node; maps are small

	for _, id := range coords.IDs() {
		p := coords[id]
		bbox, err := pointRect(p)
		if err != nil {
			continue
		}
		tree.Insert(&entry{id: id, at: p, bbox: bbox})
	}

	return &Index{tree: tree, size: tree.Size()}
}

// Len returns the number of indexed locations.
func (ix *Index) Len() int {
	return ix.size
}

// Nearest returns the location closest to p. Equal distances resolve to the
// lexicographically smaller name. ok is false when the index is empty.
func (ix *Index) Nearest(p orb.Point) (id string, ok bool) {
	if ix.size == 0 {
		return "", false
	}

	// Widen the query while every hit is as close as the best one, so no
	// equidistant location is left out of the name comparison.
	for k := nearestCandidates; ; k *= 2 {
		if k > ix.size {
			k = ix.size
		}
		best, bestDist, farthest := ix.rank(p, k)
		if k == ix.size || farthest > bestDist+pointTolerance {
			return best, best != ""
		}
	}
}

// rank returns the closest of the k nearest R-tree hits, its distance, and
// the distance of the farthest hit.
func (ix *Index) rank(p orb.Point, k int) (best string, bestDist, farthest float64) {
	for _, h := range ix.tree.NearestNeighbors(k, rtreego.Point{p.X(), p.Y()}) {
		e, isEntry := h.(*entry)
		if !isEntry || e == nil {
			continue
		}
		d := planar.Distance(p, e.at)
		if d > farthest {
			farthest = d
		}
		if best == "" || d < bestDist || (d == bestDist && e.id < best) {
			best, bestDist = e.id, d
		}
	}

	return best, bestDist, farthest
}

// Within returns every location inside b (edges inclusive), sorted by name.
func (ix *Index) Within(b orb.Bound) []string {
	corner := rtreego.Point{b.Min.X() - pointTolerance, b.Min.Y() - pointTolerance}
	lengths := []float64{b.Max.X() - b.Min.X() + 2*pointTolerance, b.Max.Y() - b.Min.Y() + 2*pointTolerance}
	rect, err := rtreego.NewRect(corner, lengths)
	if err != nil {
		return nil
	}

	var out []string
	for _, h := range ix.tree.SearchIntersect(rect) {
		if e, isEntry := h.(*entry); isEntry && b.Contains(e.at) {
			out = append(out, e.id)
		}
	}
	sort.Strings(out)

	return out
}

// pointRect returns a tiny box centered on p.
func pointRect(p orb.Point) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{p.X() - pointTolerance/2, p.Y() - pointTolerance/2},
		[]float64{pointTolerance, pointTolerance},
	)
}
