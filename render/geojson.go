// SPDX-License-Identifier: MIT

package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/haripath/astar"
	"github.com/katalvlaran/haripath/townmap"
)

// GeoJSON returns m as a feature collection: one Point per location
// (properties name, on_path) followed by one LineString per segment
// (properties from, to, weight, highlight).
func GeoJSON(m *townmap.Map, path astar.Path) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	coords := m.Coordinates()

	for _, name := range m.Locations() {
		f := geojson.NewFeature(coords[name])
		f.ID = name
		f.Properties["name"] = name
		f.Properties["on_path"] = onPath(path, name)
		fc.Append(f)
	}

	for _, s := range Segments(m, path) {
		f := geojson.NewFeature(orb.LineString{coords[s.A], coords[s.B]})
		f.Properties["from"] = s.A
		f.Properties["to"] = s.B
		f.Properties["weight"] = s.Weight
		f.Properties["highlight"] = s.OnPath
		fc.Append(f)
	}

	return fc
}
