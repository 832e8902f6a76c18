// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/haripath/astar"
	"github.com/katalvlaran/haripath/townmap"
)

// Colors of the PNG diagram.
const (
	colorBackground = "#ffffff"
	colorNode       = "#90ee90" // lightgreen
	colorInk        = "#000000"
	colorPath       = "#ff0000"
)

// PNGOptions sizes the PNG diagram.
type PNGOptions struct {
	Width, Height int
	NodeRadius    float64
	Title         string // empty: "<map name> City Map - Shortest Path"
}

// DefaultPNGOptions returns an 800×600 canvas.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{Width: 800, Height: 600, NodeRadius: 22}
}

// PNG draws m to w. Route segments are red, the rest black; every segment
// carries its weight and every location its name.
func PNG(w io.Writer, m *townmap.Map, path astar.Path, opts PNGOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("render: bad canvas %dx%d", opts.Width, opts.Height)
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = DefaultPNGOptions().NodeRadius
	}
	title := opts.Title
	if title == "" {
		title = m.Name() + " City Map - Shortest Path"
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetHexColor(colorBackground)
	dc.Clear()

	const titleBand = 40.0
	project := fit(m.Bound(), float64(opts.Width), float64(opts.Height), opts.NodeRadius*2, titleBand)
	coords := m.Coordinates()

	// Stage 1: roads.
	segs := Segments(m, path)
	dc.SetLineWidth(2)
	for _, s := range segs {
		ax, ay := project(coords[s.A])
		bx, by := project(coords[s.B])
		if s.OnPath {
			dc.SetHexColor(colorPath)
		} else {
			dc.SetHexColor(colorInk)
		}
		dc.DrawLine(ax, ay, bx, by)
		dc.Stroke()
	}

	// Stage 2: weight labels on a white patch at each midpoint.
	for _, s := range segs {
		ax, ay := project(coords[s.A])
		bx, by := project(coords[s.B])
		mx, my := (ax+bx)/2, (ay+by)/2
		label := formatWeight(s.Weight)
		lw, lh := dc.MeasureString(label)
		dc.SetHexColor(colorBackground)
		dc.DrawRectangle(mx-lw/2-2, my-lh/2-2, lw+4, lh+4)
		dc.Fill()
		dc.SetHexColor(colorInk)
		dc.DrawStringAnchored(label, mx, my, 0.5, 0.35)
	}

	// Stage 3: locations.
	for _, name := range m.Locations() {
		x, y := project(coords[name])
		dc.SetHexColor(colorNode)
		dc.DrawCircle(x, y, opts.NodeRadius)
		dc.Fill()
		dc.SetHexColor(colorInk)
		dc.DrawStringAnchored(name, x, y, 0.5, 0.35)
	}

	dc.SetHexColor(colorInk)
	dc.DrawStringAnchored(title, float64(opts.Width)/2, titleBand/2, 0.5, 0.5)

	return dc.EncodePNG(w)
}

// fit maps map coordinates into a canvas, keeping the aspect ratio, leaving
// pad on every side plus top for the title, and flipping y so north is up.
func fit(b orb.Bound, width, height, pad, top float64) func(orb.Point) (float64, float64) {
	spanX := b.Max.X() - b.Min.X()
	spanY := b.Max.Y() - b.Min.Y()
	availX := width - 2*pad
	availY := height - 2*pad - top

	scale := math.Inf(1)
	if spanX > 0 {
		scale = availX / spanX
	}
	if spanY > 0 {
		scale = math.Min(scale, availY/spanY)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	offX := pad + (availX-spanX*scale)/2
	offY := top + pad + (availY-spanY*scale)/2

	return func(p orb.Point) (float64, float64) {
		return offX + (p.X()-b.Min.X())*scale, offY + (b.Max.Y()-p.Y())*scale
	}
}
