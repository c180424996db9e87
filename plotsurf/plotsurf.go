// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotsurf implements the [valplot.Surface] interface on top
// of the [cogentcore.org/core/plot] package, with plotters for
// colormapped scatter points, gridded rasters, box-and-whisker
// summaries, and a colorbar.
package plotsurf

import (
	"image"
	"strings"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/tensor"
	"cogentcore.org/geoval/grids"
	"cogentcore.org/geoval/metrics"
	"cogentcore.org/geoval/valplot"
)

// Surface renders validation plots through a [plot.Plot].
type Surface struct {

	// Plot is the underlying plot being built up.
	Plot *plot.Plot

	// Size is the pixel size used when rendering to a raster image.
	Size image.Point
}

var _ valplot.Surface = (*Surface)(nil)

// New returns a Surface rendering at the given pixel size.
func New(width, height int) *Surface {
	return &Surface{Plot: plot.New(), Size: image.Point{width, height}}
}

func (sf *Surface) Title(title string) {
	sf.Plot.Title.Text = title
}

// SetExtent sets the coordinate axes to the given geographic extent.
func (sf *Surface) SetExtent(ext grids.Extent) {
	sf.Plot.X.Min = float32(ext.X.Min)
	sf.Plot.X.Max = float32(ext.X.Max)
	sf.Plot.X.Label.Text = "Longitude"
	sf.Plot.Y.Min = float32(ext.Y.Min)
	sf.Plot.Y.Max = float32(ext.Y.Max)
	sf.Plot.Y.Label.Text = "Latitude"
}

func (sf *Surface) Scatter(lons, lats, vals []float64, vr minmax.F64, colorMap string) {
	if pts := NewColorPoints(lons, lats, vals, vr, Map(colorMap)); pts != nil {
		sf.Plot.Add(pts)
	}
}

func (sf *Surface) Raster(gd *tensor.Float64, ext grids.Extent, vr minmax.F64, colorMap string) {
	sf.Plot.Add(NewRaster(gd, ext, vr, Map(colorMap)))
}

func (sf *Surface) Boxes(labels []string, bxs []valplot.BoxStats, vr minmax.F64, valueLabel string) {
	bc := NewBoxChart(labels, bxs, vr)
	sf.Plot.Add(bc)
	sf.Plot.X.Min = -0.5
	sf.Plot.X.Max = float32(len(bxs)) - 0.5
	sf.Plot.Y.Min = float32(vr.Min - labelPad*vr.Range())
	sf.Plot.Y.Max = float32(vr.Max)
	sf.Plot.Y.Label.Text = valueLabel
}

func (sf *Surface) Colorbar(vr minmax.F64, extend metrics.Extend, label, colorMap string) {
	sf.Plot.Add(NewColorbar(vr, extend, label, Map(colorMap)))
}

func (sf *Surface) Watermark(text, pos string) {
	sf.Plot.Add(&watermark{text: text, pos: pos})
}

// Save renders the plot and writes it to the given file.
// A .svg extension produces an SVG; anything else goes through
// [imagex.Save], which uses the extension to pick the image format.
func (sf *Surface) Save(filename string) error {
	sf.Plot.Resize(sf.Size)
	if strings.HasSuffix(strings.ToLower(filename), ".svg") {
		return sf.Plot.SVGToFile(filename)
	}
	sf.Plot.Draw()
	return imagex.Save(sf.Plot.Pixels, filename)
}

// Map returns the named colormap, or the Viridis map if the
// name is not registered.
func Map(name string) *colormap.Map {
	if cm, ok := colormap.AvailableMaps[name]; ok {
		return cm
	}
	return colormap.AvailableMaps["Viridis"]
}

// norm maps v into [0, 1] over the given range, clamping outliers
// to the ends.
func norm(v float64, vr minmax.F64) float32 {
	if vr.Range() == 0 {
		return 0
	}
	n := (v - vr.Min) / vr.Range()
	if n < 0 {
		n = 0
	} else if n > 1 {
		n = 1
	}
	return float32(n)
}
