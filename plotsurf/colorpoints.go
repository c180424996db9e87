// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotsurf

import (
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/plot/plots"
	"cogentcore.org/core/styles/units"
)

// ColorPoints implements the Plotter interface, drawing a shape for
// each point colored by its value through a colormap. Points with NaN
// values are skipped.
type ColorPoints struct {
	// XYs is a copy of the point coordinates.
	plot.XYs

	// Values are the data values coloring each point.
	Values []float64

	// Range is the value range mapped onto the colormap.
	// Values outside it are clamped to the end colors.
	Range minmax.F64

	// ColorMap translates normalized values to colors.
	ColorMap *colormap.Map

	// size of shape to draw for each point
	PointSize units.Value

	// shape to draw for each point
	PointShape plots.Shapes
}

// NewColorPoints returns a ColorPoints over the given coordinates
// and values, which must be of equal length.
func NewColorPoints(xs, ys, vals []float64, vr minmax.F64, cm *colormap.Map) *ColorPoints {
	if len(xs) != len(vals) || len(ys) != len(vals) {
		errors.Log(errors.New("plotsurf: number of points does not match the number of values"))
		return nil
	}
	xys := make(plot.XYs, len(vals))
	for i := range xys {
		xys[i].X = float32(xs[i])
		xys[i].Y = float32(ys[i])
	}
	pts := &ColorPoints{XYs: xys, Values: vals, Range: vr, ColorMap: cm}
	pts.PointSize.Pt(4)
	pts.PointShape = plots.Circle
	return pts
}

// Plot draws the points, implementing the plot.Plotter interface.
func (pts *ColorPoints) Plot(plt *plot.Plot) {
	pc := plt.Paint
	pts.PointSize.ToDots(&pc.UnitContext)
	ps := plot.PlotXYs(plt, pts.XYs)
	for i := range ps {
		v := pts.Values[i]
		if math.IsNaN(v) {
			continue
		}
		clr := colors.Uniform(pts.ColorMap.Map(norm(v, pts.Range)))
		pc.FillStyle.Color = clr
		pc.StrokeStyle.Color = clr
		plots.DrawShape(pc, math32.Vec2(ps[i].X, ps[i].Y), pts.PointSize.Dots, pts.PointShape)
	}
	pc.FillStyle.Color = nil
}

// DataRange returns the minimum and maximum
// x and y values, implementing the plot.DataRanger interface.
func (pts *ColorPoints) DataRange() (xmin, xmax, ymin, ymax float32) {
	return plot.XYRange(pts)
}
