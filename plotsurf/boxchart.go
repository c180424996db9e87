// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotsurf

import (
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/plot"
	"cogentcore.org/geoval/valplot"
)

// labelPad is the fraction of the value range reserved below the
// lowest whisker for the per-box summary labels.
const labelPad = 0.22

// A BoxChart presents one box-and-whisker summary per group,
// plotted centered at integer x positions, with an optional
// multi-line label under each box.
type BoxChart struct {
	// Stats are the five-number summaries, one box per entry.
	Stats []valplot.BoxStats

	// Labels are the per-box labels, drawn under the boxes.
	// An empty label is skipped.
	Labels []string

	// Range is the value range shared by all boxes.
	Range minmax.F64

	// Width is the box width in x units, which should be < 1.
	Width float32

	// LineStyle is the style of the box and whisker lines.
	LineStyle plot.LineStyle

	// LabelStyle is the style of the label text.
	LabelStyle plot.TextStyle
}

// NewBoxChart returns a new box chart for the given summaries,
// with the ith box centered at x = i.
func NewBoxChart(labels []string, bxs []valplot.BoxStats, vr minmax.F64) *BoxChart {
	bc := &BoxChart{Stats: bxs, Labels: labels, Range: vr, Width: 0.5}
	bc.LineStyle.Defaults()
	bc.LabelStyle.Defaults()
	return bc
}

// Plot draws the boxes, implementing the plot.Plotter interface.
func (bc *BoxChart) Plot(plt *plot.Plot) {
	pc := plt.Paint
	if !bc.LineStyle.SetStroke(plt) {
		return
	}
	bc.LabelStyle.ToDots(&pc.UnitContext)
	hw := 0.5 * bc.Width
	ew := bc.Width / 3
	for i, bs := range bc.Stats {
		cat := float32(i)
		ctr := plt.PX(cat)
		x0 := plt.PX(cat - hw)
		x1 := plt.PX(cat + hw)
		q1 := plt.PY(float32(bs.Q1))
		q3 := plt.PY(float32(bs.Q3))
		md := plt.PY(float32(bs.Median))
		lo := plt.PY(float32(bs.Low))
		hi := plt.PY(float32(bs.High))

		var box math32.Box2
		box.Min.Set(x0, q3)
		box.Max.Set(x1, q1)
		pc.DrawRectangle(box.Min.X, box.Min.Y, box.Size().X, box.Size().Y)
		pc.FillStrokeClear()

		pc.MoveTo(x0, md)
		pc.LineTo(x1, md)

		pc.MoveTo(ctr, q3)
		pc.LineTo(ctr, hi)
		pc.MoveTo(plt.PX(cat-ew), hi)
		pc.LineTo(plt.PX(cat+ew), hi)

		pc.MoveTo(ctr, q1)
		pc.LineTo(ctr, lo)
		pc.MoveTo(plt.PX(cat-ew), lo)
		pc.LineTo(plt.PX(cat+ew), lo)
		pc.Stroke()
	}
	bc.drawLabels(plt)
}

func (bc *BoxChart) drawLabels(plt *plot.Plot) {
	var ltxt plot.Text
	ltxt.Style = bc.LabelStyle
	for i, label := range bc.Labels {
		if label == "" {
			continue
		}
		ltxt.Text = strings.ReplaceAll(label, "\n", "<br>")
		ltxt.Config(plt)
		sz := ltxt.PaintText.BBox.Size()
		pos := math32.Vec2(plt.PX(float32(i))-0.5*sz.X, plt.PY(float32(bc.Range.Min))+4)
		ltxt.Draw(plt, pos)
	}
}

// DataRange returns x covering the box positions and y covering the
// whiskers plus the label region, implementing the plot.DataRanger
// interface.
func (bc *BoxChart) DataRange() (xmin, xmax, ymin, ymax float32) {
	xmin = -0.5
	xmax = float32(len(bc.Stats)) - 0.5
	ymin = float32(bc.Range.Min - labelPad*bc.Range.Range())
	ymax = float32(bc.Range.Max)
	return
}
