// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valplot

import (
	"testing"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/tensor"
	"cogentcore.org/core/tensor/table"
	"cogentcore.org/geoval/dsmeta"
	"cogentcore.org/geoval/grids"
	"cogentcore.org/geoval/metrics"
	"github.com/stretchr/testify/assert"
)

// recorder is a Surface that records what was painted.
type recorder struct {
	title    string
	ext      grids.Extent
	haveExt  bool
	scatterN int
	raster   *tensor.Float64
	rasterEx grids.Extent
	labels   []string
	bxs      []BoxStats
	vr       minmax.F64
	valueLab string
	cbar     bool
	cbarVR   minmax.F64
	cbarEx   metrics.Extend
	cbarLab  string
	wmText   string
	wmPos    string
	saved    string
}

func (r *recorder) Title(title string)         { r.title = title }
func (r *recorder) SetExtent(ext grids.Extent) { r.ext = ext; r.haveExt = true }
func (r *recorder) Scatter(lons, lats, vals []float64, vr minmax.F64, colorMap string) {
	r.scatterN = len(vals)
	r.vr = vr
}
func (r *recorder) Raster(gd *tensor.Float64, ext grids.Extent, vr minmax.F64, colorMap string) {
	r.raster = gd
	r.rasterEx = ext
	r.vr = vr
}
func (r *recorder) Boxes(labels []string, bxs []BoxStats, vr minmax.F64, valueLabel string) {
	r.labels = labels
	r.bxs = bxs
	r.vr = vr
	r.valueLab = valueLabel
}
func (r *recorder) Colorbar(vr minmax.F64, extend metrics.Extend, label, colorMap string) {
	r.cbar = true
	r.cbarVR = vr
	r.cbarEx = extend
	r.cbarLab = label
}
func (r *recorder) Watermark(text, pos string) { r.wmText = text; r.wmPos = pos }
func (r *recorder) Save(filename string) error { r.saved = filename; return nil }

func testVar(ds, metric string) dsmeta.Var {
	return dsmeta.Var{
		Dataset:          ds,
		DatasetPretty:    ds,
		Version:          "v1",
		VersionPretty:    "v1.0",
		Metric:           metric,
		Ref:              "ISMN",
		RefPretty:        "ISMN",
		RefVersion:       "2019",
		RefVersionPretty: "2019",
	}
}

// testTable is a 3x4 lattice of R values for two datasets.
func testTable() *table.Table {
	dt := table.NewTable("validation")
	la := dt.AddFloat64Column("lat")
	lo := dt.AddFloat64Column("lon")
	c3s := dt.AddFloat64Column("R_C3S")
	ascat := dt.AddFloat64Column("R_ASCAT")
	dt.SetNumRows(12)
	i := 0
	for yi := range 3 {
		for xi := range 4 {
			la.SetFloat1D(44+float64(yi)*0.5, i)
			lo.SetFloat1D(10+float64(xi)*0.5, i)
			c3s.SetFloat1D(0.1*float64(i), i)
			ascat.SetFloat1D(0.05*float64(i), i)
			i++
		}
	}
	return dt
}

func TestPlotExtent(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	ext, err := PlotExtent(testTable(), &cfg)
	assert.NoError(t, err)
	// pad = min(1.5, 1.0) * 0.05/1.05
	pad := 1.0 * cfg.MapPad / (1 + cfg.MapPad)
	assert.InDelta(t, 10-pad, ext.X.Min, 1e-12)
	assert.InDelta(t, 11.5+pad, ext.X.Max, 1e-12)
	assert.InDelta(t, 44-pad, ext.Y.Min, 1e-12)
	assert.InDelta(t, 45+pad, ext.Y.Max, 1e-12)
}

func TestPlotExtentClamp(t *testing.T) {
	dt := table.NewTable("world")
	la := dt.AddFloat64Column("lat")
	lo := dt.AddFloat64Column("lon")
	dt.SetNumRows(2)
	la.SetFloat1D(-89, 0)
	la.SetFloat1D(89, 1)
	lo.SetFloat1D(-179, 0)
	lo.SetFloat1D(179, 1)
	var cfg Config
	cfg.Defaults()
	ext, err := PlotExtent(dt, &cfg)
	assert.NoError(t, err)
	assert.Equal(t, -180.0, ext.X.Min)
	assert.Equal(t, 180.0, ext.X.Max)
	assert.Equal(t, -90.0, ext.Y.Min)
	assert.Equal(t, 90.0, ext.Y.Max)
}

func TestComparisonTitle(t *testing.T) {
	ttl := ComparisonTitle("ISMN", []string{"C3S"}, 50)
	assert.Equal(t, "Comparing ISMN to C3S", ttl)

	ttl = ComparisonTitle("ISMN", []string{"C3S", "ASCAT"}, 50)
	assert.Equal(t, "Comparing ISMN to C3S and ASCAT", ttl)

	ttl = ComparisonTitle("ISMN", []string{"C3S", "ASCAT", "SMAP"}, 50)
	assert.Equal(t, "Comparing ISMN to C3S, ASCAT and SMAP", ttl)

	// wraps onto a new line rather than exceeding the maximum length
	ttl = ComparisonTitle("ISMN", []string{"ESA CCI SM combined", "H-SAF ASCAT SSM CDR"}, 40)
	assert.Equal(t, "Comparing ISMN to ESA CCI SM combined\nand H-SAF ASCAT SSM CDR", ttl)
}

func TestBoxplot(t *testing.T) {
	dt := testTable()
	vm := dsmeta.VarMeta{
		"R_C3S":   testVar("C3S", "R"),
		"R_ASCAT": testVar("ASCAT", "R"),
	}
	var cfg Config
	cfg.Defaults()
	rec := &recorder{}
	err := Boxplot(rec, dt, vm, metrics.Default(), &cfg)
	assert.NoError(t, err)
	assert.Len(t, rec.labels, 2)
	assert.Len(t, rec.bxs, 2)
	// columns are sorted: ASCAT first
	assert.Contains(t, rec.labels[0], "ASCAT")
	assert.Contains(t, rec.labels[0], "median:")
	assert.Contains(t, rec.labels[0], "N obs.: 12")
	// R has a fixed registry range
	assert.Equal(t, -1.0, rec.vr.Min)
	assert.Equal(t, 1.0, rec.vr.Max)
	assert.Equal(t, "Pearson correlation coefficient", rec.valueLab)
	assert.Equal(t, "Comparing ISMN to ASCAT and C3S", rec.title)
	assert.Equal(t, cfg.Watermark, rec.wmText)
	assert.Equal(t, WatermarkTop, rec.wmPos)

	for _, bx := range rec.bxs {
		assert.LessOrEqual(t, bx.Low, bx.Q1)
		assert.LessOrEqual(t, bx.Q1, bx.Median)
		assert.LessOrEqual(t, bx.Median, bx.Q3)
		assert.LessOrEqual(t, bx.Q3, bx.High)
	}
}

func TestBoxplotInconsistentMeta(t *testing.T) {
	dt := testTable()
	other := testVar("ASCAT", "R")
	other.Ref = "GLDAS"
	vm := dsmeta.VarMeta{
		"R_C3S":   testVar("C3S", "R"),
		"R_ASCAT": other,
	}
	var cfg Config
	cfg.Defaults()
	err := Boxplot(&recorder{}, dt, vm, metrics.Default(), &cfg)
	assert.Error(t, err)
}

func TestScatterMap(t *testing.T) {
	dt := testTable()
	vm := dsmeta.VarMeta{"R_C3S": testVar("C3S", "R")}
	var cfg Config
	cfg.Defaults()
	rec := &recorder{}
	err := ScatterMap(rec, dt, "R_C3S", vm, metrics.Default(), &cfg)
	assert.NoError(t, err)
	assert.True(t, rec.haveExt)
	assert.Equal(t, 12, rec.scatterN)
	assert.True(t, rec.cbar)
	assert.Equal(t, metrics.Neither, rec.cbarEx)
	assert.Equal(t, "Pearson correlation coefficient", rec.cbarLab)
	assert.Equal(t, "Comparing ISMN (2019) to C3S (v1.0)", rec.title)
}

func TestGridMap(t *testing.T) {
	dt := testTable()
	vm := dsmeta.VarMeta{"R_C3S": testVar("C3S", "RMSD")}
	var cfg Config
	cfg.Defaults()
	rec := &recorder{}
	err := GridMap(rec, dt, "R_C3S", vm, metrics.Default(), &cfg)
	assert.NoError(t, err)
	assert.NotNil(t, rec.raster)
	assert.Equal(t, 3, rec.raster.DimSize(0))
	assert.Equal(t, 4, rec.raster.DimSize(1))
	assert.InDelta(t, 9.75, rec.rasterEx.X.Min, 1e-12)
	assert.InDelta(t, 11.75, rec.rasterEx.X.Max, 1e-12)
	// RMSD has an open upper bound: the colorbar extends high
	assert.Equal(t, metrics.Max, rec.cbarEx)
	assert.Equal(t, 0.0, rec.cbarVR.Min)
}

func TestGridMapUnknownColumn(t *testing.T) {
	dt := testTable()
	vm := dsmeta.VarMeta{"R_C3S": testVar("C3S", "R")}
	var cfg Config
	cfg.Defaults()
	err := GridMap(&recorder{}, dt, "nope", vm, metrics.Default(), &cfg)
	assert.Error(t, err)
}
