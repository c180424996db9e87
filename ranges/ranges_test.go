// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ranges

import (
	"math"
	"testing"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/tensor/table"
	"cogentcore.org/geoval/metrics"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-12

func TestQuantiles(t *testing.T) {
	data := []float64{-5, -1, 0, 1, 2, 100}
	r, err := Quantiles(data, 0.025, 0.975)
	assert.NoError(t, err)
	// type-7 linear interpolation: pos = q*(n-1)
	assert.InDelta(t, -4.5, r.Min, tol)
	assert.InDelta(t, 87.75, r.Max, tol)

	med, err := Quantile(data, 0.5)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, med, tol)

	r, err = Quantiles(data, 0, 1)
	assert.NoError(t, err)
	assert.Equal(t, -5.0, r.Min)
	assert.Equal(t, 100.0, r.Max)
}

func TestQuantilesNaN(t *testing.T) {
	nan := math.NaN()
	data := []float64{nan, 1, nan, 2, 3, nan}
	r, err := Quantiles(data, 0, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, r.Min)
	assert.Equal(t, 3.0, r.Max)

	_, err = Quantiles([]float64{nan, nan}, 0.025, 0.975)
	assert.Error(t, err)

	_, err = Quantiles(nil, 0.025, 0.975)
	assert.Error(t, err)
}

func testTable(t *testing.T) *table.Table {
	dt := table.NewTable("test")
	a := dt.AddFloat64Column("a")
	b := dt.AddFloat64Column("b")
	dt.SetNumRows(5)
	for i, v := range []float64{0, 1, 2, 3, 4} {
		a.SetFloat1D(v, i)
	}
	for i, v := range []float64{-10, -5, 0, 5, 10} {
		b.SetFloat1D(v, i)
	}
	return dt
}

func TestTableQuantiles(t *testing.T) {
	dt := testTable(t)
	// envelope: min of the per-column lows, max of the per-column highs
	r, err := TableQuantiles(dt, 0, 1, "a", "b")
	assert.NoError(t, err)
	assert.Equal(t, -10.0, r.Min)
	assert.Equal(t, 10.0, r.Max)

	r, err = TableQuantiles(dt, 0, 1, "a")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, r.Min)
	assert.Equal(t, 4.0, r.Max)

	_, err = TableQuantiles(dt, 0, 1)
	assert.Error(t, err)

	_, err = TableQuantiles(dt, 0, 1, "missing")
	assert.Error(t, err)
}

func TestSelectForceQuantile(t *testing.T) {
	data := []float64{-5, -1, 0, 1, 2, 100}
	var op Options
	op.Defaults()
	op.ForceQuantile = true
	// registry must never be consulted: nil would panic if it were
	r, err := Select(data, "R", nil, op)
	assert.NoError(t, err)
	assert.InDelta(t, -4.5, r.Min, tol)
	assert.InDelta(t, 87.75, r.Max, tol)

	// empty metric forces quantile mode as well
	r2, err := Select(data, "", nil, op)
	assert.NoError(t, err)
	assert.Equal(t, r, r2)
}

func TestSelectFixed(t *testing.T) {
	reg := metrics.Default()
	var op Options
	op.Defaults()
	r, err := Select([]float64{-5, 5, 100}, "R", reg, op)
	assert.NoError(t, err)
	assert.Equal(t, -1.0, r.Min)
	assert.Equal(t, 1.0, r.Max)
}

func TestSelectSymmetric(t *testing.T) {
	reg := metrics.Default()
	var op Options
	op.Defaults()
	// BIAS has both bounds open: symmetric around zero
	data := []float64{-5, -1, 0, 1, 2, 100}
	r, err := Select(data, "BIAS", reg, op)
	assert.NoError(t, err)
	assert.Equal(t, -r.Max, r.Min)
	assert.InDelta(t, 87.75, r.Max, tol)
}

func TestSelectOneOpenBound(t *testing.T) {
	reg := metrics.Default()
	var op Options
	op.Defaults()
	// RMSD has a fixed lower bound of 0, upper from quantiles
	data := []float64{0.5, 1, 2, 3, 4, 5, 6, 7, 8, 100}
	r, err := Select(data, "RMSD", reg, op)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, r.Min)
	assert.Less(t, r.Max, 100.0)
}

func TestSelectUnknownMetric(t *testing.T) {
	reg := metrics.Default()
	var op Options
	op.Defaults()
	data := []float64{-5, -1, 0, 1, 2, 100}
	r, err := Select(data, "no_such_metric", reg, op)
	assert.NoError(t, err)
	assert.InDelta(t, -4.5, r.Min, tol)
	assert.InDelta(t, 87.75, r.Max, tol)
}

func TestExtendFromData(t *testing.T) {
	data := []float64{-5, -1, 0, 1, 2, 100}
	assert.Equal(t, metrics.Neither, ExtendFromData(data, minmax.F64{Min: -5, Max: 100}))
	assert.Equal(t, metrics.Both, ExtendFromData(data, minmax.F64{Min: -1, Max: 50}))
	assert.Equal(t, metrics.Min, ExtendFromData(data, minmax.F64{Min: -1, Max: 200}))
	assert.Equal(t, metrics.Max, ExtendFromData(data, minmax.F64{Min: -10, Max: 50}))
	assert.Equal(t, metrics.Neither, ExtendFromData(nil, minmax.F64{Min: 0, Max: 1}))
}

func TestExtendFromRange(t *testing.T) {
	assert.Equal(t, metrics.Neither, metrics.FromRange(metrics.Range{Min: -1, Max: 1}))
	assert.Equal(t, metrics.Min, metrics.FromRange(metrics.Range{Min: metrics.Open, Max: 1}))
	assert.Equal(t, metrics.Max, metrics.FromRange(metrics.Range{Min: 0, Max: metrics.Open}))
	assert.Equal(t, metrics.Both, metrics.FromRange(metrics.Range{Min: metrics.Open, Max: metrics.Open}))

	reg := metrics.Default()
	r, ok := reg.Lookup("RMSD")
	assert.True(t, ok)
	assert.Equal(t, metrics.Max, metrics.FromRange(r))
	_, ok = reg.Lookup("nope")
	assert.False(t, ok)
}
