// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ranges selects the display value range for a plotted data
// series: either from the fixed per-metric ranges in a
// [metrics.Registry], or from data quantiles, with a
// symmetric-around-zero fallback for diverging metrics.
package ranges

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/tensor/table"
	"cogentcore.org/geoval/metrics"
)

// Options are the options for [Select] and [SelectTable].
type Options struct {

	// ForceQuantile uses the quantile range unconditionally,
	// never consulting the metric registry.
	ForceQuantile bool

	// Quantiles are the lower and upper data quantiles used
	// whenever a range bound is computed from the data.
	Quantiles minmax.F64
}

// Defaults sets the standard two-sided 95% quantile levels.
func (op *Options) Defaults() {
	op.Quantiles.Set(0.025, 0.975)
}

// Quantile returns the qth linear-interpolation quantile of the
// non-NaN values in data (the type-7 method used by numpy and pandas),
// with q in [0, 1]. Returns an error if there are no valid values.
func Quantile(data []float64, q float64) (float64, error) {
	srt := validSorted(data)
	if len(srt) == 0 {
		return 0, fmt.Errorf("ranges: no valid (non-NaN) values in data")
	}
	return quantileSorted(srt, q), nil
}

// Quantiles returns the range between the lo and hi
// linear-interpolation quantiles of the non-NaN values in data.
// Returns an error if there are no valid values.
func Quantiles(data []float64, lo, hi float64) (minmax.F64, error) {
	var r minmax.F64
	srt := validSorted(data)
	if len(srt) == 0 {
		return r, fmt.Errorf("ranges: no valid (non-NaN) values in data")
	}
	r.Set(quantileSorted(srt, lo), quantileSorted(srt, hi))
	return r, nil
}

// TableQuantiles returns the conservative quantile envelope across the
// given value columns of a table: the minimum of the per-column lo
// quantiles and the maximum of the per-column hi quantiles, so that the
// resulting range is shared by all compared series. Returns an error if
// no columns are given or any column is missing or has no valid values.
func TableQuantiles(dt *table.Table, lo, hi float64, columns ...string) (minmax.F64, error) {
	var r minmax.F64
	if len(columns) == 0 {
		return r, fmt.Errorf("ranges: no value columns given for quantile envelope")
	}
	r.SetInfinity()
	for _, cn := range columns {
		cl, err := dt.ColumnTry(cn)
		if err != nil {
			return r, err
		}
		d := make([]float64, cl.NumRows())
		for i := range d {
			d[i] = cl.FloatRow(i)
		}
		cr, err := Quantiles(d, lo, hi)
		if err != nil {
			return r, fmt.Errorf("column %q: %w", cn, err)
		}
		r.Min = math.Min(r.Min, cr.Min)
		r.Max = math.Max(r.Max, cr.Max)
	}
	return r, nil
}

// Select returns the display range for the given data and metric.
// If metric is empty or opt.ForceQuantile is set, the quantile range
// of the data is used and the registry is never consulted. An unknown
// metric logs a warning naming the known metrics and falls back to the
// quantile range. A registry range with both bounds [metrics.Open] is
// replaced by a range symmetric around zero covering the quantile
// range; a single open bound is filled in from the quantiles.
func Select(data []float64, metric string, reg *metrics.Registry, opt Options) (minmax.F64, error) {
	return selectRange(func(lo, hi float64) (minmax.F64, error) {
		return Quantiles(data, lo, hi)
	}, metric, reg, opt)
}

// SelectTable is [Select] over the quantile envelope of multiple
// table columns (see [TableQuantiles]), for plots that share one
// range across compared series.
func SelectTable(dt *table.Table, columns []string, metric string, reg *metrics.Registry, opt Options) (minmax.F64, error) {
	return selectRange(func(lo, hi float64) (minmax.F64, error) {
		return TableQuantiles(dt, lo, hi, columns...)
	}, metric, reg, opt)
}

// ExtendFromData returns the colorbar [metrics.Extend] decoration
// implied by comparing the chosen range against the actual data:
// a side extends when valid data falls beyond it.
func ExtendFromData(data []float64, r minmax.F64) metrics.Extend {
	var dr minmax.F64
	dr.SetInfinity()
	got := false
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		dr.FitValInRange(v)
		got = true
	}
	if !got {
		return metrics.Neither
	}
	switch {
	case r.Min > dr.Min && r.Max < dr.Max:
		return metrics.Both
	case r.Min > dr.Min:
		return metrics.Min
	case r.Max < dr.Max:
		return metrics.Max
	}
	return metrics.Neither
}

func selectRange(quant func(lo, hi float64) (minmax.F64, error), metric string, reg *metrics.Registry, opt Options) (minmax.F64, error) {
	qr := func() (minmax.F64, error) {
		return quant(opt.Quantiles.Min, opt.Quantiles.Max)
	}
	if metric == "" || opt.ForceQuantile {
		return qr()
	}
	mr, ok := reg.Lookup(metric)
	if !ok {
		slog.Warn("ranges: metric is not known, falling back to quantile range",
			"metric", metric, "known", strings.Join(reg.Known(), ", "))
		return qr()
	}
	switch {
	case mr.HasMin() && mr.HasMax():
		return minmax.F64{Min: mr.Min, Max: mr.Max}, nil
	case !mr.HasMin() && !mr.HasMax():
		// diverging metric: make the range symmetric around zero
		r, err := qr()
		if err != nil {
			return r, err
		}
		m := math.Max(math.Abs(r.Min), math.Abs(r.Max))
		r.Set(-m, m)
		return r, nil
	case !mr.HasMin():
		r, err := qr()
		if err != nil {
			return r, err
		}
		r.Max = mr.Max
		return r, nil
	default: // only max open
		r, err := qr()
		if err != nil {
			return r, err
		}
		r.Min = mr.Min
		return r, nil
	}
}

// validSorted returns a sorted copy of data with NaNs removed.
func validSorted(data []float64) []float64 {
	srt := make([]float64, 0, len(data))
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		srt = append(srt, v)
	}
	slices.Sort(srt)
	return srt
}

// quantileSorted is the type-7 linear-interpolation quantile
// of already-sorted, NaN-free data.
func quantileSorted(srt []float64, q float64) float64 {
	n := len(srt)
	if n == 1 {
		return srt[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	if lo >= n-1 {
		return srt[n-1]
	}
	if lo < 0 {
		return srt[0]
	}
	frac := pos - float64(lo)
	return srt[lo] + frac*(srt[lo+1]-srt[lo])
}
