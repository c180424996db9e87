// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valplot

import (
	"fmt"
	"math"

	"cogentcore.org/core/tensor/table"
	"cogentcore.org/geoval/ranges"
	"gonum.org/v1/gonum/stat"
)

// columnData returns the values of the given column as a []float64.
func columnData(dt *table.Table, column string) ([]float64, error) {
	cl, err := dt.ColumnTry(column)
	if err != nil {
		return nil, err
	}
	d := make([]float64, cl.NumRows())
	for i := range d {
		d[i] = cl.FloatRow(i)
	}
	return d, nil
}

// boxStats computes the five-number summary of the non-NaN values,
// with whiskers at the most extreme values within 1.5 IQR of the box,
// matching the usual boxplot convention with outliers hidden.
func boxStats(data []float64) (BoxStats, error) {
	var bs BoxStats
	q1, err := ranges.Quantile(data, 0.25)
	if err != nil {
		return bs, err
	}
	q3, _ := ranges.Quantile(data, 0.75)
	md, _ := ranges.Quantile(data, 0.5)
	iqr := q3 - q1
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		if math.IsNaN(v) || v < q1-1.5*iqr || v > q3+1.5*iqr {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	bs.Low = lo
	bs.Q1 = q1
	bs.Median = md
	bs.Q3 = q3
	bs.High = hi
	return bs, nil
}

// summaryLabel returns the multi-line box label for one dataset:
// pretty name and version, optionally with median, standard deviation,
// and number of observations.
func summaryLabel(pretty, version string, data []float64, printNumbers bool) (string, error) {
	if !printNumbers {
		return fmt.Sprintf("%s\n%s", pretty, version), nil
	}
	md, err := ranges.Quantile(data, 0.5)
	if err != nil {
		return "", err
	}
	valid := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	sd := stat.StdDev(valid, nil)
	return fmt.Sprintf("%s\n(%s)\nmedian: %.3g\nstd. dev.: %.3g\nN obs.: %d",
		pretty, version, md, sd, len(valid)), nil
}
