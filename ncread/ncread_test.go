// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncread

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloats(t *testing.T) {
	fs, err := Floats([]float32{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, fs)

	fs, err = Floats([]int16{-1, 0, 7})
	assert.NoError(t, err)
	assert.Equal(t, []float64{-1, 0, 7}, fs)

	fs, err = Floats(float32(2.5))
	assert.NoError(t, err)
	assert.Equal(t, []float64{2.5}, fs)

	fs, err = Floats([][]float32{{1, 2}, {3, 4}})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, fs)

	_, err = Floats([][]float32{{1, 2}, {3}})
	assert.Error(t, err)

	_, err = Floats("not numeric")
	assert.Error(t, err)
}

func TestLocations(t *testing.T) {
	// equal lengths: trajectory, used as-is
	lats, lons, err := locations([]float64{1, 2, 3}, []float64{4, 5, 6})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, lats)
	assert.Equal(t, []float64{4, 5, 6}, lons)

	// grid axes: row-major lat x lon product
	lats, lons, err = locations([]float64{10, 20}, []float64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, []float64{10, 10, 10, 20, 20, 20}, lats)
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, lons)

	_, _, err = locations(nil, []float64{1})
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("testdata/does-not-exist.nc")
	assert.Error(t, err)
}
