// Copyright 2026 The AsymmetricSplitAndMerge Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package raster_test

import (
	"testing"

	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/stretchr/testify/require"
)

func TestBufferSetAndAt(t *testing.T) {
	b := raster.NewBuffer(4, 3)
	require.Equal(t, 4, b.Width())
	require.Equal(t, 3, b.Height())

	b.Set(2, 1, raster.Pixel{10, 20, 30})
	require.Equal(t, raster.Pixel{10, 20, 30}, b.At(2, 1))
	require.Equal(t, raster.Pixel{0, 0, 0}, b.At(0, 0))
}

func TestNewBufferPanicsOnNonPositiveDims(t *testing.T) {
	require.Panics(t, func() { raster.NewBuffer(0, 5) })
	require.Panics(t, func() { raster.NewBuffer(5, -1) })
}

func TestBufferSatisfiesImageInterface(t *testing.T) {
	var img raster.Image = raster.NewBuffer(2, 2)
	require.Equal(t, 2, img.Width())
}
