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

package imageio_test

import (
	"path/filepath"
	"testing"

	"github.com/lucaSartore/splitmerge/pkg/imageio"
	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/stretchr/testify/require"
)

func TestEncodeThenDecodeRoundTrips(t *testing.T) {
	img := raster.NewBuffer(12, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			img.Set(x, y, raster.Pixel{uint8(x * 10), uint8(y * 10), 42})
		}
	}

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	require.NoError(t, imageio.Encode(path, img))

	decoded, err := imageio.Decode(path)
	require.NoError(t, err)
	require.Equal(t, img.Width(), decoded.Width())
	require.Equal(t, img.Height(), decoded.Height())

	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			require.Equal(t, img.At(x, y), decoded.At(x, y))
		}
	}
}
