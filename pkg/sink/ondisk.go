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

package sink

import (
	"encoding/binary"
	"io"
	"runtime"

	"github.com/klauspost/compress/zstd"
	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/pkg/errors"
	"github.com/xfmoulet/qoi"
)

// trailingFrameCount is how many extra copies of the final frame get written
// before the container closes, so a player that holds on the last frame for
// a beat doesn't need special-casing by its caller.
const trailingFrameCount = 100

// OnDisk renders the same tinted-overlay frames as OnScreen, but instead of
// handing them to a live Display it QOI-encodes each one and appends it,
// length-prefixed, to a single zstd-compressed container stream. One
// container replaces what would otherwise be one raw image file per split,
// which for a deep split tree is thousands of files.
type OnDisk struct {
	r  *renderer
	zw *zstd.Encoder
}

// NewOnDisk builds an OnDisk sink that streams its frame container to w. The
// caller owns w and should close it only after OnFinalize returns.
func NewOnDisk(img raster.Image, w io.Writer) (*OnDisk, error) {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(runtime.NumCPU()))
	if err != nil {
		return nil, errors.Wrap(err, "open frame container")
	}
	return &OnDisk{r: newRenderer(img), zw: zw}, nil
}

// writeFrame QOI-encodes the current canvas and appends it to the container
// as a uint32 little-endian length prefix followed by the encoded bytes, so
// a reader can walk the stream without re-parsing QOI headers to find frame
// boundaries.
func (s *OnDisk) writeFrame() error {
	var buf []byte
	w := &sliceWriter{buf: &buf}
	if err := qoi.Encode(w, s.r.frame()); err != nil {
		return errors.Wrap(err, "encode frame")
	}

	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(len(buf)))
	if _, err := s.zw.Write(lenPrefix[:]); err != nil {
		return errors.Wrap(err, "write frame length")
	}
	if _, err := s.zw.Write(buf); err != nil {
		return errors.Wrap(err, "write frame")
	}
	return nil
}

// OnSplit implements sink.ProgressSink.
func (s *OnDisk) OnSplit(parentID int, children [2]Area) error {
	s.r.applySplit(parentID, children)
	return s.writeFrame()
}

// OnMerge implements sink.ProgressSink.
func (s *OnDisk) OnMerge(newID int, children [2]int) error {
	s.r.applyMerge(newID, children)
	return nil
}

// OnFinalize writes trailingFrameCount extra copies of the final frame and
// closes the container. The repeated trailing frame mirrors the original
// on-disk logger's finalize step, which pads the output so playback doesn't
// cut the instant the last merge lands.
func (s *OnDisk) OnFinalize() error {
	for i := 0; i < trailingFrameCount; i++ {
		if err := s.writeFrame(); err != nil {
			return err
		}
	}
	return errors.Wrap(s.zw.Close(), "close frame container")
}

// sliceWriter is the smallest possible io.Writer over a growable byte slice;
// QOI's encoder wants an io.Writer and this module has no other use for an
// in-memory buffer, so bytes.Buffer's extra API surface isn't worth pulling
// in just for this.
type sliceWriter struct{ buf *[]byte }

func (w *sliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}
