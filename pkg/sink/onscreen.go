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
	"image"

	"github.com/lucaSartore/splitmerge/pkg/raster"
)

// Display is whatever surface an OnScreen sink hands each rendered frame
// to. The pipeline itself is headless; a driver supplies a Display that
// actually puts pixels on a screen (a window, a terminal preview, a test
// recorder of frames).
type Display interface {
	Show(frame image.Image) error
}

// OnScreen renders the current segmentation as tinted overlays on a
// mutable copy of the source image and hands each frame to a Display after
// every split.
type OnScreen struct {
	r       *renderer
	display Display
}

// NewOnScreen builds an OnScreen sink over img, pushing frames to display.
func NewOnScreen(img raster.Image, display Display) *OnScreen {
	return &OnScreen{r: newRenderer(img), display: display}
}

// OnSplit implements sink.ProgressSink.
func (s *OnScreen) OnSplit(parentID int, children [2]Area) error {
	s.r.applySplit(parentID, children)
	return s.display.Show(s.r.frame())
}

// OnMerge implements sink.ProgressSink.
func (s *OnScreen) OnMerge(newID int, children [2]int) error {
	s.r.applyMerge(newID, children)
	return nil
}

// OnFinalize implements sink.ProgressSink.
func (s *OnScreen) OnFinalize() error {
	return s.display.Show(s.r.frame())
}
