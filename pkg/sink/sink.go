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

// Package sink defines the progress-sink contract the orchestrator calls
// into on every split, every merge, and at phase completion, plus the
// Null/OnScreen/OnDisk reference implementations. Sinks are never on the
// hot path: the orchestrator goroutine is the only caller.
package sink

import "github.com/lucaSartore/splitmerge/pkg/region"

// Area names a region produced by a split or carried into a merge, for
// whatever rendering a sink chooses to do with it.
type Area struct {
	ID   int
	Rect region.Rect
}

// ProgressSink receives split/merge/finalize events from the orchestrator.
// Any method may fail; a failure is fatal (segerr.SinkFailure) and aborts
// the running phase.
type ProgressSink interface {
	OnSplit(parentID int, children [2]Area) error
	OnMerge(newID int, children [2]int) error
	OnFinalize() error
}

// Null discards every event. It is the zero-overhead sink for headless runs
// and for tests that don't care about progress reporting.
type Null struct{}

// NewNull builds a Null sink.
func NewNull() Null { return Null{} }

// OnSplit implements ProgressSink.
func (Null) OnSplit(int, [2]Area) error { return nil }

// OnMerge implements ProgressSink.
func (Null) OnMerge(int, [2]int) error { return nil }

// OnFinalize implements ProgressSink.
func (Null) OnFinalize() error { return nil }
