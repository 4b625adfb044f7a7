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

// Package pipeline drives the two-phase Split/Merge orchestration. The
// type-state is expressed as three sibling structs — SplitPipeline,
// MergePipeline, CompletePipeline — rather than as one mutable struct with
// a phase flag: a caller holding a MergePipeline cannot accidentally call
// a Split-only method, because it has none. Each phase owns a fresh,
// bounded worker pool that is created at phase entry and fully joined at
// phase exit; nothing of one phase's concurrency survives into the next.
package pipeline

import (
	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/lucaSartore/splitmerge/pkg/sink"
	"github.com/lucaSartore/splitmerge/pkg/splittree"
	"github.com/lucaSartore/splitmerge/pkg/strategy"
)

// SplitPipeline is the pipeline before any work has run. New is the only
// way to build one.
type SplitPipeline struct {
	image    raster.Image
	splitter strategy.Splitter
	merger   strategy.Merger
	sink     sink.ProgressSink
}

// MergePipeline is the pipeline after ExecuteSplit, holding the completed
// split tree and everything ExecuteMerge needs.
type MergePipeline struct {
	image  raster.Image
	merger strategy.Merger
	sink   sink.ProgressSink
	tree   *splittree.Tree
}

// CompletePipeline is the pipeline after ExecuteMerge. It is a terminal
// state: it exposes nothing further to run, only the finished split tree
// for a driver that wants to inspect it.
type CompletePipeline struct {
	tree *splittree.Tree
}

// New builds a SplitPipeline over image, parameterized by the splitter,
// merger, and progress sink the driver chose. image is borrowed for the
// lifetime of both phases and must not be mutated by the caller until
// ExecuteMerge returns.
func New(splitter strategy.Splitter, merger strategy.Merger, progressSink sink.ProgressSink, image raster.Image) *SplitPipeline {
	return &SplitPipeline{image: image, splitter: splitter, merger: merger, sink: progressSink}
}

// Tree exposes the finished split tree of a completed pipeline, e.g. for a
// driver that wants to report region counts or dump geometry.
func (p *CompletePipeline) Tree() *splittree.Tree { return p.tree }
