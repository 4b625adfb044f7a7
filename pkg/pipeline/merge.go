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

package pipeline

import (
	"sync"
	"time"

	"github.com/lucaSartore/splitmerge/pkg/mask"
	"github.com/lucaSartore/splitmerge/pkg/metrics"
	"github.com/lucaSartore/splitmerge/pkg/region"
	"github.com/lucaSartore/splitmerge/pkg/segerr"
	"github.com/lucaSartore/splitmerge/pkg/strategy"
	"github.com/lucaSartore/splitmerge/pkg/unionfind"
	"github.com/pingcap/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// mergeRequest is dispatched orchestrator → merge workers: a candidate
// pair whose masks have already been materialized so the worker never
// touches the orchestrator-owned leaf registry.
type mergeRequest struct {
	a, b  unionfind.ID
	maskA *mask.Bitmap
	maskB *mask.Bitmap
}

// mergeResponse is returned merge workers → orchestrator.
type mergeResponse struct {
	a, b  unionfind.ID
	merge bool
	err   error
}

func evalMerge(merger strategy.Merger, req mergeRequest, img region.View) (resp mergeResponse) {
	resp.a, resp.b = req.a, req.b
	defer func() {
		if r := recover(); r != nil {
			resp.err = segerr.New(segerr.WorkerDeath, errors.Errorf("merge worker panicked: %v", r).Error())
		}
	}()

	start := time.Now()
	decided, err := merger.Decide(req.maskA, req.maskB, img.Image)
	metrics.PhaseDuration.WithLabelValues("merge").Observe(time.Since(start).Seconds())
	if err != nil {
		resp.err = segerr.Wrap(segerr.StrategyFailure, err, "merger.Decide failed")
		return resp
	}
	resp.merge = decided
	return resp
}

func mergeWorker(merger strategy.Merger, img region.View, requests <-chan mergeRequest, reqMu *sync.Mutex, responses chan<- mergeResponse, respMu *sync.Mutex, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		reqMu.Lock()
		req, ok := <-requests
		reqMu.Unlock()
		if !ok {
			return
		}

		resp := evalMerge(merger, req, img)

		respMu.Lock()
		responses <- resp
		respMu.Unlock()

		if resp.err != nil && segerr.Cause(resp.err) == segerr.WorkerDeath {
			return
		}
	}
}

// ExecuteMerge runs the Merge phase with nWorkers workers (nWorkers >= 1),
// calls sink.OnFinalize on success, and returns the resulting
// CompletePipeline.
func (p *MergePipeline) ExecuteMerge(nWorkers int) (*CompletePipeline, error) {
	if nWorkers < 1 {
		return nil, errors.Errorf("pipeline: nWorkers must be >= 1, got %d", nWorkers)
	}

	leaves := p.tree.CollectLeaves()
	forest := unionfind.New()
	registry := make(map[unionfind.ID]*mask.Mask, len(leaves))

	nextID := unionfind.ID(0)
	for _, leaf := range leaves {
		id := unionfind.ID(leaf.ID)
		if err := forest.Add(id); err != nil {
			return nil, err
		}
		registry[id] = mask.NewRect(leaf.View.Rect)
		if id >= nextID {
			nextID = id + 1
		}
	}

	for i := 0; i < len(leaves); i++ {
		for j := i + 1; j < len(leaves); j++ {
			if region.TouchesAndOverlaps(leaves[i].View.Rect, leaves[j].View.Rect) {
				if err := forest.SetNeighbors(unionfind.ID(leaves[i].ID), unionfind.ID(leaves[j].ID)); err != nil {
					return nil, err
				}
			}
		}
	}

	imgW, imgH := p.image.Width(), p.image.Height()
	rootView := region.NewView(p.image)

	// Each cycle sends all of its pairs before reading any response, so the
	// request buffer must hold a whole cycle: at most one pair per two roots.
	requests := make(chan mergeRequest, len(leaves))
	responses := make(chan mergeResponse, nWorkers)
	var reqMu, respMu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(nWorkers)
	for i := 0; i < nWorkers; i++ {
		go mergeWorker(p.merger, rootView, requests, &reqMu, responses, &respMu, &wg)
	}

	var loopErr error
loop:
	for {
		pairs := forest.PairsToCheck()
		if len(pairs) == 0 {
			break
		}

		for _, pair := range pairs {
			requests <- mergeRequest{
				a:     pair[0],
				b:     pair[1],
				maskA: registry[pair[0]].Materialize(imgW, imgH),
				maskB: registry[pair[1]].Materialize(imgW, imgH),
			}
		}

		var toApply [][2]unionfind.ID
		for range pairs {
			resp := <-responses
			if resp.err != nil {
				loopErr = resp.err
				break loop
			}
			if !resp.merge {
				forest.UnmarkNeighbors(resp.a, resp.b)
				metrics.MergeRejectionsTotal.Inc()
				continue
			}
			toApply = append(toApply, [2]unionfind.ID{resp.a, resp.b})
		}

		for _, pair := range toApply {
			a, b := pair[0], pair[1]
			newID := nextID
			nextID++

			bitmapA := registry[a].Materialize(imgW, imgH)
			bitmapB := registry[b].Materialize(imgW, imgH)
			merged, err := mask.Union(bitmapA, bitmapB)
			if err != nil {
				loopErr = segerr.Wrap(segerr.StrategyFailure, err, "mask union failed")
				break loop
			}
			registry[newID] = mask.NewFromBitmap(merged)

			if err := p.sink.OnMerge(int(newID), [2]int{int(a), int(b)}); err != nil {
				loopErr = segerr.Wrap(segerr.SinkFailure, err, "sink.OnMerge failed")
				break loop
			}
			metrics.MergesTotal.Inc()

			if err := forest.Unite(newID, a, b); err != nil {
				loopErr = err
				break loop
			}
		}
		if loopErr != nil {
			break loop
		}

		forest.ClearData()
	}

	close(requests)
	go func() {
		wg.Wait()
		close(responses)
	}()
	// After an early break, workers may still be answering requests the
	// loop no longer reads; drain them so every worker can exit.
	for range responses {
	}

	if loopErr != nil {
		return nil, loopErr
	}

	if err := p.sink.OnFinalize(); err != nil {
		return nil, segerr.Wrap(segerr.SinkFailure, err, "sink.OnFinalize failed")
	}

	log.Info("merge phase complete", zap.Int("finalRoots", len(forest.Roots())))

	return &CompletePipeline{tree: p.tree}, nil
}
