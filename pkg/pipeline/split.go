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

	"github.com/lucaSartore/splitmerge/pkg/metrics"
	"github.com/lucaSartore/splitmerge/pkg/region"
	"github.com/lucaSartore/splitmerge/pkg/segerr"
	"github.com/lucaSartore/splitmerge/pkg/sink"
	"github.com/lucaSartore/splitmerge/pkg/splittree"
	"github.com/lucaSartore/splitmerge/pkg/strategy"
	"github.com/pingcap/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// splitRequest is dispatched orchestrator → split workers.
type splitRequest struct {
	id   splittree.NodeID
	view region.View
}

// splitResponse is returned split workers → orchestrator. ok=false means
// "this leaf does not split further"; the id always identifies the node
// that was evaluated, regardless of outcome.
type splitResponse struct {
	id  splittree.NodeID
	cut strategy.Cut
	ok  bool
	err error
}

// evalSplit calls the splitter and recovers from a panic inside it,
// turning it into a WorkerDeath response instead of taking the whole
// goroutine down silently: a dead worker must still answer for the one
// request it was holding, or the orchestrator's in-flight count never
// reaches zero and the phase hangs instead of failing.
func evalSplit(splitter strategy.Splitter, req splitRequest) (resp splitResponse) {
	resp.id = req.id
	defer func() {
		if r := recover(); r != nil {
			resp.err = segerr.New(segerr.WorkerDeath, errors.Errorf("split worker panicked: %v", r).Error())
		}
	}()

	start := time.Now()
	cut, decided, err := splitter.Decide(req.view)
	metrics.PhaseDuration.WithLabelValues("split").Observe(time.Since(start).Seconds())
	if err != nil {
		resp.err = segerr.Wrap(segerr.StrategyFailure, err, "splitter.Decide failed")
		return resp
	}
	resp.cut = cut
	resp.ok = decided
	return resp
}

// splitWorker pulls one request at a time from requests, guarded by reqMu
// so concurrent workers never race over the same pending request, evaluates
// the splitter without holding any lock, and pushes its answer to
// responses under respMu. It exits the moment requests is closed and
// drained, or the instant it reports a WorkerDeath.
func splitWorker(splitter strategy.Splitter, requests <-chan splitRequest, reqMu *sync.Mutex, responses chan<- splitResponse, respMu *sync.Mutex, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		reqMu.Lock()
		req, ok := <-requests
		reqMu.Unlock()
		if !ok {
			return
		}

		resp := evalSplit(splitter, req)

		respMu.Lock()
		responses <- resp
		respMu.Unlock()

		if resp.err != nil && segerr.Cause(resp.err) == segerr.WorkerDeath {
			return
		}
	}
}

// ExecuteSplit runs the Split phase with nWorkers workers (nWorkers >= 1)
// and returns the resulting MergePipeline. Any fatal error aborts the
// phase: the request channel is still closed and workers joined before
// the error is returned, so no goroutine is ever leaked.
func (p *SplitPipeline) ExecuteSplit(nWorkers int) (*MergePipeline, error) {
	if nWorkers < 1 {
		return nil, errors.Errorf("pipeline: nWorkers must be >= 1, got %d", nWorkers)
	}

	tree := splittree.New(region.NewView(p.image))

	requests := make(chan splitRequest, nWorkers)
	responses := make(chan splitResponse, nWorkers)
	var reqMu, respMu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(nWorkers)
	for i := 0; i < nWorkers; i++ {
		go splitWorker(p.splitter, requests, &reqMu, responses, &respMu, &wg)
	}

	worklist := []splittree.NodeID{0}
	inFlight := 0

	dispatch := func(id splittree.NodeID) {
		requests <- splitRequest{id: id, view: tree.Node(id).View}
		inFlight++
	}

	var loopErr error
loop:
	for len(worklist) > 0 || inFlight > 0 {
		// At most 2*nWorkers requests are outstanding at once: whenever the
		// request buffer is full the response buffer is not, so workers can
		// always hand back an answer and a dispatch never blocks for good.
		for len(worklist) > 0 && inFlight < 2*nWorkers {
			id := worklist[0]
			worklist = worklist[1:]
			dispatch(id)
		}

		resp := <-responses
		inFlight--

		if resp.err != nil {
			loopErr = resp.err
			break loop
		}
		if !resp.ok {
			continue
		}

		view := tree.Node(resp.id).View
		children, err := region.Split(view, resp.cut.Axis, resp.cut.Offset)
		if err != nil {
			loopErr = segerr.Wrap(segerr.InvalidSplit, err, "splitter proposed an invalid cut")
			break loop
		}

		id1 := tree.Append(children[0])
		id2 := tree.Append(children[1])
		tree.SetChildren(resp.id, id1, id2)

		if err := p.sink.OnSplit(int(resp.id), [2]sink.Area{
			{ID: int(id1), Rect: children[0].Rect},
			{ID: int(id2), Rect: children[1].Rect},
		}); err != nil {
			loopErr = segerr.Wrap(segerr.SinkFailure, err, "sink.OnSplit failed")
			break loop
		}
		metrics.SplitsTotal.Inc()

		worklist = append(worklist, id1, id2)
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

	log.Info("split phase complete", zap.Int("leaves", len(tree.CollectLeaves())), zap.Int("nodes", tree.Len()))

	return &MergePipeline{image: p.image, merger: p.merger, sink: p.sink, tree: tree}, nil
}
