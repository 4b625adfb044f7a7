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

// Package metrics exposes the pipeline's prometheus collectors. The three
// counters are incremented only by the orchestrator goroutine; PhaseDuration
// is observed by the split and merge workers, once per strategy decision.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SplitsTotal counts every split event applied to the split tree.
	SplitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "splitmerge",
		Subsystem: "split",
		Name:      "events_total",
		Help:      "Counter of split events applied by the orchestrator.",
	})

	// MergesTotal counts every merge event applied to the disjoint-set forest.
	MergesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "splitmerge",
		Subsystem: "merge",
		Name:      "events_total",
		Help:      "Counter of merge events applied by the orchestrator.",
	})

	// MergeRejectionsTotal counts candidate pairs a merger voted not to merge.
	MergeRejectionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "splitmerge",
		Subsystem: "merge",
		Name:      "rejections_total",
		Help:      "Counter of candidate region pairs rejected by the merger.",
	})

	// PhaseDuration buckets the wall-clock time of each single splitter or
	// merger decision, labelled by the phase it ran in.
	PhaseDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "splitmerge",
		Subsystem: "pipeline",
		Name:      "phase_duration_seconds",
		Help:      "Bucketed histogram of per-decision strategy latency, by phase.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
	}, []string{"phase"})
)

func init() {
	prometheus.MustRegister(SplitsTotal)
	prometheus.MustRegister(MergesTotal)
	prometheus.MustRegister(MergeRejectionsTotal)
	prometheus.MustRegister(PhaseDuration)
}
