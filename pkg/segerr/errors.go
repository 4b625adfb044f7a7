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

// Package segerr classifies the fatal error kinds the segmentation pipeline
// can produce. Every kind here is terminal: the orchestrator never retries
// and never suppresses one of these, it only wraps it with context on its
// way up to the driver.
package segerr

import "github.com/pkg/errors"

// Kind identifies why the pipeline aborted.
type Kind int

const (
	// Unknown is the zero value; Cause returns it for errors this package
	// did not originate.
	Unknown Kind = iota
	// InvalidSplit means a splitter proposed an out-of-range cut.
	InvalidSplit
	// StrategyFailure wraps an error returned by a splitter or merger.
	StrategyFailure
	// WorkerDeath means a worker goroutine exited (panicked or errored)
	// before its phase's main loop had finished with it.
	WorkerDeath
	// SinkFailure means a progress sink callback returned an error.
	SinkFailure
	// NotFound means a disjoint-set or registry lookup targeted an unknown ID.
	NotFound
	// DuplicateID means an insert targeted an ID already present.
	DuplicateID
)

func (k Kind) String() string {
	switch k {
	case InvalidSplit:
		return "InvalidSplit"
	case StrategyFailure:
		return "StrategyFailure"
	case WorkerDeath:
		return "WorkerDeath"
	case SinkFailure:
		return "SinkFailure"
	case NotFound:
		return "NotFound"
	case DuplicateID:
		return "DuplicateID"
	default:
		return "Unknown"
	}
}

// kindError pairs a Kind with the underlying cause so Cause can recover it
// after the error has been wrapped by errors.Wrapf along its way up.
type kindError struct {
	kind  Kind
	cause error
}

func (e *kindError) Error() string { return e.kind.String() + ": " + e.cause.Error() }
func (e *kindError) Cause() error  { return e.cause }

// New builds a fatal error of the given kind, wrapping msg as its cause.
func New(kind Kind, msg string) error {
	return &kindError{kind: kind, cause: errors.New(msg)}
}

// Wrap builds a fatal error of the given kind around an existing error,
// e.g. one returned by a splitter or merger strategy.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, cause: errors.Wrap(err, msg)}
}

// Cause walks err's cause chain one Cause() call at a time (the interface
// github.com/pkg/errors wrappers implement) and returns the Kind of the
// first *kindError found, or Unknown.
func Cause(err error) Kind {
	for err != nil {
		if ke, ok := err.(*kindError); ok {
			return ke.kind
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok {
			return Unknown
		}
		err = cause.Cause()
	}
	return Unknown
}
