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

// Package logutil wires up the pipeline's global logger: a zap.Logger
// built through pingcap/log's config, with its result installed as the
// global logger so every package can keep calling the log.Info/log.Debug
// package-level functions instead of threading a *zap.Logger everywhere.
package logutil

import (
	"github.com/pingcap/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Init builds a logger at the given level ("debug", "info", "warn", or
// "error") and installs it as the package-level logger every other
// package's log.Info/log.Debug/log.Error calls resolve against.
func Init(level string) (*zap.Logger, error) {
	conf := &log.Config{Level: level, File: log.FileLogConfig{}}
	lg, props, err := log.InitLogger(conf)
	if err != nil {
		return nil, errors.Wrap(err, "logutil: init logger")
	}
	log.ReplaceGlobals(lg, props)
	return lg, nil
}
