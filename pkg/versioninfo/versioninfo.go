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

// Package versioninfo holds build-time stamped version metadata, set via
// -ldflags at build time the same way the teacher stamps its release
// version, git hash, and build timestamp.
package versioninfo

import (
	"fmt"

	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Version information, overwritten by -ldflags at build time.
var (
	ReleaseVersion = "None"
	BuildTS        = "None"
	GitHash        = "None"
	GitBranch      = "None"
)

// Log emits the current build stamp as a single structured log line, the
// first thing the CLI driver does on startup.
func Log() {
	log.Info("build info",
		zap.String("release-version", ReleaseVersion),
		zap.String("git-hash", GitHash),
		zap.String("git-branch", GitBranch),
		zap.String("build-ts", BuildTS))
}

// String renders the build stamp for a "version" subcommand's plain-text
// output.
func String() string {
	return fmt.Sprintf("Release Version: %s\nGit Commit Hash: %s\nGit Branch: %s\nBuild TS: %s\n",
		ReleaseVersion, GitHash, GitBranch, BuildTS)
}
