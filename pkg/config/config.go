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

// Package config loads the segmentation driver's configuration from a TOML
// file and lets pflag-bound command-line values override it, mirroring how
// the teacher loads its server configuration.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Config is every knob the CLI driver exposes over the pipeline.
type Config struct {
	Input  string `toml:"input" json:"input"`
	Output string `toml:"output" json:"output"`

	SplitWorkers int `toml:"split-workers" json:"split-workers"`
	MergeWorkers int `toml:"merge-workers" json:"merge-workers"`

	MinSplitSize int     `toml:"min-split-size" json:"min-split-size"`
	StdThreshold float64 `toml:"std-threshold" json:"std-threshold"`

	ColorThreshold float64 `toml:"color-threshold" json:"color-threshold"`
	MergeStdThresh float64 `toml:"merge-std-threshold" json:"merge-std-threshold"`

	// Splitter selects the split strategy: "blind", "variance", "maxdelta",
	// or "gradient" (gradient always wraps a variance splitter built from
	// MinSplitSize and StdThreshold; its decision strategy is not selectable).
	Splitter string `toml:"splitter" json:"splitter"`
	// Merger selects the merge strategy: "blind" or "colordistance".
	Merger string `toml:"merger" json:"merger"`

	// Sink selects the progress sink: "null", "onscreen", or "ondisk".
	Sink       string `toml:"sink" json:"sink"`
	FramesPath string `toml:"frames-path" json:"frames-path"`

	LogLevel string `toml:"log-level" json:"log-level"`
}

// Default returns a Config with conservative defaults, the same way the
// teacher seeds its server Config before applying file and flag overrides.
func Default() *Config {
	return &Config{
		SplitWorkers:   4,
		MergeWorkers:   4,
		MinSplitSize:   8,
		StdThreshold:   20,
		ColorThreshold: 30,
		MergeStdThresh: 30,
		Splitter:       "variance",
		Merger:         "colordistance",
		Sink:           "null",
		FramesPath:     "segmentation.frames.zst",
		LogLevel:       "info",
	}
}

// Load decodes path into c, leaving any field not present in the file at
// its current (Default) value.
func (c *Config) Load(path string) error {
	_, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrapf(err, "config: decode %s", path)
	}
	return nil
}

// BindFlags registers every Config field as a pflag, so the driver's flag
// set can parse command-line overrides directly into c. Call this before
// Load so file values still win unless the flag was explicitly set.
func BindFlags(c *Config, fs *pflag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "path to the source image")
	fs.StringVar(&c.Output, "output", c.Output, "path to write the decoded input image back out as PNG (no segmentation is drawn on it)")
	fs.IntVar(&c.SplitWorkers, "split-workers", c.SplitWorkers, "worker pool size for the split phase")
	fs.IntVar(&c.MergeWorkers, "merge-workers", c.MergeWorkers, "worker pool size for the merge phase")
	fs.IntVar(&c.MinSplitSize, "min-split-size", c.MinSplitSize, "smallest side length a splitter may still bisect")
	fs.Float64Var(&c.StdThreshold, "std-threshold", c.StdThreshold, "per-channel std-deviation threshold that triggers a split")
	fs.Float64Var(&c.ColorThreshold, "color-threshold", c.ColorThreshold, "mean-color distance threshold below which two regions merge")
	fs.Float64Var(&c.MergeStdThresh, "merge-std-threshold", c.MergeStdThresh, "std-deviation distance threshold below which two regions merge")
	fs.StringVar(&c.Splitter, "splitter", c.Splitter, "split strategy: blind, variance, maxdelta, gradient")
	fs.StringVar(&c.Merger, "merger", c.Merger, "merge strategy: blind, colordistance")
	fs.StringVar(&c.Sink, "sink", c.Sink, "progress sink: null, onscreen, ondisk")
	fs.StringVar(&c.FramesPath, "frames-path", c.FramesPath, "output path for the ondisk sink's frame container")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn, or error")
}
