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

// Command segment is the CLI driver: it loads a config, decodes an input
// image, wires up the chosen splitter/merger/sink triple, and runs the
// pipeline from Split through Merge to completion.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/lucaSartore/splitmerge/pkg/config"
	"github.com/lucaSartore/splitmerge/pkg/imageio"
	"github.com/lucaSartore/splitmerge/pkg/logutil"
	"github.com/lucaSartore/splitmerge/pkg/pipeline"
	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/lucaSartore/splitmerge/pkg/sink"
	"github.com/lucaSartore/splitmerge/pkg/strategy"
	"github.com/lucaSartore/splitmerge/pkg/versioninfo"
	"github.com/pingcap/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var cfgFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config.Default()

	root := &cobra.Command{
		Use:   "segment",
		Short: "run the split-and-merge image segmentation pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a TOML config file")
	config.BindFlags(cfg, root.PersistentFlags())

	root.AddCommand(newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the build version and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(versioninfo.String())
		},
	}
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	if cfgFile != "" {
		// Load overwrites every field the file sets; re-apply the flags given
		// on the command line afterwards so they take precedence.
		explicit := map[string]string{}
		cmd.Flags().Visit(func(f *pflag.Flag) { explicit[f.Name] = f.Value.String() })
		if err := cfg.Load(cfgFile); err != nil {
			return err
		}
		for name, value := range explicit {
			if err := cmd.Flags().Set(name, value); err != nil {
				return errors.Wrapf(err, "segment: re-apply --%s", name)
			}
		}
	}

	if _, err := logutil.Init(cfg.LogLevel); err != nil {
		return err
	}
	versioninfo.Log()

	if cfg.Input == "" {
		return errors.New("segment: --input is required")
	}

	img, err := imageio.Decode(cfg.Input)
	if err != nil {
		return err
	}

	splitter, err := buildSplitter(cfg)
	if err != nil {
		return err
	}
	merger := buildMerger(cfg)
	progressSink, closeSink, err := buildSink(cfg, img)
	if err != nil {
		return err
	}
	defer closeSink()

	p := pipeline.New(splitter, merger, progressSink, img)

	log.Info("starting split phase", zap.Int("workers", cfg.SplitWorkers))
	mergePipeline, err := p.ExecuteSplit(cfg.SplitWorkers)
	if err != nil {
		return errors.Wrap(err, "segment: split phase failed")
	}

	log.Info("starting merge phase", zap.Int("workers", cfg.MergeWorkers))
	complete, err := mergePipeline.ExecuteMerge(cfg.MergeWorkers)
	if err != nil {
		return errors.Wrap(err, "segment: merge phase failed")
	}

	log.Info("segmentation complete", zap.Int("leaves", len(complete.Tree().CollectLeaves())))

	if cfg.Output != "" {
		return errors.Wrap(imageio.Encode(cfg.Output, img), "segment: write output")
	}
	return nil
}

func buildSplitter(cfg *config.Config) (strategy.Splitter, error) {
	blind := strategy.NewBlindSplitter(cfg.MinSplitSize)

	var base strategy.Splitter
	switch cfg.Splitter {
	case "blind":
		base = blind
	case "variance":
		base = strategy.NewVarianceSplitter(cfg.MinSplitSize, cfg.StdThreshold)
	case "maxdelta":
		base = strategy.NewMaxDeltaSplitter(cfg.MinSplitSize, cfg.StdThreshold)
	case "gradient":
		base = strategy.NewGradientAsymmetricSplitter(
			strategy.NewVarianceSplitter(cfg.MinSplitSize, cfg.StdThreshold))
	default:
		return nil, errors.Errorf("segment: unknown splitter %q", cfg.Splitter)
	}
	return base, nil
}

func buildMerger(cfg *config.Config) strategy.Merger {
	switch cfg.Merger {
	case "blind":
		return strategy.NewBlindMerger()
	default:
		return strategy.NewColorDistanceMerger(cfg.ColorThreshold, cfg.MergeStdThresh)
	}
}

func buildSink(cfg *config.Config, img raster.Image) (sink.ProgressSink, func(), error) {
	switch cfg.Sink {
	case "ondisk":
		f, err := os.Create(cfg.FramesPath)
		if err != nil {
			return nil, func() {}, errors.Wrapf(err, "segment: create %s", cfg.FramesPath)
		}
		s, err := sink.NewOnDisk(img, f)
		if err != nil {
			f.Close()
			return nil, func() {}, err
		}
		return s, func() { f.Close() }, nil
	case "onscreen":
		return sink.NewOnScreen(img, noopDisplay{}), func() {}, nil
	default:
		return sink.NewNull(), func() {}, nil
	}
}

// noopDisplay is the default Display a headless CLI run hands to OnScreen:
// it discards every frame instead of opening a window, which keeps
// --sink=onscreen usable in a terminal-only environment for testing the
// render path without a GUI dependency.
type noopDisplay struct{}

func (noopDisplay) Show(image.Image) error { return nil }
