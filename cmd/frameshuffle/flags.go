package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"frameshuffle/internal/config"
	"frameshuffle/internal/shuffle"
)

// runFlags are shared by the run and plan commands. Every flag overrides
// the corresponding config value; unset flags leave the config alone.
type runFlags struct {
	src      string
	dst      string
	maxFiles int
	maxBytes string
	seed     uint64
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.src, "src", "", "Source folder holding the photo library")
	cmd.Flags().StringVar(&f.dst, "dst", "", "Destination root for the numbered folders")
	cmd.Flags().IntVar(&f.maxFiles, "max-files", 0, "Max photos per folder")
	cmd.Flags().StringVar(&f.maxBytes, "max-bytes", "", "Max bytes per folder (plain or humanized, e.g. 4GiB)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Shuffle seed (default: derived from time and pid)")
}

func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("src") {
		expanded, err := config.ExpandPath(f.src)
		if err != nil {
			return fmt.Errorf("--src: %w", err)
		}
		cfg.Paths.Source = expanded
	}
	if cmd.Flags().Changed("dst") {
		expanded, err := config.ExpandPath(f.dst)
		if err != nil {
			return fmt.Errorf("--dst: %w", err)
		}
		cfg.Paths.Destination = expanded
	}
	if cmd.Flags().Changed("max-files") {
		cfg.Limits.MaxFiles = f.maxFiles
	}
	if cmd.Flags().Changed("max-bytes") {
		parsed, err := humanize.ParseBytes(f.maxBytes)
		if err != nil {
			return fmt.Errorf("--max-bytes: %w", err)
		}
		cfg.Limits.MaxBytes = int64(parsed)
	}
	return cfg.Validate()
}

// resolveSeed returns the explicit seed when the flag was set, otherwise a
// fresh time/pid derived value.
func (f *runFlags) resolveSeed(cmd *cobra.Command) uint64 {
	if cmd.Flags().Changed("seed") {
		return f.seed
	}
	return shuffle.AutoSeed()
}
