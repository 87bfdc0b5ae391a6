// Command aoc21 runs the Advent of Code 2021 solvers. Each part is first
// checked against the sample in its doc comment, then run on the puzzle
// input.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	aoc "github.com/kecors/aoc21"
)

func newRootCmd() *cobra.Command {
	var (
		day        int
		part       string
		onlySample bool
		skipSample bool
		debug      bool
		configPath string
		inputDir   string
	)
	cmd := &cobra.Command{
		Use:          "aoc21",
		Short:        "Run the Advent of Code 2021 solvers",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := aoc.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("input-dir") {
				cfg.InputDir = inputDir
			}
			cfg.Debug = cfg.Debug || debug

			level := slog.LevelInfo
			if cfg.Debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return aoc.Run(2021, source, &solver{}, aoc.Options{
				Day:        day,
				Part:       part,
				OnlySample: onlySample,
				SkipSample: skipSample,
				Config:     cfg,
				Stdin:      cmd.InOrStdin(),
				Stdout:     cmd.OutOrStdout(),
				Logger:     logger,
			})
		},
	}

	f := cmd.Flags()
	f.IntVarP(&day, "day", "d", -1, "day to run; -1 runs every day")
	f.StringVarP(&part, "part", "p", "", "part to run; empty runs both")
	f.BoolVar(&onlySample, "sample", false, "run only the samples")
	f.BoolVar(&skipSample, "skip-sample", false, "do not check the samples")
	f.BoolVar(&debug, "debug", false, "log at debug level")
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.StringVar(&inputDir, "input-dir", "", "directory holding <day>.input files")
	cmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
