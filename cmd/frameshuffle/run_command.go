package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"frameshuffle/internal/logging"
	"frameshuffle/internal/runner"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Shuffle and copy the library into numbered folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			opts := runner.Options{
				Seed:         flags.resolveSeed(cmd),
				ShowProgress: isatty.IsTerminal(os.Stderr.Fd()),
			}

			summary, err := runner.New(cfg, logger, opts).Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printer := message.NewPrinter(language.English)
			printer.Fprintf(out, "Copied %d photos into %d folders under %s\n",
				summary.Files, summary.Groups, summary.Destination)
			fmt.Fprintf(out, "Total bytes copied: %s (%d)\n",
				humanize.IBytes(uint64(summary.Bytes)), summary.Bytes)
			fmt.Fprintf(out, "Seed: %d (pass --seed %d to reproduce this order)\n",
				summary.Seed, summary.Seed)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
