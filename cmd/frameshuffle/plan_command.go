package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"frameshuffle/internal/runner"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the folder layout a run would produce, without copying",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			seed := flags.resolveSeed(cmd)
			groups, err := runner.New(cfg, nil, runner.Options{Seed: seed}).Plan(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(groups))
			for i, g := range groups {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					strconv.Itoa(g.Count()),
					humanize.IBytes(uint64(g.Bytes)),
				})
			}

			out := cmd.OutOrStdout()
			fancy := isatty.IsTerminal(os.Stdout.Fd())
			fmt.Fprintln(out, renderTable(
				[]string{"Folder", "Files", "Bytes"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight},
				fancy,
			))

			printer := message.NewPrinter(language.English)
			printer.Fprintf(out, "Planned %d folders for %d photos (%s) from %s\n",
				len(groups), groups.TotalFiles(),
				humanize.IBytes(uint64(groups.TotalBytes())), cfg.Paths.Source)
			fmt.Fprintf(out, "Seed: %d (pass --seed %d to copy this exact layout)\n", seed, seed)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
