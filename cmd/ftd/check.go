package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/FifthTry/ftd/internal/build"
	"github.com/FifthTry/ftd/pkg/render"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <page> <html>",
		Short: "Check that a rendered page hydrates",
		Long: `Replay a page over HTML rendered from it, using the state snapshot
embedded in the HTML. Every server-rendered node must be claimed; the
command fails if the HTML came from a different program or state.

Examples:
  ftd check pages/counter.yaml dist/counter.html`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInterpreter(args[0])
			if err != nil {
				return err
			}
			page, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			r := render.NewRenderer(render.WithLogger(slog.Default()))
			if _, err := build.Verify(cmd.Context(), r, in, page); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "%s hydrates from %s", args[1], args[0])
			return nil
		},
	}
	return cmd
}
