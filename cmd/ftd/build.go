package main

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/FifthTry/ftd/internal/build"
)

func buildCmd() *cobra.Command {
	var (
		pages  string
		output string
		dark   bool
		mobile bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page of the project",
		Long: `Render every page in the pages directory to HTML and write a
manifest of the output files.

Examples:
  ftd build
  ftd build --dark -o dist-dark`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject(pages)
			if err != nil {
				return err
			}
			if output != "" {
				abs, err := filepath.Abs(output)
				if err != nil {
					return err
				}
				cfg.Output = abs
			}

			out := cmd.OutOrStdout()
			b := build.New(cfg, build.Options{
				Dark:   dark,
				Mobile: mobile,
				Logger: slog.Default(),
				OnProgress: func(step string) {
					info(out, "%s", step)
				},
			})
			res, err := b.Build(cmd.Context())
			if err != nil {
				return err
			}

			for _, p := range res.Pages {
				info(out, "%-20s %s (%d nodes, %d classes)", p.Name, p.File, p.Nodes, p.Classes)
			}
			success(out, "Built %d pages to %s in %s", len(res.Pages), res.Output, res.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&pages, "pages", "", "Pages directory (default from ftd.json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from ftd.json)")
	cmd.Flags().BoolVar(&dark, "dark", false, "Render the dark color scheme")
	cmd.Flags().BoolVar(&mobile, "mobile", false, "Render mobile typography")

	return cmd
}
