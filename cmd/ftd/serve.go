package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/FifthTry/ftd/internal/dev"
)

func serveCmd() *cobra.Command {
	var (
		pages   string
		host    string
		port    int
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pages with live reload",
		Long: `Start a development server that renders pages on request and
reloads open browsers when a page source or the config changes.

Query parameters override initial values: /counter?count=5

Examples:
  ftd serve
  ftd serve --port 3000
  ftd serve --pages ./examples --no-watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject(pages)
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if port != 0 {
				cfg.Dev.Port = port
			}
			if noWatch {
				watch := false
				cfg.Dev.Watch = &watch
			}

			out := cmd.OutOrStdout()
			srv := dev.NewServer(dev.ServerOptions{
				Config: cfg,
				Logger: slog.Default(),
				OnReload: func(change dev.Change, clients int) {
					info(out, "%s changed, reloaded %d browsers", change.Path, clients)
				},
			})

			success(out, "Serving %s at %s", cfg.PagesPath(), cfg.DevURL())
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&pages, "pages", "", "Pages directory (default from ftd.json)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind to")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Disable live reload")

	return cmd
}
