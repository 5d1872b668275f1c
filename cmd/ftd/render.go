package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FifthTry/ftd/internal/build"
	"github.com/FifthTry/ftd/pkg/program"
	"github.com/FifthTry/ftd/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		sets   []string
		output string
		dark   bool
		mobile bool
	)

	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Render a page to HTML",
		Long: `Render one page source or compiled program to a complete HTML
document with its state snapshot.

Examples:
  ftd render pages/counter.yaml
  ftd render pages/counter.yaml --set count=5 --set open=true
  ftd render pages/todo.ftdb --dark -o todo.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseSets(sets)
			if err != nil {
				return err
			}
			in, err := loadInterpreter(args[0])
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			r := render.NewRenderer(render.WithLogger(slog.Default()))
			res, err := build.RenderPage(cmd.Context(), r, in, build.Request{
				Overrides: overrides,
				Dark:      dark,
				Mobile:    mobile,
			}, w)
			if err != nil {
				return err
			}
			slog.Debug("rendered", "page", in.Program().Name, "nodes", res.Nodes, "classes", res.Classes)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Override an initial cell or list value (name=value)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&dark, "dark", false, "Render the dark color scheme")
	cmd.Flags().BoolVar(&mobile, "mobile", false, "Render mobile typography")

	return cmd
}

// parseSets turns name=value flags into overrides.
func parseSets(sets []string) (map[string]string, error) {
	if len(sets) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(sets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: want name=value", s)
		}
		out[name] = value
	}
	return out, nil
}

func loadInterpreter(path string) (*program.Interpreter, error) {
	prog, err := program.Load(path)
	if err != nil {
		return nil, err
	}
	return program.NewInterpreter(prog)
}
