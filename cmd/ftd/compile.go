package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FifthTry/ftd/pkg/program"
	"github.com/FifthTry/ftd/pkg/protocol"
)

func compileCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compile <source>",
		Short: "Compile a page source to a binary program",
		Long: `Compile a YAML or JSON page source to a .ftdb program.

Examples:
  ftd compile pages/counter.yaml
  ftd compile pages/counter.yaml -o public/counter.ftdb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			if output == "" {
				output = strings.TrimSuffix(src, filepath.Ext(src)) + program.ExtCompiled
			}
			if filepath.Clean(output) == filepath.Clean(src) {
				return fmt.Errorf("%s is already compiled", src)
			}

			prog, err := program.Load(src)
			if err != nil {
				return err
			}
			data := protocol.EncodeProgram(prog)
			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "%s → %s (%d instructions, %d bytes)", src, output, len(prog.Code), len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: source with .ftdb)")

	return cmd
}
