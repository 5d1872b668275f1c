package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/internal/templates"
)

const defaultDescription = "An ftd site"

func createCmd() *cobra.Command {
	var (
		template    string
		description string
		bucket      string
		skipPrompts bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new ftd project",
		Long: `Create a new ftd project with the specified name.

Templates:
  minimal   ftd.json and a single page
  full      Example pages with cells, conditionals, lists and click actions (default)

Examples:
  ftd create my-site
  ftd create my-site --template=minimal
  ftd create docs --bucket docs-site -y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := createOptions{
				name:        args[0],
				template:    template,
				description: description,
				bucket:      bucket,
			}
			if !skipPrompts {
				if err := opts.prompt(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			return runCreate(cmd.OutOrStdout(), wd, opts)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "full", "Project template ("+strings.Join(templates.List(), ", ")+")")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket for ftd publish")
	cmd.Flags().BoolVarP(&skipPrompts, "yes", "y", false, "Skip prompts and use defaults")

	return cmd
}

type createOptions struct {
	name        string
	template    string
	description string
	bucket      string
}

func (o *createOptions) prompt(in io.Reader, out io.Writer) error {
	if o.description != "" {
		return nil
	}
	reader := bufio.NewReader(in)
	fmt.Fprint(out, "? Description: ")
	desc, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	o.description = strings.TrimSpace(desc)
	return nil
}

// runCreate scaffolds the project in parent/name.
func runCreate(out io.Writer, parent string, opts createOptions) error {
	if !isValidProjectName(opts.name) {
		return errors.New("E602").
			WithDetailf("%q cannot be used as a directory and bucket name", opts.name).
			WithSuggestion("Use lowercase letters, numbers, and hyphens")
	}

	projectDir := filepath.Join(parent, opts.name)
	if _, err := os.Stat(projectDir); !os.IsNotExist(err) {
		return errors.New("E603").
			WithDetail("Directory '" + opts.name + "' already exists").
			WithSuggestion("Choose a different name or remove the existing directory")
	}

	tmpl, err := templates.Get(opts.template)
	if err != nil {
		return err
	}

	if opts.description == "" {
		opts.description = defaultDescription
	}

	info(out, "Creating project from '%s' template...", opts.template)
	if err := tmpl.Create(projectDir, templates.Config{
		ProjectName: opts.name,
		Description: opts.description,
		Bucket:      opts.bucket,
	}); err != nil {
		os.RemoveAll(projectDir)
		return err
	}

	fmt.Fprintln(out)
	success(out, "Created %s/", opts.name)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  To get started:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "    cd %s\n", opts.name)
	fmt.Fprintln(out, "    ftd serve")
	fmt.Fprintln(out)
	return nil
}

func isValidProjectName(name string) bool {
	if name == "" || name[0] == '-' {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
