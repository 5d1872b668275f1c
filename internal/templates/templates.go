package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/FifthTry/ftd/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// Description is a short project description.
	Description string

	// Bucket is the S3 bucket ftd publish uploads to.
	Bucket string
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"full":    fullTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E601").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: " + strings.Join(List(), ", "))
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paths returns the template's file paths, sorted.
func (t *Template) Paths() []string {
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Create generates a project from the template.
func (t *Template) Create(dir string, cfg Config) error {
	for _, relPath := range t.Paths() {
		tmpl, err := template.New(relPath).Parse(t.Files[relPath])
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}

func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "ftd.json and a single page",
		Files: map[string]string{
			"ftd.json": `{
  "name": "{{.ProjectName}}",
  "pages": "pages",
  "output": "dist"
}
`,
			"pages/index.yaml": `name: index
cells:
  title: {{.ProjectName}}
body:
  - kind: column
    props:
      padding: 16px
    children:
      - kind: text
        props:
          string-value: $title
`,
			".gitignore": "dist/\n",
		},
	}
}

func fullTemplate() *Template {
	return &Template{
		Name:        "full",
		Description: "Example pages with cells, conditionals, lists and click actions",
		Files: map[string]string{
			"ftd.yaml": `name: {{.ProjectName}}
pages: pages
output: dist

dev:
  port: 8000
  watch: true
  debounce: 200ms

render:
  dark: false
  mobile: false

publish:
  bucket: {{if .Bucket}}{{.Bucket}}{{else}}{{.ProjectName}}-site{{end}}
  prefix: ""

metrics:
  enabled: true
  namespace: ftd
`,
			"pages/index.yaml": `name: index
cells:
  title: {{.ProjectName}}
  description: "{{.Description}}"
  count: 0
  open: false
  accent:
    light: "#1d4ed8"
    dark: "#93c5fd"
body:
  - kind: column
    props:
      padding: 16px
      spacing: 8px
    children:
      - kind: text
        props:
          string-value: $title
          color: $accent
      - kind: text
        props:
          string-value: $description
      - kind: integer
        props:
          integer-value: $count
        on_click: {action: increment, target: count, value: 1}
      - kind: boolean
        props:
          string-value: Show details
        on_click: {action: toggle, target: open}
      - kind: text
        if: open
        props:
          string-value: Click the number to count.
`,
			"pages/todo.yaml": `name: todo
lists:
  todos: [Write a page, Run ftd serve, Publish]
body:
  - kind: column
    props:
      padding: 16px
      spacing: 4px
    children:
      - kind: row
        for: todos
        props:
          spacing: 8px
        children:
          - kind: integer
            props:
              integer-value: $index
          - kind: text
            props:
              string-value: $item
      - kind: text
        props:
          string-value: Add another
        on_click: {action: push, target: todos, value: Another task}
`,
			"pages/about.json": `{
  "name": "about",
  "body": [
    {"kind": "text", "props": {"string-value": "About {{.ProjectName}}"}}
  ]
}
`,
			".gitignore": "dist/\n",
		},
	}
}
