package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/protocol"
)

const counterYAML = `name: counter
cells:
  label: Clicks
  open: false
body:
  - kind: column
    children:
      - kind: text
        props:
          string-value: $label
      - kind: text
        if: open
        props:
          string-value: Details
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the CLI with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseSets(t *testing.T) {
	tests := []struct {
		name    string
		sets    []string
		want    map[string]string
		wantErr bool
	}{
		{name: "none", sets: nil, want: nil},
		{name: "pairs", sets: []string{"count=5", "open=true"}, want: map[string]string{"count": "5", "open": "true"}},
		{name: "value with equals", sets: []string{"expr=a=b"}, want: map[string]string{"expr": "a=b"}},
		{name: "value with commas", sets: []string{"items=[a, b]"}, want: map[string]string{"items": "[a, b]"}},
		{name: "empty value", sets: []string{"label="}, want: map[string]string{"label": ""}},
		{name: "missing equals", sets: []string{"count"}, wantErr: true},
		{name: "missing name", sets: []string{"=5"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSets(tt.sets)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSets() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSets() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderCmd(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "counter.yaml", counterYAML)

	t.Run("stdout", func(t *testing.T) {
		out, err := execute(t, "render", page)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, ">Clicks</div>") {
			t.Errorf("output missing label:\n%s", out)
		}
		if strings.Contains(out, "Details") {
			t.Error("closed conditional should not render")
		}
	})

	t.Run("overrides to file", func(t *testing.T) {
		target := filepath.Join(dir, "counter.html")
		if _, err := execute(t, "render", page, "--set", "open=true", "--set", "label=Taps", "-o", target); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{">Taps</div>", ">Details</div>"} {
			if !strings.Contains(string(data), want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("unknown cell", func(t *testing.T) {
		_, err := execute(t, "render", page, "--set", "missing=1")
		if got := errors.Code(err); got != "E202" {
			t.Errorf("error code = %q, want E202 (err: %v)", got, err)
		}
	})

	t.Run("bad set", func(t *testing.T) {
		if _, err := execute(t, "render", page, "--set", "open"); err == nil {
			t.Error("expected an error for --set without =")
		}
	})
}

func TestCompileCmd(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "counter.yaml", counterYAML)

	out, err := execute(t, "compile", page)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "counter.ftdb") {
		t.Errorf("output = %q", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "counter.ftdb"))
	if err != nil {
		t.Fatal(err)
	}
	prog, err := protocol.DecodeProgram(data)
	if err != nil {
		t.Fatal(err)
	}
	if prog.Name != "counter" {
		t.Errorf("Name = %q, want counter", prog.Name)
	}

	// The compiled program renders like its source.
	html, err := execute(t, "render", filepath.Join(dir, "counter.ftdb"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, ">Clicks</div>") {
		t.Error("compiled page missing label")
	}

	if _, err := execute(t, "compile", filepath.Join(dir, "counter.ftdb")); err == nil {
		t.Error("compiling a compiled program onto itself should fail")
	}
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "counter.yaml", counterYAML)
	html := filepath.Join(dir, "counter.html")
	if _, err := execute(t, "render", page, "--set", "open=true", "-o", html); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "check", page, html)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "hydrates") {
		t.Errorf("output = %q", out)
	}

	other := writeFile(t, dir, "other.html", "<html><body><p>hand written</p></body></html>")
	_, err = execute(t, "check", page, other)
	if got := errors.Code(err); got != "E041" {
		t.Errorf("error code = %q, want E041 (err: %v)", got, err)
	}
}

func TestBuildCmd(t *testing.T) {
	pages := t.TempDir()
	writeFile(t, pages, "counter.yaml", counterYAML)
	output := filepath.Join(t.TempDir(), "dist")

	out, err := execute(t, "build", "--pages", pages, "-o", output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Built 1 pages") {
		t.Errorf("output = %q", out)
	}
	for _, f := range []string{"counter.html", "manifest.json"} {
		if _, err := os.Stat(filepath.Join(output, f)); err != nil {
			t.Errorf("%s not written: %v", f, err)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version --short = %q, want %q", out, version)
	}

	out, err = execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Program:") {
		t.Errorf("version output missing program version:\n%s", out)
	}
}

func TestIsValidProjectName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"my-site", true},
		{"docs2", true},
		{"", false},
		{"-site", false},
		{"My-Site", false},
		{"my site", false},
		{"a/b", false},
		{"..", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidProjectName(tt.name); got != tt.want {
				t.Errorf("isValidProjectName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestRunCreate(t *testing.T) {
	parent := t.TempDir()
	var out bytes.Buffer

	err := runCreate(&out, parent, createOptions{name: "docs", template: "minimal"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Created docs/") {
		t.Errorf("output = %q", out.String())
	}
	if _, err := os.Stat(filepath.Join(parent, "docs", "pages", "index.yaml")); err != nil {
		t.Errorf("index page not created: %v", err)
	}

	tests := []struct {
		name     string
		opts     createOptions
		wantCode string
	}{
		{"exists", createOptions{name: "docs", template: "minimal"}, "E603"},
		{"bad name", createOptions{name: "My Docs", template: "minimal"}, "E602"},
		{"bad template", createOptions{name: "blog", template: "api"}, "E601"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCreate(&bytes.Buffer{}, parent, tt.opts)
			if got := errors.Code(err); got != tt.wantCode {
				t.Errorf("error code = %q, want %q (err: %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestCreateOptionsPrompt(t *testing.T) {
	opts := createOptions{name: "docs"}
	var out bytes.Buffer
	if err := opts.prompt(strings.NewReader("Team docs\n"), &out); err != nil {
		t.Fatal(err)
	}
	if opts.description != "Team docs" {
		t.Errorf("description = %q", opts.description)
	}

	// A description from flags skips the prompt.
	opts = createOptions{name: "docs", description: "Given"}
	out.Reset()
	if err := opts.prompt(strings.NewReader("ignored\n"), &out); err != nil {
		t.Fatal(err)
	}
	if opts.description != "Given" || out.Len() != 0 {
		t.Errorf("description = %q, output = %q", opts.description, out.String())
	}
}
