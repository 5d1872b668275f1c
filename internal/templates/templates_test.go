package templates

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/FifthTry/ftd/internal/build"
	"github.com/FifthTry/ftd/internal/config"
	"github.com/FifthTry/ftd/internal/errors"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		wantCode string
	}{
		{"minimal", ""},
		{"full", ""},
		{"api", "E601"},
		{"nonexistent", "E601"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			if got := errors.Code(err); got != tt.wantCode {
				t.Fatalf("Get() error = %v, want code %q", err, tt.wantCode)
			}
			if err == nil && tmpl.Name != tt.name {
				t.Errorf("Name = %q, want %q", tmpl.Name, tt.name)
			}
		})
	}
}

func TestList(t *testing.T) {
	if got, want := List(), []string{"full", "minimal"}; !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestTemplate_Paths(t *testing.T) {
	tmpl, _ := Get("full")
	paths := tmpl.Paths()
	if len(paths) != len(tmpl.Files) {
		t.Fatalf("Paths() = %v", paths)
	}
	for i := 1; i < len(paths); i++ {
		if paths[i-1] > paths[i] {
			t.Errorf("Paths() not sorted: %v", paths)
		}
	}
}

// createProject scaffolds name into a temp dir and returns the project dir.
func createProject(t *testing.T, name string, cfg Config) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), cfg.ProjectName)
	tmpl, err := Get(name)
	if err != nil {
		t.Fatal(err)
	}
	if err := tmpl.Create(dir, cfg); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	return dir
}

func TestTemplate_Create(t *testing.T) {
	tests := []struct {
		template  string
		wantFiles []string
		wantPages []string
	}{
		{
			template:  "minimal",
			wantFiles: []string{"ftd.json", "pages/index.yaml", ".gitignore"},
			wantPages: []string{"index"},
		},
		{
			template:  "full",
			wantFiles: []string{"ftd.yaml", "pages/index.yaml", "pages/todo.yaml", "pages/about.json", ".gitignore"},
			wantPages: []string{"about", "index", "todo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			dir := createProject(t, tt.template, Config{
				ProjectName: "test-app",
				Description: "A test application",
			})

			for _, f := range tt.wantFiles {
				if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
					t.Errorf("%s not created: %v", f, err)
				}
			}

			cfg, err := config.Load(dir)
			if err != nil {
				t.Fatalf("config.Load: %v", err)
			}
			if cfg.Name != "test-app" {
				t.Errorf("Name = %q, want test-app", cfg.Name)
			}

			// Every scaffolded page builds.
			b := build.New(cfg, build.Options{
				Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
			})
			res, err := b.Build(context.Background())
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			var got []string
			for _, p := range res.Pages {
				got = append(got, p.Name)
			}
			if !reflect.DeepEqual(got, tt.wantPages) {
				t.Errorf("built pages = %v, want %v", got, tt.wantPages)
			}
		})
	}
}

func TestTemplate_Create_Variables(t *testing.T) {
	dir := createProject(t, "full", Config{
		ProjectName: "docs",
		Description: "Team docs",
		Bucket:      "docs-bucket",
	})

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Publish.Bucket != "docs-bucket" {
		t.Errorf("Publish.Bucket = %q, want docs-bucket", cfg.Publish.Bucket)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should be enabled")
	}

	index, err := os.ReadFile(filepath.Join(dir, "pages", "index.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"title: docs", `description: "Team docs"`} {
		if !strings.Contains(string(index), want) {
			t.Errorf("index.yaml missing %q:\n%s", want, index)
		}
	}

	// Without a bucket the name is used.
	dir = createProject(t, "full", Config{ProjectName: "blog"})
	cfg, err = config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Publish.Bucket != "blog-site" {
		t.Errorf("Publish.Bucket = %q, want blog-site", cfg.Publish.Bucket)
	}
}

func TestTemplate_Create_InvalidTemplate(t *testing.T) {
	tmpl := &Template{
		Name:  "broken",
		Files: map[string]string{"ftd.json": "{{.Missing"},
	}
	err := tmpl.Create(t.TempDir(), Config{ProjectName: "x"})
	if err == nil || !strings.Contains(err.Error(), "invalid template ftd.json") {
		t.Errorf("Create() error = %v", err)
	}
}
