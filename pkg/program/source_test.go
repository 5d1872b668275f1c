package program

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/protocol"
)

func TestParseSourceFormats(t *testing.T) {
	yamlSrc, err := ParseSource([]byte(counterYAML), ExtYAML)
	if err != nil {
		t.Fatal(err)
	}
	if yamlSrc.Name != "counter" || len(yamlSrc.Body) != 1 || len(yamlSrc.Body[0].Children) != 6 {
		t.Fatalf("yaml source = %+v", yamlSrc)
	}
	if yamlSrc.Body[0].Children[0].OnClick.Action != "increment" {
		t.Errorf("on_click = %+v", yamlSrc.Body[0].Children[0].OnClick)
	}

	jsonSrc, err := ParseSource([]byte(`{"name":"j","cells":{"n":1},"body":[{"kind":"text","props":{"string-value":"$n"}}]}`), ExtJSON)
	if err != nil {
		t.Fatal(err)
	}
	if jsonSrc.Name != "j" || jsonSrc.Body[0].Props["string-value"] != "$n" {
		t.Errorf("json source = %+v", jsonSrc)
	}

	if _, err := ParseSource([]byte("name: x"), ".toml"); errors.Code(err) != "E204" {
		t.Errorf("unknown format err = %v, want E204", err)
	}
	if _, err := ParseSource([]byte("body: [unclosed"), ExtYAML); errors.Code(err) != "E204" {
		t.Errorf("bad yaml err = %v, want E204", err)
	}
}

func TestPageFiles(t *testing.T) {
	tests := []struct {
		path string
		page bool
		name string
	}{
		{"pages/index.yaml", true, "index"},
		{"pages/about.yml", true, "about"},
		{"x/blog.JSON", true, "blog"},
		{"out/home.ftdb", true, "home"},
		{"README.md", false, "README"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsPageFile(tt.path); got != tt.page {
				t.Errorf("IsPageFile = %v, want %v", got, tt.page)
			}
			if got := PageName(tt.path); got != tt.name {
				t.Errorf("PageName = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "hello.yaml")
	if err := os.WriteFile(src, []byte("body:\n  - kind: text\n    props:\n      string-value: hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(src)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "hello" {
		t.Errorf("Name = %q, want file name", p.Name)
	}

	data := protocol.EncodeProgram(p)
	bin := filepath.Join(dir, "hello.ftdb")
	if err := os.WriteFile(bin, data, 0o644); err != nil {
		t.Fatal(err)
	}
	q, err := Load(bin)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Code) != len(p.Code) || q.Name != p.Name {
		t.Errorf("compiled load = %+v, want %+v", q, p)
	}

	if err := os.WriteFile(bin, []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bin); errors.Code(err) != "E201" {
		t.Errorf("corrupt program err = %v, want E201", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); errors.Code(err) != "E204" {
		t.Errorf("missing file err = %v, want E204", err)
	}
}
