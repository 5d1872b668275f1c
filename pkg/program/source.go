package program

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/protocol"
)

// Source is a page as written by hand.
type Source struct {
	Name  string           `json:"name" yaml:"name"`
	Cells map[string]any   `json:"cells,omitempty" yaml:"cells,omitempty"`
	Lists map[string][]any `json:"lists,omitempty" yaml:"lists,omitempty"`
	Body  []NodeSource     `json:"body" yaml:"body"`
}

// NodeSource is one element of the page tree.
type NodeSource struct {
	Kind     string         `json:"kind" yaml:"kind"`
	Props    map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
	Children []NodeSource   `json:"children,omitempty" yaml:"children,omitempty"`
	If       string         `json:"if,omitempty" yaml:"if,omitempty"`
	For      string         `json:"for,omitempty" yaml:"for,omitempty"`
	OnClick  *ClickSource   `json:"on_click,omitempty" yaml:"on_click,omitempty"`
}

// ClickSource describes a click handler.
type ClickSource struct {
	Action string `json:"action" yaml:"action"`
	Target string `json:"target" yaml:"target"`
	Value  any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Source file extensions.
const (
	ExtYAML     = ".yaml"
	ExtYML      = ".yml"
	ExtJSON     = ".json"
	ExtCompiled = ".ftdb"
)

// IsPageFile reports whether path has a page extension.
func IsPageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtYAML, ExtYML, ExtJSON, ExtCompiled:
		return true
	}
	return false
}

// PageName returns the page name for a path: the base name without its
// extension.
func PageName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseSource decodes a YAML or JSON page. ext selects the format.
func ParseSource(data []byte, ext string) (*Source, error) {
	var src Source
	var err error
	switch strings.ToLower(ext) {
	case ExtJSON:
		err = json.Unmarshal(data, &src)
	case ExtYAML, ExtYML:
		err = yaml.Unmarshal(data, &src)
	default:
		return nil, errors.New("E204").WithDetailf("unsupported source format %q", ext)
	}
	if err != nil {
		return nil, errors.New("E204").Wrap(err)
	}
	return &src, nil
}

// Load reads a page source or compiled program from path and returns the
// program. Sources are compiled; a source without a name takes the file's.
func Load(path string) (*protocol.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E204").WithDetail(path).Wrap(err)
	}

	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ExtCompiled) {
		p, err := protocol.DecodeProgram(data)
		if err != nil {
			return nil, errors.New("E201").WithDetail(path).Wrap(err)
		}
		return p, nil
	}

	src, err := ParseSource(data, ext)
	if err != nil {
		return nil, err
	}
	if src.Name == "" {
		src.Name = PageName(path)
	}
	return Compile(src)
}
