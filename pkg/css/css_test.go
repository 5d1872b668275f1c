package css

import (
	"strings"
	"testing"
)

func TestShortCode(t *testing.T) {
	tests := []struct {
		property string
		want     string
	}{
		{"padding-left", "pl"},
		{"background-color", "bgc"},
		{"-webkit-line-clamp", "wlc"},
		{"right", "r"},
		{"resize", "rsz"},
		{"text-indent", "text-indent"},
		{"role", "role"},
	}
	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			if got := ShortCode(tt.property); got != tt.want {
				t.Errorf("ShortCode(%q) = %q, want %q", tt.property, got, tt.want)
			}
		})
	}
	if Prefix("width") != "w-" {
		t.Errorf("Prefix(width) = %q", Prefix("width"))
	}
}

func TestNamerDedup(t *testing.T) {
	n := NewNamer()

	a := n.ClassName("width", "10px")
	b := n.ClassName("width", "10px")
	c := n.ClassName("width", "20px")
	d := n.ClassName("padding", "10px")

	if a != "w-1" || b != "w-1" {
		t.Errorf("equal values got %q and %q, want w-1", a, b)
	}
	if c != "w-2" {
		t.Errorf("second width = %q, want w-2", c)
	}
	if d != "p-3" {
		t.Errorf("padding = %q, want p-3", d)
	}

	m1 := n.ClassName("role", map[string]string{"font-size": "14px", "line-height": "20px"})
	m2 := n.ClassName("role", map[string]string{"line-height": "20px", "font-size": "14px"})
	if m1 != m2 {
		t.Errorf("equal bundles named %q and %q", m1, m2)
	}

	n.Reset()
	if got := n.ClassName("width", "20px"); got != "w-1" {
		t.Errorf("after Reset = %q, want w-1", got)
	}
}

func TestRegistryPresets(t *testing.T) {
	r := NewRegistry()
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	want := `<style id="styles">
.ft_row { align-items: start; display: flex; flex-direction: row; justify-content: start; }
.ft_column { align-items: start; display: flex; flex-direction: column; justify-content: start; }
</style>`
	if got := r.Stylesheet(); got != want {
		t.Errorf("Stylesheet() =\n%s\nwant\n%s", got, want)
	}
}

func TestRegistryAppendOnly(t *testing.T) {
	r := NewRegistry()

	if !r.Register(".w-1", Single("width", "10px")) {
		t.Fatal("first Register should add")
	}
	if r.Register(".w-1", Single("width", "99px")) {
		t.Error("second Register should not replace")
	}
	d, _ := r.Get(".w-1")
	if d.Value != "10px" {
		t.Errorf("Value = %q, want 10px", d.Value)
	}

	r.Register("body.dark .c-2", Single("color", "white"))
	sels := r.Selectors()
	if sels[len(sels)-1] != "body.dark .c-2" {
		t.Errorf("insertion order not kept: %v", sels)
	}
	if !strings.Contains(r.Stylesheet(), "body.dark .c-2 { color: white; }") {
		t.Error("compound selector rule missing")
	}

	r.Reset()
	if r.Has(".w-1") || r.Len() != 2 {
		t.Error("Reset should keep only presets")
	}
}

func TestBundleSkipsEmptyValues(t *testing.T) {
	d := Bundle("role", map[string]string{
		"font-size":      "14px",
		"letter-spacing": "",
		"font-weight":    "400",
	})
	if got, want := Rule(".role-1", d), ".role-1 { font-size: 14px; font-weight: 400; }"; got != want {
		t.Errorf("Rule() = %q, want %q", got, want)
	}
}
