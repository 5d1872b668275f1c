package css

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Declaration is the body of one registered rule: either a single
// property/value pair or a bundle of sub-properties.
type Declaration struct {
	Property string
	Value    string
	// Bundle holds sub-properties when the rule sets more than one.
	// Empty values are skipped when rendering.
	Bundle map[string]string
}

// Single returns a one-property declaration.
func Single(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// Bundle returns a multi-property declaration.
func Bundle(property string, values map[string]string) Declaration {
	return Declaration{Property: property, Bundle: values}
}

// IsBundle reports whether d carries sub-properties.
func (d Declaration) IsBundle() bool { return d.Bundle != nil }

// Body renders the declaration block contents, e.g. "color: red;".
func (d Declaration) Body() string {
	if !d.IsBundle() {
		return d.Property + ": " + d.Value + ";"
	}
	keys := make([]string, 0, len(d.Bundle))
	for k, v := range d.Bundle {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + d.Bundle[k] + ";"
	}
	return strings.Join(parts, " ")
}

// Rule renders a full rule for selector.
func Rule(selector string, d Declaration) string {
	return fmt.Sprintf("%s { %s }", selector, d.Body())
}

// Built-in layout presets. Every registry starts with them.
const (
	RowClass    = "ft_row"
	ColumnClass = "ft_column"
)

func presets() []entry {
	flex := func(direction string) Declaration {
		return Bundle("layout", map[string]string{
			"display":         "flex",
			"align-items":     "start",
			"justify-content": "start",
			"flex-direction":  direction,
		})
	}
	return []entry{
		{selector: "." + RowClass, decl: flex("row")},
		{selector: "." + ColumnClass, decl: flex("column")},
	}
}

type entry struct {
	selector string
	decl     Declaration
}

// Registry maps selectors to declarations in insertion order. Entries are
// never replaced or removed during a pass. A Registry is not safe for
// concurrent use.
type Registry struct {
	entries []entry
	index   map[string]int
}

// NewRegistry creates a registry seeded with the layout presets.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Reset drops every entry and re-seeds the presets.
func (r *Registry) Reset() {
	r.entries = nil
	r.index = make(map[string]int)
	for _, e := range presets() {
		r.Register(e.selector, e.decl)
	}
}

// Register adds selector unless it is already present. It reports whether
// the entry was added.
func (r *Registry) Register(selector string, d Declaration) bool {
	if _, ok := r.index[selector]; ok {
		return false
	}
	r.index[selector] = len(r.entries)
	r.entries = append(r.entries, entry{selector: selector, decl: d})
	return true
}

// Has reports whether selector is registered.
func (r *Registry) Has(selector string) bool {
	_, ok := r.index[selector]
	return ok
}

// Get returns the declaration for selector.
func (r *Registry) Get(selector string) (Declaration, bool) {
	i, ok := r.index[selector]
	if !ok {
		return Declaration{}, false
	}
	return r.entries[i].decl, true
}

// Len returns the number of entries, presets included.
func (r *Registry) Len() int { return len(r.entries) }

// Selectors returns every selector in insertion order.
func (r *Registry) Selectors() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.selector
	}
	return out
}

// Rules renders every entry in insertion order.
func (r *Registry) Rules() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = Rule(e.selector, e.decl)
	}
	return out
}

// WriteStylesheet writes the whole registry as a <style id="styles">
// element.
func (r *Registry) WriteStylesheet(w io.Writer) error {
	if _, err := io.WriteString(w, `<style id="styles">`+"\n"); err != nil {
		return err
	}
	for _, rule := range r.Rules() {
		if _, err := io.WriteString(w, rule+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</style>")
	return err
}

// Stylesheet renders the whole registry as a <style id="styles"> element.
func (r *Registry) Stylesheet() string {
	var b strings.Builder
	_ = r.WriteStylesheet(&b)
	return b.String()
}
