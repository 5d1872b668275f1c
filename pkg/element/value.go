package element

import (
	"github.com/FifthTry/ftd/pkg/reactive"
)

// Value is either a static value or a reactive source. The zero Value is
// static nil, which clears the property it is applied to.
type Value struct {
	static any
	source reactive.Source
}

// Static wraps a plain value.
func Static(v any) Value {
	return Value{static: v}
}

// Reactive wraps a reactive source.
func Reactive(src reactive.Source) Value {
	return Value{source: src}
}

// IsReactive reports whether v tracks a source.
func (v Value) IsReactive() bool {
	return v.source != nil
}

// Source returns the reactive source, or nil for static values.
func (v Value) Source() reactive.Source {
	return v.source
}

// Get returns the current value.
func (v Value) Get() any {
	if v.source != nil {
		return v.source.Value()
	}
	return v.static
}
