package element

import (
	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/css"
	"github.com/FifthTry/ftd/pkg/dom"
)

// ElementKind selects the host tag and preset classes of a node. The
// numbering is part of the instruction stream format.
type ElementKind uint8

const (
	Row     ElementKind = iota // flex row container
	Column                     // flex column container
	Integer                    // integer display
	Decimal                    // decimal display
	Boolean                    // boolean display
	Text                       // text block
	Image                      // <img>
	IFrame                     // <iframe>
	Div                        // plain container, used by mounts
	Comment                    // anchor marker
)

var elementKindNames = [...]string{
	Row:     "row",
	Column:  "column",
	Integer: "integer",
	Decimal: "decimal",
	Boolean: "boolean",
	Text:    "text",
	Image:   "image",
	IFrame:  "iframe",
	Div:     "div",
	Comment: "comment",
}

// String returns the source name of the kind.
func (k ElementKind) String() string {
	if k.Valid() {
		return elementKindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a known kind.
func (k ElementKind) Valid() bool {
	return int(k) < len(elementKindNames)
}

// ParseElementKind looks a kind up by its source name.
func ParseElementKind(name string) (ElementKind, bool) {
	for i, n := range elementKindNames {
		if n == name {
			return ElementKind(i), true
		}
	}
	return 0, false
}

// host returns the tag and preset classes for k.
func (k ElementKind) host() (string, []string) {
	switch k {
	case Row:
		return "div", []string{css.RowClass}
	case Column:
		return "div", []string{css.ColumnClass}
	case Integer, Decimal, Boolean, Text, Div:
		return "div", nil
	case Image:
		return "img", nil
	case IFrame:
		return "iframe", nil
	case Comment:
		return dom.TagComment, nil
	}
	panic(errors.New("E102").WithDetailf("element kind %d", k))
}
