package element

import (
	"github.com/FifthTry/ftd/internal/errors"
)

// propertySetter applies one property value to a node.
type propertySetter func(n *Node, v any)

// setters holds one entry per PropertyKind.
var setters = [propertyKindCount]propertySetter{
	PropID:           setID,
	PropIntegerValue: setText,
	PropStringValue:  setText,

	PropWidth:     attach("width"),
	PropHeight:    attach("height"),
	PropMinHeight: attach("min-height"),
	PropMaxHeight: attach("max-height"),
	PropMinWidth:  attach("min-width"),
	PropMaxWidth:  attach("max-width"),

	PropPadding:           attach("padding"),
	PropPaddingHorizontal: attach("padding-left", "padding-right"),
	PropPaddingVertical:   attach("padding-top", "padding-bottom"),
	PropPaddingLeft:       attach("padding-left"),
	PropPaddingRight:      attach("padding-right"),
	PropPaddingTop:        attach("padding-top"),
	PropPaddingBottom:     attach("padding-bottom"),

	PropMargin:           attach("margin"),
	PropMarginHorizontal: attach("margin-left", "margin-right"),
	PropMarginVertical:   attach("margin-top", "margin-bottom"),
	PropMarginLeft:       attach("margin-left"),
	PropMarginRight:      attach("margin-right"),
	PropMarginTop:        attach("margin-top"),
	PropMarginBottom:     attach("margin-bottom"),

	PropBorderWidth:             attach("border-width"),
	PropBorderTopWidth:          attach("border-top-width"),
	PropBorderBottomWidth:       attach("border-bottom-width"),
	PropBorderLeftWidth:         attach("border-left-width"),
	PropBorderRightWidth:        attach("border-right-width"),
	PropBorderRadius:            attach("border-radius"),
	PropBorderTopLeftRadius:     attach("border-top-left-radius"),
	PropBorderTopRightRadius:    attach("border-top-right-radius"),
	PropBorderBottomLeftRadius:  attach("border-bottom-left-radius"),
	PropBorderBottomRightRadius: attach("border-bottom-right-radius"),
	PropBorderStyle:             attach("border-style"),
	PropBorderStyleVertical:     attach("border-top-style", "border-bottom-style"),
	PropBorderStyleHorizontal:   attach("border-left-style", "border-right-style"),
	PropBorderLeftStyle:         attach("border-left-style"),
	PropBorderRightStyle:        attach("border-right-style"),
	PropBorderTopStyle:          attach("border-top-style"),
	PropBorderBottomStyle:       attach("border-bottom-style"),

	PropColor:             attachColor("color"),
	PropBackground:        attachColor("background-color"),
	PropBorderColor:       attachColor("border-color"),
	PropBorderLeftColor:   attachColor("border-left-color"),
	PropBorderRightColor:  attachColor("border-right-color"),
	PropBorderTopColor:    attachColor("border-top-color"),
	PropBorderBottomColor: attachColor("border-bottom-color"),
	PropRole:              setRole,

	PropZIndex:    attach("z-index"),
	PropSticky:    toggle("position", "sticky", "static"),
	PropTop:       attach("top"),
	PropBottom:    attach("bottom"),
	PropLeft:      attach("left"),
	PropRight:     attach("right"),
	PropOverflow:  attach("overflow"),
	PropOverflowX: attach("overflow-x"),
	PropOverflowY: attach("overflow-y"),
	PropSpacing:   setSpacing,
	PropWrap:      toggle("flex-wrap", "wrap", "no-wrap"),

	PropTextTransform: attach("text-transform"),
	PropTextIndent:    attach("text-indent"),
	PropTextAlign:     attach("text-align"),
	PropLineClamp:     setLineClamp,
	PropOpacity:       attach("opacity"),
	PropCursor:        attach("cursor"),
	PropResize:        setResize,
	PropWhiteSpace:    attach("white-space"),
}

// SetStaticProperty applies v for kind. An unknown kind panics with E101;
// a nil v clears the property.
func (n *Node) SetStaticProperty(kind PropertyKind, v any) {
	n.mustLive("SetStaticProperty")
	if !kind.Valid() || setters[kind] == nil {
		panic(errors.New("E101").WithDetailf("property kind %d", kind))
	}
	setters[kind](n, v)
}

// attach sets every listed CSS property to the same value.
func attach(properties ...string) propertySetter {
	return func(n *Node, v any) {
		for _, p := range properties {
			n.AttachCSS(p, v, false, "")
		}
	}
}

// toggle maps a boolean onto two CSS values. Anything other than true or
// "true" selects off.
func toggle(property, on, off string) propertySetter {
	return func(n *Node, v any) {
		switch v {
		case true, "true":
			n.AttachCSS(property, on, false, "")
		default:
			n.AttachCSS(property, off, false, "")
		}
	}
}

func attachColor(property string) propertySetter {
	return func(n *Node, v any) {
		switch c := v.(type) {
		case Color:
			n.AttachColorCSS(property, c)
		case *Color:
			if c == nil {
				n.AttachCSS(property, nil, false, "")
				return
			}
			n.AttachColorCSS(property, *c)
		case string:
			n.AttachColorCSS(property, Solid(c))
		case nil:
			n.AttachCSS(property, nil, false, "")
		default:
			panic(errors.New("E103").WithDetailf("%s wants a color, got %T", property, v))
		}
	}
}

func setRole(n *Node, v any) {
	switch t := v.(type) {
	case ResponsiveType:
		n.AttachRoleCSS(t)
	case *ResponsiveType:
		if t == nil {
			n.AttachCSS("role", nil, true, "")
			return
		}
		n.AttachRoleCSS(*t)
	case Type:
		n.AttachRoleCSS(SameType(t))
	case nil:
		n.AttachCSS("role", nil, true, "")
	default:
		panic(errors.New("E103").WithDetailf("role wants a type, got %T", v))
	}
}

func setSpacing(n *Node, v any) {
	if v == nil {
		n.AttachCSS("justify-content", nil, false, "")
		n.AttachCSS("gap", nil, false, "")
		return
	}
	switch cssValue(v) {
	case SpaceEvenly, SpaceBetween, SpaceAround:
		n.AttachCSS("justify-content", v, false, "")
	default:
		n.AttachCSS("gap", v, false, "")
	}
}

func setLineClamp(n *Node, v any) {
	if v == nil {
		for _, p := range []string{"-webkit-line-clamp", "display", "overflow", "-webkit-box-orient"} {
			n.AttachCSS(p, nil, false, "")
		}
		return
	}
	n.AttachCSS("-webkit-line-clamp", v, false, "")
	n.AttachCSS("display", "-webkit-box", false, "")
	n.AttachCSS("overflow", "hidden", false, "")
	n.AttachCSS("-webkit-box-orient", "vertical", false, "")
}

func setResize(n *Node, v any) {
	if v == nil {
		n.AttachCSS("resize", nil, false, "")
		n.AttachCSS("overflow", nil, false, "")
		return
	}
	n.AttachCSS("resize", v, false, "")
	n.AttachCSS("overflow", "auto", false, "")
}

func setText(n *Node, v any) {
	if v == nil {
		n.host.SetText("")
		return
	}
	n.host.SetText(cssValue(v))
}

func setID(n *Node, v any) {
	if v == nil {
		n.host.RemoveAttribute("id")
		return
	}
	n.host.SetAttribute("id", cssValue(v))
}
