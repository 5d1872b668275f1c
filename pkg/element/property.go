package element

// PropertyKind names a semantic property set through SetStaticProperty.
// The numbering is part of the instruction stream format.
type PropertyKind uint8

const (
	PropColor PropertyKind = iota
	PropIntegerValue
	PropStringValue
	PropWidth
	PropPadding
	PropHeight
	PropID
	PropBorderWidth
	PropBorderStyle
	PropMargin
	PropBackground
	PropPaddingHorizontal
	PropPaddingVertical
	PropPaddingLeft
	PropPaddingRight
	PropPaddingTop
	PropPaddingBottom
	PropMarginHorizontal
	PropMarginVertical
	PropMarginLeft
	PropMarginRight
	PropMarginTop
	PropMarginBottom
	PropRole
	PropZIndex
	PropSticky
	PropTop
	PropBottom
	PropLeft
	PropRight
	PropOverflow
	PropOverflowX
	PropOverflowY
	PropSpacing
	PropWrap
	PropTextTransform
	PropTextIndent
	PropTextAlign
	PropLineClamp
	PropOpacity
	PropCursor
	PropResize
	PropMinHeight
	PropMaxHeight
	PropMinWidth
	PropMaxWidth
	PropWhiteSpace
	PropBorderTopWidth
	PropBorderBottomWidth
	PropBorderLeftWidth
	PropBorderRightWidth
	PropBorderRadius
	PropBorderTopLeftRadius
	PropBorderTopRightRadius
	PropBorderBottomLeftRadius
	PropBorderBottomRightRadius
	PropBorderStyleVertical
	PropBorderStyleHorizontal
	PropBorderLeftStyle
	PropBorderRightStyle
	PropBorderTopStyle
	PropBorderBottomStyle
	PropBorderColor
	PropBorderLeftColor
	PropBorderRightColor
	PropBorderTopColor
	PropBorderBottomColor

	propertyKindCount
)

var propertyKindNames = [propertyKindCount]string{
	PropColor:                   "color",
	PropIntegerValue:            "integer-value",
	PropStringValue:             "string-value",
	PropWidth:                   "width",
	PropPadding:                 "padding",
	PropHeight:                  "height",
	PropID:                      "id",
	PropBorderWidth:             "border-width",
	PropBorderStyle:             "border-style",
	PropMargin:                  "margin",
	PropBackground:              "background",
	PropPaddingHorizontal:       "padding-horizontal",
	PropPaddingVertical:         "padding-vertical",
	PropPaddingLeft:             "padding-left",
	PropPaddingRight:            "padding-right",
	PropPaddingTop:              "padding-top",
	PropPaddingBottom:           "padding-bottom",
	PropMarginHorizontal:        "margin-horizontal",
	PropMarginVertical:          "margin-vertical",
	PropMarginLeft:              "margin-left",
	PropMarginRight:             "margin-right",
	PropMarginTop:               "margin-top",
	PropMarginBottom:            "margin-bottom",
	PropRole:                    "role",
	PropZIndex:                  "z-index",
	PropSticky:                  "sticky",
	PropTop:                     "top",
	PropBottom:                  "bottom",
	PropLeft:                    "left",
	PropRight:                   "right",
	PropOverflow:                "overflow",
	PropOverflowX:               "overflow-x",
	PropOverflowY:               "overflow-y",
	PropSpacing:                 "spacing",
	PropWrap:                    "wrap",
	PropTextTransform:           "text-transform",
	PropTextIndent:              "text-indent",
	PropTextAlign:               "text-align",
	PropLineClamp:               "line-clamp",
	PropOpacity:                 "opacity",
	PropCursor:                  "cursor",
	PropResize:                  "resize",
	PropMinHeight:               "min-height",
	PropMaxHeight:               "max-height",
	PropMinWidth:                "min-width",
	PropMaxWidth:                "max-width",
	PropWhiteSpace:              "white-space",
	PropBorderTopWidth:          "border-top-width",
	PropBorderBottomWidth:       "border-bottom-width",
	PropBorderLeftWidth:         "border-left-width",
	PropBorderRightWidth:        "border-right-width",
	PropBorderRadius:            "border-radius",
	PropBorderTopLeftRadius:     "border-top-left-radius",
	PropBorderTopRightRadius:    "border-top-right-radius",
	PropBorderBottomLeftRadius:  "border-bottom-left-radius",
	PropBorderBottomRightRadius: "border-bottom-right-radius",
	PropBorderStyleVertical:     "border-style-vertical",
	PropBorderStyleHorizontal:   "border-style-horizontal",
	PropBorderLeftStyle:         "border-left-style",
	PropBorderRightStyle:        "border-right-style",
	PropBorderTopStyle:          "border-top-style",
	PropBorderBottomStyle:       "border-bottom-style",
	PropBorderColor:             "border-color",
	PropBorderLeftColor:         "border-left-color",
	PropBorderRightColor:        "border-right-color",
	PropBorderTopColor:          "border-top-color",
	PropBorderBottomColor:       "border-bottom-color",
}

// String returns the source name of the property.
func (k PropertyKind) String() string {
	if k.Valid() {
		return propertyKindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a known property.
func (k PropertyKind) Valid() bool {
	return k < propertyKindCount
}

// ParsePropertyKind looks a property up by its source name.
func ParsePropertyKind(name string) (PropertyKind, bool) {
	for i, n := range propertyKindNames {
		if n == name {
			return PropertyKind(i), true
		}
	}
	return 0, false
}

// PropertyKinds returns every known property in wire order.
func PropertyKinds() []PropertyKind {
	out := make([]PropertyKind, propertyKindCount)
	for i := range out {
		out[i] = PropertyKind(i)
	}
	return out
}
