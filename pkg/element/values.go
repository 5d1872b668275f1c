package element

import (
	"strconv"
)

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Lengths.
func Px(v float64) string { return number(v) + "px" }
func Em(v float64) string { return number(v) + "em" }
func Rem(v float64) string { return number(v) + "rem" }
func Percent(v float64) string { return number(v) + "%" }
func Vh(v float64) string { return number(v) + "vh" }
func Vw(v float64) string { return number(v) + "vw" }
func Vmin(v float64) string { return number(v) + "vmin" }
func Vmax(v float64) string { return number(v) + "vmax" }
func Calc(expr string) string { return "calc(" + expr + ")" }

// Resizing keywords for width and height.
const (
	FillContainer = "100%"
	HugContent    = "fit-content"
)

// Fixed passes an explicit length through. It is the fixed variant of both
// resizing and spacing.
func Fixed(length string) string { return length }

// Spacing distribution keywords. Any other spacing value is a gap.
const (
	SpaceEvenly  = "space-evenly"
	SpaceBetween = "space-between"
	SpaceAround  = "space-around"
)

type BorderStyle string

const (
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
	BorderDouble BorderStyle = "double"
	BorderRidge  BorderStyle = "ridge"
	BorderGroove BorderStyle = "groove"
	BorderInset  BorderStyle = "inset"
	BorderOutset BorderStyle = "outset"
)

type Overflow string

const (
	OverflowScroll  Overflow = "scroll"
	OverflowVisible Overflow = "visible"
	OverflowHidden  Overflow = "hidden"
	OverflowAuto    Overflow = "auto"
)

type Display string

const (
	DisplayBlock       Display = "block"
	DisplayInline      Display = "inline"
	DisplayInlineBlock Display = "inline-block"
)

type TextTransform string

const (
	TextTransformNone       TextTransform = "none"
	TextTransformCapitalize TextTransform = "capitalize"
	TextTransformUppercase  TextTransform = "uppercase"
	TextTransformLowercase  TextTransform = "lowercase"
	TextTransformInherit    TextTransform = "inherit"
	TextTransformInitial    TextTransform = "initial"
)

type TextAlign string

const (
	TextAlignStart   TextAlign = "start"
	TextAlignCenter  TextAlign = "center"
	TextAlignEnd     TextAlign = "end"
	TextAlignJustify TextAlign = "justify"
)

type Cursor string

const (
	CursorNone         Cursor = "none"
	CursorDefault      Cursor = "default"
	CursorContextMenu  Cursor = "context-menu"
	CursorHelp         Cursor = "help"
	CursorPointer      Cursor = "pointer"
	CursorProgress     Cursor = "progress"
	CursorWait         Cursor = "wait"
	CursorCell         Cursor = "cell"
	CursorCrosshair    Cursor = "crosshair"
	CursorText         Cursor = "text"
	CursorVerticalText Cursor = "vertical-text"
	CursorAlias        Cursor = "alias"
	CursorCopy         Cursor = "copy"
	CursorMove         Cursor = "move"
	CursorNoDrop       Cursor = "no-drop"
	CursorNotAllowed   Cursor = "not-allowed"
	CursorGrab         Cursor = "grab"
	CursorGrabbing     Cursor = "grabbing"
	CursorEResize      Cursor = "e-resize"
	CursorNResize      Cursor = "n-resize"
	CursorNeResize     Cursor = "ne-resize"
	CursorSResize      Cursor = "s-resize"
	CursorSeResize     Cursor = "se-resize"
	CursorSwResize     Cursor = "sw-resize"
	CursorWResize      Cursor = "w-resize"
	CursorEwResize     Cursor = "ew-resize"
	CursorNsResize     Cursor = "ns-resize"
	CursorNeswResize   Cursor = "nesw-resize"
	CursorNwseResize   Cursor = "nwse-resize"
	CursorColResize    Cursor = "col-resize"
	CursorRowResize    Cursor = "row-resize"
	CursorAllScroll    Cursor = "all-scroll"
	CursorZoomIn       Cursor = "zoom-in"
	CursorZoomOut      Cursor = "zoom-out"
)

type Resize string

const (
	ResizeVertical   Resize = "vertical"
	ResizeHorizontal Resize = "horizontal"
	ResizeBoth       Resize = "both"
)

type WhiteSpace string

const (
	WhiteSpaceNormal      WhiteSpace = "normal"
	WhiteSpaceNoWrap      WhiteSpace = "nowrap"
	WhiteSpacePre         WhiteSpace = "pre"
	WhiteSpacePreLine     WhiteSpace = "pre-line"
	WhiteSpacePreWrap     WhiteSpace = "pre-wrap"
	WhiteSpaceBreakSpaces WhiteSpace = "break-spaces"
)

// Color is a light/dark pair. An empty Dark uses Light in both schemes.
type Color struct {
	Light string `json:"light" yaml:"light" msgpack:"light"`
	Dark  string `json:"dark,omitempty" yaml:"dark,omitempty" msgpack:"dark,omitempty"`
}

// Solid returns a color that is the same in both schemes.
func Solid(c string) Color { return Color{Light: c, Dark: c} }

func (c Color) normalized() Color {
	if c.Dark == "" {
		c.Dark = c.Light
	}
	return c
}

// Type is a typography preset.
type Type struct {
	Size          string `json:"size,omitempty" yaml:"size,omitempty" msgpack:"size,omitempty"`
	LineHeight    string `json:"line-height,omitempty" yaml:"line-height,omitempty" msgpack:"line-height,omitempty"`
	LetterSpacing string `json:"letter-spacing,omitempty" yaml:"letter-spacing,omitempty" msgpack:"letter-spacing,omitempty"`
	Weight        string `json:"weight,omitempty" yaml:"weight,omitempty" msgpack:"weight,omitempty"`
	FontFamily    string `json:"font-family,omitempty" yaml:"font-family,omitempty" msgpack:"font-family,omitempty"`
}

// Declarations returns the CSS sub-properties of t.
func (t Type) Declarations() map[string]string {
	return map[string]string{
		"font-size":      t.Size,
		"line-height":    t.LineHeight,
		"letter-spacing": t.LetterSpacing,
		"font-weight":    t.Weight,
		"font-family":    t.FontFamily,
	}
}

// ResponsiveType is a typography preset per device class.
type ResponsiveType struct {
	Desktop Type `json:"desktop" yaml:"desktop" msgpack:"desktop"`
	Mobile  Type `json:"mobile" yaml:"mobile" msgpack:"mobile"`
}

// SameType returns a responsive type that does not change on mobile.
func SameType(t Type) ResponsiveType {
	return ResponsiveType{Desktop: t, Mobile: t}
}
