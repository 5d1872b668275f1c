package css

// shortCodes maps CSS property names to the compact prefixes used in
// generated class names.
var shortCodes = map[string]string{
	"color":                      "c",
	"width":                      "w",
	"padding":                    "p",
	"padding-horizontal":         "ph",
	"padding-vertical":           "pv",
	"padding-left":               "pl",
	"padding-right":              "pr",
	"padding-top":                "pt",
	"padding-bottom":             "pb",
	"margin":                     "m",
	"margin-horizontal":          "mh",
	"margin-vertical":            "mv",
	"margin-left":                "ml",
	"margin-right":               "mr",
	"margin-top":                 "mt",
	"margin-bottom":              "mb",
	"height":                     "h",
	"border-width":               "bw",
	"border-left-width":          "blw",
	"border-right-width":         "brw",
	"border-top-width":           "btw",
	"border-bottom-width":        "bbw",
	"border-radius":              "br",
	"border-top-left-radius":     "btlr",
	"border-top-right-radius":    "btrr",
	"border-bottom-left-radius":  "bblr",
	"border-bottom-right-radius": "bbrr",
	"border-style":               "bs",
	"border-top-style":           "bts",
	"border-bottom-style":        "bbs",
	"border-left-style":          "bls",
	"border-right-style":         "brs",
	"border-color":               "bc",
	"border-top-color":           "btc",
	"border-bottom-color":        "bbc",
	"border-left-color":          "blc",
	"border-right-color":         "brc",
	"background-color":           "bgc",
	"z-index":                    "z",
	"sticky":                     "s",
	"top":                        "t",
	"bottom":                     "b",
	"left":                       "l",
	"right":                      "r",
	"overflow":                   "o",
	"overflow-x":                 "ox",
	"overflow-y":                 "oy",
	"gap":                        "g",
	"justify-content":            "jc",
	"position":                   "pos",
	"flex-wrap":                  "fw",
	"text-transform":             "tt",
	"text-align":                 "ta",
	"-webkit-box-orient":         "wbo",
	"-webkit-line-clamp":         "wlc",
	"display":                    "d",
	"opacity":                    "op",
	"cursor":                     "cur",
	// "r" is taken by right; sharing it would let a resize class evict a
	// right class.
	"resize":     "rsz",
	"max-height": "mxh",
	"min-height": "mnh",
	"max-width":  "mxw",
	"min-width":  "mnw",
}

// ShortCode returns the class prefix for a CSS property. Properties without
// a short code use their full name.
func ShortCode(property string) string {
	if s, ok := shortCodes[property]; ok {
		return s
	}
	return property
}

// Prefix returns the "{short}-" prefix shared by every class generated for
// property.
func Prefix(property string) string {
	return ShortCode(property) + "-"
}
