package css

import "github.com/zjrosen/quill/internal/style"

// namedColors is the CSS named-color table. Shared read-only static data;
// lookups are by lowercased name.
var namedColors = map[string]style.Color{
	"aliceblue":            style.RGB(0xF0, 0xF8, 0xFF),
	"antiquewhite":         style.RGB(0xFA, 0xEB, 0xD7),
	"aqua":                 style.RGB(0x00, 0xFF, 0xFF),
	"aquamarine":           style.RGB(0x7F, 0xFF, 0xD4),
	"azure":                style.RGB(0xF0, 0xFF, 0xFF),
	"beige":                style.RGB(0xF5, 0xF5, 0xDC),
	"bisque":               style.RGB(0xFF, 0xE4, 0xC4),
	"black":                style.RGB(0x00, 0x00, 0x00),
	"blanchedalmond":       style.RGB(0xFF, 0xEB, 0xCD),
	"blue":                 style.RGB(0x00, 0x00, 0xFF),
	"blueviolet":           style.RGB(0x8A, 0x2B, 0xE2),
	"brown":                style.RGB(0xA5, 0x2A, 0x2A),
	"burlywood":            style.RGB(0xDE, 0xB8, 0x87),
	"cadetblue":            style.RGB(0x5F, 0x9E, 0xA0),
	"chartreuse":           style.RGB(0x7F, 0xFF, 0x00),
	"chocolate":            style.RGB(0xD2, 0x69, 0x1E),
	"coral":                style.RGB(0xFF, 0x7F, 0x50),
	"cornflowerblue":       style.RGB(0x64, 0x95, 0xED),
	"cornsilk":             style.RGB(0xFF, 0xF8, 0xDC),
	"crimson":              style.RGB(0xDC, 0x14, 0x3C),
	"cyan":                 style.RGB(0x00, 0xFF, 0xFF),
	"darkblue":             style.RGB(0x00, 0x00, 0x8B),
	"darkcyan":             style.RGB(0x00, 0x8B, 0x8B),
	"darkgoldenrod":        style.RGB(0xB8, 0x86, 0x0B),
	"darkgray":             style.RGB(0xA9, 0xA9, 0xA9),
	"darkgreen":            style.RGB(0x00, 0x64, 0x00),
	"darkgrey":             style.RGB(0xA9, 0xA9, 0xA9),
	"darkkhaki":            style.RGB(0xBD, 0xB7, 0x6B),
	"darkmagenta":          style.RGB(0x8B, 0x00, 0x8B),
	"darkolivegreen":       style.RGB(0x55, 0x6B, 0x2F),
	"darkorange":           style.RGB(0xFF, 0x8C, 0x00),
	"darkorchid":           style.RGB(0x99, 0x32, 0xCC),
	"darkred":              style.RGB(0x8B, 0x00, 0x00),
	"darksalmon":           style.RGB(0xE9, 0x96, 0x7A),
	"darkseagreen":         style.RGB(0x8F, 0xBC, 0x8F),
	"darkslateblue":        style.RGB(0x48, 0x3D, 0x8B),
	"darkslategray":        style.RGB(0x2F, 0x4F, 0x4F),
	"darkslategrey":        style.RGB(0x2F, 0x4F, 0x4F),
	"darkturquoise":        style.RGB(0x00, 0xCE, 0xD1),
	"darkviolet":           style.RGB(0x94, 0x00, 0xD3),
	"deeppink":             style.RGB(0xFF, 0x14, 0x93),
	"deepskyblue":          style.RGB(0x00, 0xBF, 0xFF),
	"dimgray":              style.RGB(0x69, 0x69, 0x69),
	"dimgrey":              style.RGB(0x69, 0x69, 0x69),
	"dodgerblue":           style.RGB(0x1E, 0x90, 0xFF),
	"firebrick":            style.RGB(0xB2, 0x22, 0x22),
	"floralwhite":          style.RGB(0xFF, 0xFA, 0xF0),
	"forestgreen":          style.RGB(0x22, 0x8B, 0x22),
	"fuchsia":              style.RGB(0xFF, 0x00, 0xFF),
	"gainsboro":            style.RGB(0xDC, 0xDC, 0xDC),
	"ghostwhite":           style.RGB(0xF8, 0xF8, 0xFF),
	"gold":                 style.RGB(0xFF, 0xD7, 0x00),
	"goldenrod":            style.RGB(0xDA, 0xA5, 0x20),
	"gray":                 style.RGB(0x80, 0x80, 0x80),
	"green":                style.RGB(0x00, 0x80, 0x00),
	"greenyellow":          style.RGB(0xAD, 0xFF, 0x2F),
	"grey":                 style.RGB(0x80, 0x80, 0x80),
	"honeydew":             style.RGB(0xF0, 0xFF, 0xF0),
	"hotpink":              style.RGB(0xFF, 0x69, 0xB4),
	"indianred":            style.RGB(0xCD, 0x5C, 0x5C),
	"indigo":               style.RGB(0x4B, 0x00, 0x82),
	"ivory":                style.RGB(0xFF, 0xFF, 0xF0),
	"khaki":                style.RGB(0xF0, 0xE6, 0x8C),
	"lavender":             style.RGB(0xE6, 0xE6, 0xFA),
	"lavenderblush":        style.RGB(0xFF, 0xF0, 0xF5),
	"lawngreen":            style.RGB(0x7C, 0xFC, 0x00),
	"lemonchiffon":         style.RGB(0xFF, 0xFA, 0xCD),
	"lightblue":            style.RGB(0xAD, 0xD8, 0xE6),
	"lightcoral":           style.RGB(0xF0, 0x80, 0x80),
	"lightcyan":            style.RGB(0xE0, 0xFF, 0xFF),
	"lightgoldenrodyellow": style.RGB(0xFA, 0xFA, 0xD2),
	"lightgray":            style.RGB(0xD3, 0xD3, 0xD3),
	"lightgreen":           style.RGB(0x90, 0xEE, 0x90),
	"lightgrey":            style.RGB(0xD3, 0xD3, 0xD3),
	"lightpink":            style.RGB(0xFF, 0xB6, 0xC1),
	"lightsalmon":          style.RGB(0xFF, 0xA0, 0x7A),
	"lightseagreen":        style.RGB(0x20, 0xB2, 0xAA),
	"lightskyblue":         style.RGB(0x87, 0xCE, 0xFA),
	"lightslategray":       style.RGB(0x77, 0x88, 0x99),
	"lightslategrey":       style.RGB(0x77, 0x88, 0x99),
	"lightsteelblue":       style.RGB(0xB0, 0xC4, 0xDE),
	"lightyellow":          style.RGB(0xFF, 0xFF, 0xE0),
	"lime":                 style.RGB(0x00, 0xFF, 0x00),
	"limegreen":            style.RGB(0x32, 0xCD, 0x32),
	"linen":                style.RGB(0xFA, 0xF0, 0xE6),
	"magenta":              style.RGB(0xFF, 0x00, 0xFF),
	"maroon":               style.RGB(0x80, 0x00, 0x00),
	"mediumaquamarine":     style.RGB(0x66, 0xCD, 0xAA),
	"mediumblue":           style.RGB(0x00, 0x00, 0xCD),
	"mediumorchid":         style.RGB(0xBA, 0x55, 0xD3),
	"mediumpurple":         style.RGB(0x93, 0x70, 0xDB),
	"mediumseagreen":       style.RGB(0x3C, 0xB3, 0x71),
	"mediumslateblue":      style.RGB(0x7B, 0x68, 0xEE),
	"mediumspringgreen":    style.RGB(0x00, 0xFA, 0x9A),
	"mediumturquoise":      style.RGB(0x48, 0xD1, 0xCC),
	"mediumvioletred":      style.RGB(0xC7, 0x15, 0x85),
	"midnightblue":         style.RGB(0x19, 0x19, 0x70),
	"mintcream":            style.RGB(0xF5, 0xFF, 0xFA),
	"mistyrose":            style.RGB(0xFF, 0xE4, 0xE1),
	"moccasin":             style.RGB(0xFF, 0xE4, 0xB5),
	"navajowhite":          style.RGB(0xFF, 0xDE, 0xAD),
	"navy":                 style.RGB(0x00, 0x00, 0x80),
	"oldlace":              style.RGB(0xFD, 0xF5, 0xE6),
	"olive":                style.RGB(0x80, 0x80, 0x00),
	"olivedrab":            style.RGB(0x6B, 0x8E, 0x23),
	"orange":               style.RGB(0xFF, 0xA5, 0x00),
	"orangered":            style.RGB(0xFF, 0x45, 0x00),
	"orchid":               style.RGB(0xDA, 0x70, 0xD6),
	"palegoldenrod":        style.RGB(0xEE, 0xE8, 0xAA),
	"palegreen":            style.RGB(0x98, 0xFB, 0x98),
	"paleturquoise":        style.RGB(0xAF, 0xEE, 0xEE),
	"palevioletred":        style.RGB(0xDB, 0x70, 0x93),
	"papayawhip":           style.RGB(0xFF, 0xEF, 0xD5),
	"peachpuff":            style.RGB(0xFF, 0xDA, 0xB9),
	"peru":                 style.RGB(0xCD, 0x85, 0x3F),
	"pink":                 style.RGB(0xFF, 0xC0, 0xCB),
	"plum":                 style.RGB(0xDD, 0xA0, 0xDD),
	"powderblue":           style.RGB(0xB0, 0xE0, 0xE6),
	"purple":               style.RGB(0x80, 0x00, 0x80),
	"rebeccapurple":        style.RGB(0x66, 0x33, 0x99),
	"red":                  style.RGB(0xFF, 0x00, 0x00),
	"rosybrown":            style.RGB(0xBC, 0x8F, 0x8F),
	"royalblue":            style.RGB(0x41, 0x69, 0xE1),
	"saddlebrown":          style.RGB(0x8B, 0x45, 0x13),
	"salmon":               style.RGB(0xFA, 0x80, 0x72),
	"sandybrown":           style.RGB(0xF4, 0xA4, 0x60),
	"seagreen":             style.RGB(0x2E, 0x8B, 0x57),
	"seashell":             style.RGB(0xFF, 0xF5, 0xEE),
	"sienna":               style.RGB(0xA0, 0x52, 0x2D),
	"silver":               style.RGB(0xC0, 0xC0, 0xC0),
	"skyblue":              style.RGB(0x87, 0xCE, 0xEB),
	"slateblue":            style.RGB(0x6A, 0x5A, 0xCD),
	"slategray":            style.RGB(0x70, 0x80, 0x90),
	"slategrey":            style.RGB(0x70, 0x80, 0x90),
	"snow":                 style.RGB(0xFF, 0xFA, 0xFA),
	"springgreen":          style.RGB(0x00, 0xFF, 0x7F),
	"steelblue":            style.RGB(0x46, 0x82, 0xB4),
	"tan":                  style.RGB(0xD2, 0xB4, 0x8C),
	"teal":                 style.RGB(0x00, 0x80, 0x80),
	"thistle":              style.RGB(0xD8, 0xBF, 0xD8),
	"tomato":               style.RGB(0xFF, 0x63, 0x47),
	"turquoise":            style.RGB(0x40, 0xE0, 0xD0),
	"violet":               style.RGB(0xEE, 0x82, 0xEE),
	"wheat":                style.RGB(0xF5, 0xDE, 0xB3),
	"white":                style.RGB(0xFF, 0xFF, 0xFF),
	"whitesmoke":           style.RGB(0xF5, 0xF5, 0xF5),
	"yellow":               style.RGB(0xFF, 0xFF, 0x00),
	"yellowgreen":          style.RGB(0x9A, 0xCD, 0x32),
}
