package render

import "image/color"

// Theme names the colors used for the board, gridlines and chrome.
type Theme struct {
	Live  color.RGBA
	Dead  color.RGBA
	Grid  color.RGBA
	Panel color.RGBA
	Text  color.RGBA
}

var themes = map[string]Theme{
	"dark": {
		Live:  color.RGBA{R: 235, G: 235, B: 245, A: 255},
		Dead:  color.RGBA{R: 12, G: 12, B: 16, A: 255},
		Grid:  color.RGBA{R: 38, G: 38, B: 46, A: 255},
		Panel: color.RGBA{R: 16, G: 16, B: 20, A: 255},
		Text:  color.RGBA{R: 210, G: 210, B: 220, A: 255},
	},
	"light": {
		Live:  color.RGBA{R: 30, G: 30, B: 36, A: 255},
		Dead:  color.RGBA{R: 244, G: 244, B: 248, A: 255},
		Grid:  color.RGBA{R: 214, G: 214, B: 222, A: 255},
		Panel: color.RGBA{R: 228, G: 228, B: 234, A: 255},
		Text:  color.RGBA{R: 40, G: 40, B: 48, A: 255},
	},
	"amber": {
		Live:  color.RGBA{R: 255, G: 183, B: 32, A: 255},
		Dead:  color.RGBA{R: 24, G: 16, B: 4, A: 255},
		Grid:  color.RGBA{R: 58, G: 42, B: 14, A: 255},
		Panel: color.RGBA{R: 32, G: 22, B: 6, A: 255},
		Text:  color.RGBA{R: 255, G: 205, B: 110, A: 255},
	},
	"ocean": {
		Live:  color.RGBA{R: 96, G: 205, B: 255, A: 255},
		Dead:  color.RGBA{R: 6, G: 16, B: 28, A: 255},
		Grid:  color.RGBA{R: 20, G: 44, B: 66, A: 255},
		Panel: color.RGBA{R: 10, G: 24, B: 40, A: 255},
		Text:  color.RGBA{R: 170, G: 220, B: 245, A: 255},
	},
}

// themeOrder fixes the cycling order exposed to the UI.
var themeOrder = []string{"dark", "light", "amber", "ocean"}

// DefaultTheme is the fallback for unrecognized theme names.
const DefaultTheme = "dark"

// KnownTheme reports whether the name maps to a catalog entry.
func KnownTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// Lookup returns the named theme, or the default when unrecognized.
func Lookup(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// Names returns the theme names in cycling order.
func Names() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

// NextTheme returns the name following the given one in cycling order.
func NextTheme(name string) string {
	for i, n := range themeOrder {
		if n == name {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return DefaultTheme
}
