package portfolio

// RGB is a renderer color triple
type RGB struct {
	R, G, B int
}

// Style bundles the colors and typeface of a portfolio rendering. The set
// of styles is closed; it is a configuration map, not a plugin surface.
type Style struct {
	Name    string
	Primary RGB
	Accent  RGB
	Font    string
}

// DefaultStyleName is used whenever the requested style is unknown or absent
const DefaultStyleName = "classic"

var styles = map[string]Style{
	"classic": {
		Name:    "classic",
		Primary: RGB{R: 33, G: 37, B: 41},
		Accent:  RGB{R: 120, G: 90, B: 40},
		Font:    "Times",
	},
	"modern": {
		Name:    "modern",
		Primary: RGB{R: 33, G: 33, B: 33},
		Accent:  RGB{R: 0, G: 121, B: 107},
		Font:    "Helvetica",
	},
}

// StyleFor resolves a style name, silently falling back to classic for
// unknown or empty names
func StyleFor(name string) Style {
	if style, ok := styles[name]; ok {
		return style
	}
	return styles[DefaultStyleName]
}
