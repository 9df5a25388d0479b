package termfmt

// Color is a named terminal color. The empty string means "no color set";
// mapping a name to an actual color value is the renderer's job.
type Color string

const ColorNone Color = ""

// baseColors indexes the eight standard colors by their SGR offset
// (30+i foreground, 40+i background). Bright variants get a "bright-"
// prefix (90+i / 100+i).
var baseColors = [8]Color{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// Style is the graphics state accumulated by SGR codes. The zero value is
// the initial/reset state: all flags off, no colors.
type Style struct {
	Bold       bool  `json:"bold,omitempty"`
	Italic     bool  `json:"italic,omitempty"`
	Underline  bool  `json:"underline,omitempty"`
	Large      bool  `json:"large,omitempty"`
	Foreground Color `json:"fg,omitempty"`
	Background Color `json:"bg,omitempty"`
}

// IsZero reports whether s is the initial state.
func (s Style) IsZero() bool { return s == Style{} }

// apply returns the style after one numeric SGR code. Unknown codes leave
// the state unchanged; code 0 discards everything, it is not a merge.
func (s Style) apply(code int) Style {
	switch {
	case code == 0:
		return Style{}
	case code == 1:
		s.Bold = true
	case code == 22:
		s.Bold = false
	case code == 3:
		s.Italic = true
	case code == 23:
		s.Italic = false
	case code == 4:
		s.Underline = true
	case code == 24:
		s.Underline = false
	case code == 53:
		s.Large = true
	case code == 55:
		s.Large = false
	case code == 39:
		s.Foreground = ColorNone
	case code == 49:
		s.Background = ColorNone
	case code >= 30 && code <= 37:
		s.Foreground = baseColors[code-30]
	case code >= 90 && code <= 97:
		s.Foreground = "bright-" + baseColors[code-90]
	case code >= 40 && code <= 47:
		s.Background = baseColors[code-40]
	case code >= 100 && code <= 107:
		s.Background = "bright-" + baseColors[code-100]
	}
	return s
}
