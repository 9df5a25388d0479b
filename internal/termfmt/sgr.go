package termfmt

import (
	"regexp"
	"strconv"
	"strings"
)

// sgrPattern matches one SGR sequence: ESC [ params m. A sequence whose
// terminator never arrives simply fails to match and stays literal text.
var sgrPattern = regexp.MustCompile(`\x1b\[([0-9;]*)m`)

// styledRun is a maximal slice of a line over which the graphics state is
// constant. Escape sequences are zero-width: concatenating run texts gives
// the line with all SGR markup removed.
type styledRun struct {
	text  string
	style Style
}

// scanStyles slices line into style-homogeneous runs. A line with no
// escape sequences yields exactly one run with the initial style.
func scanStyles(line string) []styledRun {
	matches := sgrPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return []styledRun{{text: line}}
	}
	var runs []styledRun
	state := Style{}
	cursor := 0
	for _, m := range matches {
		if m[0] > cursor {
			runs = append(runs, styledRun{text: line[cursor:m[0]], style: state})
		}
		state = applyParams(state, line[m[2]:m[3]])
		cursor = m[1]
	}
	if cursor < len(line) {
		runs = append(runs, styledRun{text: line[cursor:], style: state})
	}
	if len(runs) == 0 {
		// Line was nothing but escape sequences.
		runs = append(runs, styledRun{style: state})
	}
	return runs
}

// stripSGR drops every recognizable SGR sequence from s. Used on
// hyperlink display text: a color change inside a link does not split or
// restyle it, the children inherit the enclosing run's style.
func stripSGR(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// applyParams applies a ";"-separated SGR parameter string code by code.
// An empty parameter list (ESC[m) means reset, per terminal convention.
func applyParams(state Style, params string) Style {
	if params == "" {
		return Style{}
	}
	for _, p := range strings.Split(params, ";") {
		if p == "" {
			continue
		}
		code, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		state = state.apply(code)
	}
	return state
}
