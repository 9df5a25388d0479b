package termfmt

import (
	"reflect"
	"strings"
	"testing"
)

// fakeRegistry stands in for the icon catalog so the engine tests do not
// depend on the real icon set.
type fakeRegistry map[string]IconMeta

func (r fakeRegistry) Lookup(key string) (IconMeta, bool) {
	m, ok := r[key]
	return m, ok
}
func (r fakeRegistry) Known(key string) bool {
	_, ok := r[key]
	return ok
}

var testReg = fakeRegistry{
	"lucide/ghost":    {DefaultLabel: "ghost"},
	"lucide/star":     {DefaultLabel: "featured"},
	"simple-icons/go": {DefaultLabel: "Go"},
}

func TestNoMarkupPassthrough(t *testing.T) {
	lines := Format("plain text, nothing fancy", testReg)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if len(lines[0]) != 1 {
		t.Fatalf("expected 1 fragment, got %d: %+v", len(lines[0]), lines[0])
	}
	f := lines[0][0]
	if f.Kind != KindText || f.Text != "plain text, nothing fancy" {
		t.Fatalf("unexpected fragment: %+v", f)
	}
	if !f.Style.IsZero() {
		t.Fatalf("expected default style, got %+v", f.Style)
	}
}

func TestEmptyInput(t *testing.T) {
	lines := Format("", testReg)
	if len(lines) != 1 || len(lines[0]) != 0 {
		t.Fatalf("expected one empty line, got %+v", lines)
	}
}

func TestSGRResetSemantics(t *testing.T) {
	lines := Format("\x1b[1;31mHi\x1b[0m there", testReg)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	frags := lines[0]
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %+v", len(frags), frags)
	}
	if frags[0].Text != "Hi" || !frags[0].Style.Bold || frags[0].Style.Foreground != "red" {
		t.Fatalf("unexpected first fragment: %+v", frags[0])
	}
	if frags[1].Text != " there" || !frags[1].Style.IsZero() {
		t.Fatalf("reset did not restore initial state: %+v", frags[1])
	}
}

func TestUnknownCodesAreNoOps(t *testing.T) {
	lines := Format("\x1b[1;99;31mX", testReg)
	f := lines[0][0]
	if f.Text != "X" || !f.Style.Bold || f.Style.Foreground != "red" {
		t.Fatalf("unknown code disturbed surrounding state: %+v", f)
	}
}

func TestUnknownIconFallback(t *testing.T) {
	lines := Format("Status: [[icon:lucide/unknown|Mystery state]]", testReg)
	frags := lines[0]
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %+v", frags)
	}
	if frags[0].Kind != KindText || frags[0].Text != "Status: " {
		t.Fatalf("unexpected text fragment: %+v", frags[0])
	}
	fb := frags[1]
	if fb.Kind != KindIconFallback || fb.Label != "Mystery state" {
		t.Fatalf("unexpected fallback fragment: %+v", fb)
	}
	if fb.PlainText() != "[icon] Mystery state" {
		t.Fatalf("fallback renders as %q", fb.PlainText())
	}
	if strings.Contains(lines[0].PlainText(), "[[icon:") {
		t.Fatalf("raw token leaked into output: %q", lines[0].PlainText())
	}
}

func TestKnownIconResolution(t *testing.T) {
	lines := Format("[[icon:lucide/ghost|Terminal avatar]] ready", testReg)
	frags := lines[0]
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %+v", frags)
	}
	if frags[0].Kind != KindIcon || frags[0].IconKey != "lucide/ghost" || frags[0].Label != "Terminal avatar" {
		t.Fatalf("unexpected icon fragment: %+v", frags[0])
	}
	if frags[1].Text != " ready" {
		t.Fatalf("unexpected trailing text: %+v", frags[1])
	}
	if strings.Contains(lines[0].PlainText(), "[[icon:") {
		t.Fatalf("raw token leaked into output: %q", lines[0].PlainText())
	}
}

func TestIconKeyCaseInsensitive(t *testing.T) {
	lines := Format("[[icon:Lucide/GHOST|]]", testReg)
	f := lines[0][0]
	if f.Kind != KindIcon || f.IconKey != "lucide/ghost" {
		t.Fatalf("case-insensitive lookup failed: %+v", f)
	}
	if f.Label != "ghost" {
		t.Fatalf("expected registry default label, got %q", f.Label)
	}
}

func TestIconLabelFallsBackToName(t *testing.T) {
	lines := Format("[[icon:acme/widget|]]", testReg)
	f := lines[0][0]
	if f.Kind != KindIconFallback || f.Label != "widget" {
		t.Fatalf("expected bare-name label, got %+v", f)
	}
}

func TestTruncationBoundary(t *testing.T) {
	input := strings.Repeat("a", 60000)
	lines := Format(input, testReg)
	var visible int
	for _, line := range lines[:len(lines)-1] {
		visible += len(line.PlainText())
	}
	if visible != MaxInputRunes {
		t.Fatalf("expected %d visible characters, got %d", MaxInputRunes, visible)
	}
	last := lines[len(lines)-1]
	if len(last) != 1 || last[0].Text != truncationNotice {
		t.Fatalf("missing truncation marker: %+v", last)
	}
	if last[0].Style.IsZero() {
		t.Fatalf("truncation marker should carry a warning style")
	}
}

func TestBareURLAutolink(t *testing.T) {
	lines := Format("docs at https://example.dev/docs. enjoy", testReg)
	frags := lines[0]
	if len(frags) != 3 {
		t.Fatalf("expected text/link/text, got %+v", frags)
	}
	link := frags[1]
	if link.Kind != KindLink {
		t.Fatalf("expected link fragment, got %+v", link)
	}
	// Stop-at-whitespace: the sentence period rides along with the URL.
	if link.URL != "https://example.dev/docs." {
		t.Fatalf("unexpected URL: %q", link.URL)
	}
	if len(link.Children) != 1 || link.Children[0].Text != link.URL {
		t.Fatalf("link child should echo the URL: %+v", link.Children)
	}
	if frags[2].Text != " enjoy" {
		t.Fatalf("unexpected tail: %+v", frags[2])
	}
}

func TestHyperlinkExtraction(t *testing.T) {
	input := "see \x1b]8;;https://example.dev\x1b\\the site\x1b]8;;\x1b\\ now"
	lines := Format(input, testReg)
	frags := lines[0]
	if len(frags) != 3 {
		t.Fatalf("expected text/link/text, got %+v", frags)
	}
	link := frags[1]
	if link.Kind != KindLink || link.URL != "https://example.dev" {
		t.Fatalf("unexpected link: %+v", link)
	}
	if got := link.PlainText(); got != "the site" {
		t.Fatalf("unexpected display text: %q", got)
	}
}

func TestHyperlinkSurvivesColorChange(t *testing.T) {
	// A color change inside the link text must not split the link.
	input := "\x1b]8;;https://x.dev\x1b\\red \x1b[31mtext\x1b]8;;\x1b\\ after"
	lines := Format(input, testReg)
	frags := lines[0]
	if frags[0].Kind != KindLink {
		t.Fatalf("expected leading link, got %+v", frags[0])
	}
	if got := frags[0].PlainText(); got != "red text" {
		t.Fatalf("link text mangled: %q", got)
	}
}

func TestHyperlinkIconNesting(t *testing.T) {
	input := "\x1b]8;;https://example.dev\x1b\\[[icon:lucide/ghost|Gh]] home\x1b]8;;\x1b\\"
	lines := Format(input, testReg)
	frags := lines[0]
	if len(frags) != 1 || frags[0].Kind != KindLink {
		t.Fatalf("expected a single link fragment, got %+v", frags)
	}
	children := frags[0].Children
	if len(children) != 2 {
		t.Fatalf("expected icon+text children, got %+v", children)
	}
	if children[0].Kind != KindIcon || children[0].IconKey != "lucide/ghost" || children[0].Label != "Gh" {
		t.Fatalf("icon not resolved inside link children: %+v", children[0])
	}
	if children[1].Text != " home" {
		t.Fatalf("unexpected link text child: %+v", children[1])
	}
}

func TestNoNestedAutolinkInsideHyperlink(t *testing.T) {
	input := "\x1b]8;;https://a.dev\x1b\\go to https://b.dev\x1b]8;;\x1b\\"
	lines := Format(input, testReg)
	link := lines[0][0]
	if link.Kind != KindLink {
		t.Fatalf("expected link, got %+v", link)
	}
	for _, c := range link.Children {
		if c.Kind == KindLink {
			t.Fatalf("link nested inside link: %+v", link.Children)
		}
	}
}

func TestMalformedEscapesStayLiteral(t *testing.T) {
	cases := []string{
		"\x1b[31unterminated",
		"\x1b]8;;https://x\x1b\\dangling link start",
		"trailing escape \x1b",
	}
	for _, input := range cases {
		lines := Format(input, testReg)
		if len(lines) != 1 {
			t.Fatalf("%q: expected 1 line, got %+v", input, lines)
		}
		if got := lines[0].PlainText(); got != input {
			t.Fatalf("%q: malformed markup was consumed: %q", input, got)
		}
	}
}

func TestContentIdempotence(t *testing.T) {
	input := "\x1b[1;32mok\x1b[0m [[icon:simple-icons/go|Go]] https://go.dev rocks"
	lines := Format(input, testReg)
	want := "ok Go https://go.dev rocks"
	if got := lines[0].PlainText(); got != want {
		t.Fatalf("plain text mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestKeyStability(t *testing.T) {
	input := "\x1b[31mred\x1b[0m [[icon:lucide/ghost|g]] https://x.dev and " +
		"\x1b]8;;https://y.dev\x1b\\y\x1b]8;;\x1b\\\nsecond [[icon:nope/nope|n]] line"
	first := Format(input, testReg)
	second := Format(input, testReg)
	if !reflect.DeepEqual(keysOf(first), keysOf(second)) {
		t.Fatalf("keys differ between identical runs:\n%v\n%v", keysOf(first), keysOf(second))
	}
}

func keysOf(lines []Line) []string {
	var out []string
	var walk func(f Fragment)
	walk = func(f Fragment) {
		out = append(out, f.Key)
		for _, c := range f.Children {
			walk(c)
		}
	}
	for _, line := range lines {
		for _, f := range line {
			walk(f)
		}
	}
	return out
}

func TestKeysUniqueWithinLine(t *testing.T) {
	lines := Format("dup dup dup [[icon:lucide/ghost|g]] [[icon:lucide/ghost|g]]", testReg)
	seen := map[string]bool{}
	for _, k := range keysOf(lines) {
		if seen[k] {
			t.Fatalf("duplicate key %q", k)
		}
		seen[k] = true
	}
}

func TestMultilineSplitsPerLine(t *testing.T) {
	lines := Format("one\ntwo\nthree", testReg)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, want := range []string{"one", "two", "three"} {
		if got := lines[i].PlainText(); got != want {
			t.Fatalf("line %d: got %q want %q", i, got, want)
		}
	}
}
