package ui

import (
	"strings"
	"testing"

	zone "github.com/lrstanley/bubblezone"

	"termfolio/internal/icons"
	"termfolio/internal/termfmt"
)

// Style-to-color output depends on the terminal profile, so these tests
// assert on content, not on escape bytes.

func TestRenderLinesContent(t *testing.T) {
	r := &Renderer{}
	out := r.RenderLines(termfmt.Format("hello \x1b[1mworld\x1b[0m", icons.Default))
	if !strings.Contains(out, "hello ") || !strings.Contains(out, "world") {
		t.Fatalf("content missing from render: %q", out)
	}
}

func TestRenderIconGlyph(t *testing.T) {
	r := &Renderer{}
	out := r.RenderLines(termfmt.Format("[[icon:lucide/ghost|spooky]]", icons.Default))
	glyph, _ := icons.Glyph("lucide/ghost")
	if !strings.Contains(out, glyph) {
		t.Fatalf("expected glyph %q in %q", glyph, out)
	}
	if strings.Contains(out, "[[icon:") {
		t.Fatalf("raw token leaked: %q", out)
	}
}

func TestRenderUnknownIconFallback(t *testing.T) {
	r := &Renderer{}
	out := r.RenderLines(termfmt.Format("[[icon:acme/rocket|Launch]]", icons.Default))
	if !strings.Contains(out, "[icon] Launch") {
		t.Fatalf("fallback text missing: %q", out)
	}
}

func TestRenderLinkEmitsOSC8(t *testing.T) {
	r := &Renderer{}
	out := r.RenderLines(termfmt.Format("see https://example.dev", icons.Default))
	if !strings.Contains(out, "\x1b]8;;https://example.dev\x1b\\") {
		t.Fatalf("OSC-8 envelope missing: %q", out)
	}
	if !strings.Contains(out, "\x1b]8;;\x1b\\") {
		t.Fatalf("OSC-8 terminator missing: %q", out)
	}
}

func TestRenderMarkZonesCollectsLinks(t *testing.T) {
	zone.NewGlobal()
	r := &Renderer{MarkZones: true, ZonePrefix: "t."}
	r.RenderLines(termfmt.Format("https://a.dev and https://b.dev", icons.Default))
	if len(r.Links) != 2 {
		t.Fatalf("expected 2 link zones, got %+v", r.Links)
	}
	for id, url := range r.Links {
		if !strings.HasPrefix(id, "t.") || !strings.HasPrefix(url, "https://") {
			t.Fatalf("unexpected zone entry %q → %q", id, url)
		}
	}
}

func TestMultilineRenderKeepsLineCount(t *testing.T) {
	r := &Renderer{}
	out := r.RenderLines(termfmt.Format("one\ntwo\nthree", icons.Default))
	if got := len(strings.Split(out, "\n")); got != 3 {
		t.Fatalf("expected 3 rendered lines, got %d: %q", got, out)
	}
}
