package termfmt

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Kind discriminates the fragment variants.
type Kind string

const (
	KindText         Kind = "text"
	KindIcon         Kind = "icon"
	KindIconFallback Kind = "icon-fallback"
	KindLink         Kind = "link"
)

// Fragment is the smallest unit of formatted output: a styled text run, a
// resolved icon, a fallback label for an unknown icon, or a link wrapping
// nested fragments. Fragments are never mutated after assembly.
type Fragment struct {
	Kind  Kind   `json:"kind"`
	Key   string `json:"key"`
	Style Style  `json:"style,omitempty"`

	Text     string     `json:"text,omitempty"`    // KindText
	IconKey  string     `json:"iconKey,omitempty"` // KindIcon
	Label    string     `json:"label,omitempty"`   // KindIcon, KindIconFallback
	URL      string     `json:"url,omitempty"`     // KindLink
	Children []Fragment `json:"children,omitempty"`
}

// Line is the ordered fragment list for one input line.
type Line []Fragment

// PlainText is the visible text a renderer would draw for f: literal text,
// an icon's accessible label, the "[icon] label" fallback, or the
// concatenated children of a link.
func (f Fragment) PlainText() string {
	switch f.Kind {
	case KindText:
		return f.Text
	case KindIcon:
		return f.Label
	case KindIconFallback:
		return "[icon] " + f.Label
	case KindLink:
		var b strings.Builder
		for _, c := range f.Children {
			b.WriteString(c.PlainText())
		}
		return b.String()
	}
	return ""
}

// PlainText concatenates the visible text of every fragment in the line.
func (l Line) PlainText() string {
	var b strings.Builder
	for _, f := range l {
		b.WriteString(f.PlainText())
	}
	return b.String()
}

// fragmentKey derives a stable identity for a fragment from its position
// and content. Same input, same keys, every call: a diffing renderer can
// reuse unchanged rows across redraws.
func fragmentKey(line, run, ord int, content string) string {
	h := fnv.New32a()
	h.Write([]byte(content))
	return fmt.Sprintf("l%d.r%d.%d-%08x", line, run, ord, h.Sum32())
}
