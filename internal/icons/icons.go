// Package icons is the process-wide icon registry: a static mapping from
// "source/name" keys to metadata and a terminal glyph. Read-only after
// init, so it needs no locking and is safe to share across formatter
// calls.
package icons

import (
	"sort"
	"strings"

	"termfolio/internal/termfmt"
)

// Icon holds what is known about one registered key.
type Icon struct {
	// DefaultLabel is the accessible label used when a token carries none.
	DefaultLabel string
	// Glyph is what terminal renderers draw for the icon.
	Glyph string
}

// catalog covers the keys the seed content uses. Keys are lowercase
// "source/name"; lookups normalize case before hitting the map.
var catalog = map[string]Icon{
	"lucide/ghost":          {DefaultLabel: "ghost", Glyph: "👻"},
	"lucide/terminal":       {DefaultLabel: "terminal", Glyph: "❯"},
	"lucide/folder":         {DefaultLabel: "folder", Glyph: "📁"},
	"lucide/folder-open":    {DefaultLabel: "open folder", Glyph: "📂"},
	"lucide/file-text":      {DefaultLabel: "document", Glyph: "📄"},
	"lucide/mail":           {DefaultLabel: "email", Glyph: "✉"},
	"lucide/link":           {DefaultLabel: "link", Glyph: "🔗"},
	"lucide/user":           {DefaultLabel: "user", Glyph: "👤"},
	"lucide/map-pin":        {DefaultLabel: "location", Glyph: "📍"},
	"lucide/briefcase":      {DefaultLabel: "work", Glyph: "💼"},
	"lucide/star":           {DefaultLabel: "featured", Glyph: "★"},
	"lucide/zap":            {DefaultLabel: "fast", Glyph: "⚡"},
	"lucide/check":          {DefaultLabel: "done", Glyph: "✔"},
	"lucide/alert-triangle": {DefaultLabel: "warning", Glyph: "⚠"},

	"simple-icons/github":     {DefaultLabel: "GitHub", Glyph: "🐙"},
	"simple-icons/go":         {DefaultLabel: "Go", Glyph: "🐹"},
	"simple-icons/react":      {DefaultLabel: "React", Glyph: "⚛"},
	"simple-icons/typescript": {DefaultLabel: "TypeScript", Glyph: "🟦"},
	"simple-icons/postgresql": {DefaultLabel: "PostgreSQL", Glyph: "🐘"},
	"simple-icons/docker":     {DefaultLabel: "Docker", Glyph: "🐳"},
}

// registry adapts the catalog to the shape the formatter depends on.
type registry struct{}

// Default is the registry the application injects into termfmt.Format.
var Default termfmt.Registry = registry{}

func (registry) Lookup(key string) (termfmt.IconMeta, bool) {
	ic, ok := catalog[strings.ToLower(key)]
	if !ok {
		return termfmt.IconMeta{}, false
	}
	return termfmt.IconMeta{DefaultLabel: ic.DefaultLabel}, true
}

func (registry) Known(key string) bool {
	_, ok := catalog[strings.ToLower(key)]
	return ok
}

// Glyph resolves a key to its drawable glyph for terminal renderers.
func Glyph(key string) (string, bool) {
	ic, ok := catalog[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	return ic.Glyph, true
}

// Keys lists every registered key, sorted, for diagnostics.
func Keys() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
