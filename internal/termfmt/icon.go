package termfmt

import (
	"regexp"
	"strings"
)

// IconMeta is what the engine needs to know about a registered icon.
type IconMeta struct {
	// DefaultLabel is used when a token carries no explicit label.
	DefaultLabel string
}

// Registry is the read-only icon catalog the formatter consults. It is
// expected to be safe for concurrent use; the engine never writes to it.
type Registry interface {
	Lookup(key string) (IconMeta, bool)
	Known(key string) bool
}

// iconPattern matches [[icon:source/name|label]]. Source and name are
// lowercase identifiers (case-insensitive on input), the label is anything
// up to the closing brackets.
var iconPattern = regexp.MustCompile(`(?i)\[\[icon:([a-z-]+)/([a-z0-9-]+)\|([^\]]*)\]\]`)

// iconToken is one recognized icon occurrence inside a text fragment.
type iconToken struct {
	key      string // normalized source/name
	resolved bool   // key exists in the registry
	label    string
	start    int // byte offsets of the whole token in the scanned text
	end      int
}

// findIconTokens locates every icon token in text. Unknown keys are still
// returned (the token must vanish from visible output either way) with
// resolved=false so the assembler can emit the plain-text fallback.
// Label precedence: explicit token label, then registry default, then the
// bare name.
func findIconTokens(text string, reg Registry) []iconToken {
	matches := iconPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]iconToken, 0, len(matches))
	for _, m := range matches {
		source := strings.ToLower(text[m[2]:m[3]])
		name := strings.ToLower(text[m[4]:m[5]])
		key := source + "/" + name
		meta, ok := reg.Lookup(key)
		label := strings.TrimSpace(text[m[6]:m[7]])
		if label == "" {
			label = meta.DefaultLabel
		}
		if label == "" {
			label = name
		}
		tokens = append(tokens, iconToken{
			key:      key,
			resolved: ok,
			label:    label,
			start:    m[0],
			end:      m[1],
		})
	}
	return tokens
}
