package content

import (
	"fmt"
	"sort"
	"strings"
)

// builtins generate command output from the live content file. Canned
// entries in File.Commands can add commands but not shadow these.
// A name → generator map with an explicit not-found branch; no dispatch
// hierarchy.
var builtins map[string]func(File) string

func init() {
	builtins = map[string]func(File) string{
		"help":     helpOutput,
		"whoami":   whoamiOutput,
		"projects": projectsOutput,
		"stack":    stackOutput,
		"contact":  contactOutput,
	}
}

// Respond resolves a command name to its output markup. The second return
// is false for unknown commands; callers render NotFound then.
func (f File) Respond(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if fn, ok := builtins[name]; ok {
		return fn(f), true
	}
	if out, ok := f.Commands[name]; ok {
		return out, true
	}
	return "", false
}

// NotFound is the output for an unrecognized command.
func NotFound(name string) string {
	return fmt.Sprintf("\x1b[91mcommand not found:\x1b[0m %s\ntype \x1b[1mhelp\x1b[0m for available commands", name)
}

// CommandNames lists every runnable command, sorted, for autocomplete.
func (f File) CommandNames() []string {
	seen := map[string]bool{"clear": true}
	for name := range builtins {
		seen[name] = true
	}
	for name := range f.Commands {
		seen[name] = true
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func helpOutput(f File) string {
	var b strings.Builder
	b.WriteString("\x1b[1;53mavailable commands\x1b[0m\n\n")
	for _, name := range f.CommandNames() {
		fmt.Fprintf(&b, "  \x1b[1;36m%-10s\x1b[0m %s\n", name, commandHint(name))
	}
	b.WriteString("\nanything else gets you a polite shrug")
	return b.String()
}

func commandHint(name string) string {
	switch name {
	case "help":
		return "this list"
	case "whoami":
		return "who runs this terminal"
	case "projects":
		return "selected work"
	case "stack":
		return "tools of the trade"
	case "contact":
		return "ways to reach out"
	case "clear":
		return "wipe the screen"
	default:
		return ""
	}
}

func whoamiOutput(f File) string {
	p := f.Profile
	var b strings.Builder
	fmt.Fprintf(&b, "[[icon:lucide/ghost|]] \x1b[1;32m%s\x1b[0m — %s\n", p.Name, p.Title)
	fmt.Fprintf(&b, "[[icon:lucide/map-pin|]] %s\n", p.Location)
	fmt.Fprintf(&b, "[[icon:lucide/briefcase|]] \x1b[33m%s\x1b[0m", p.Status)
	return b.String()
}

func projectsOutput(f File) string {
	if len(f.Projects) == 0 {
		return "\x1b[90mnothing to show yet\x1b[0m"
	}
	var b strings.Builder
	for i, p := range f.Projects {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "\x1b[1;36m%s\x1b[0m", p.Name)
		if p.Featured {
			b.WriteString("  [[icon:lucide/star|]]")
		}
		fmt.Fprintf(&b, "\n  %s", p.Description)
		if len(p.Stack) > 0 {
			fmt.Fprintf(&b, "\n  \x1b[90m%s\x1b[0m", strings.Join(p.Stack, " · "))
		}
		if p.URL != "" {
			fmt.Fprintf(&b, "\n  [[icon:lucide/link|]] %s", p.URL)
		}
	}
	return b.String()
}

func stackOutput(f File) string {
	seen := map[string]bool{}
	var stack []string
	for _, p := range f.Projects {
		for _, s := range p.Stack {
			if !seen[s] {
				seen[s] = true
				stack = append(stack, s)
			}
		}
	}
	if len(stack) == 0 {
		return "\x1b[90mno stack on record\x1b[0m"
	}
	var b strings.Builder
	b.WriteString("\x1b[1mdaily drivers\x1b[0m\n")
	for _, s := range stack {
		fmt.Fprintf(&b, "\n  %s %s", stackIcon(s), s)
	}
	return b.String()
}

// stackIcon maps well-known stack entries to icon tokens. Unknown entries
// get a generic marker; the formatter's fallback path handles the rest.
func stackIcon(name string) string {
	switch strings.ToLower(name) {
	case "go", "golang":
		return "[[icon:simple-icons/go|]]"
	case "react":
		return "[[icon:simple-icons/react|]]"
	case "typescript":
		return "[[icon:simple-icons/typescript|]]"
	case "postgresql", "postgres":
		return "[[icon:simple-icons/postgresql|]]"
	case "docker":
		return "[[icon:simple-icons/docker|]]"
	default:
		return "[[icon:lucide/zap|]]"
	}
}

func contactOutput(f File) string {
	p := f.Profile
	var b strings.Builder
	b.WriteString("\x1b[1;53mget in touch\x1b[0m\n")
	if p.Email != "" {
		fmt.Fprintf(&b, "\n[[icon:lucide/mail|]] \x1b]8;;mailto:%s\x1b\\%s\x1b]8;;\x1b\\", p.Email, p.Email)
	}
	if p.GitHub != "" {
		fmt.Fprintf(&b, "\n[[icon:simple-icons/github|]] \x1b]8;;%s\x1b\\[[icon:lucide/link|]] %s\x1b]8;;\x1b\\",
			p.GitHub, strings.TrimPrefix(p.GitHub, "https://"))
	}
	b.WriteString("\n\n\x1b[90malways happy to talk shop\x1b[0m")
	return b.String()
}
