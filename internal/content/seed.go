package content

// Seed is the content served before anyone writes a content.json of
// their own. Everything here flows through the formatter, so it doubles
// as living test data for the markup pipeline.
func Seed() File {
	return File{
		Profile: Profile{
			Name:     "Riley Chen",
			Title:    "Full-stack Developer",
			Location: "Remote",
			Status:   "Available for projects",
			Email:    "riley@example.dev",
			GitHub:   "https://github.com/rileychen",
			Bio: "# Riley Chen\n\nFull-stack developer with a soft spot for " +
				"terminals, typography and tools that feel fast.\n\n" +
				"Currently building content platforms in Go and React.\n",
		},
		Projects: []Project{
			{
				ID:          "termfolio",
				Name:        "Terminal Portfolio",
				Description: "A vintage CRT-inspired portfolio with an interactive terminal interface.",
				Stack:       []string{"React", "TypeScript", "Go"},
				URL:         "https://termfolio.example.dev",
				Featured:    true,
			},
			{
				ID:          "linkwarden",
				Name:        "Linkwarden",
				Description: "Self-hosted bookmark archive with full-text search.",
				Stack:       []string{"Go", "PostgreSQL", "Docker"},
				URL:         "https://github.com/rileychen/linkwarden",
			},
		},
		Commands: map[string]string{
			"motd": "\x1b[32mall systems nominal\x1b[0m [[icon:lucide/check|]]\n" +
				"docs live at https://termfolio.example.dev/docs",
			"sudo": "\x1b[1;91mnice try.\x1b[0m [[icon:lucide/alert-triangle|]] this incident will be reported",
		},
	}
}
