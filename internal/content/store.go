// Package content is the portfolio's data layer: profile, projects and
// canned terminal command responses, persisted as a single JSON file
// under the user config dir. Missing file means seed content, never an
// error.
package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cfg "termfolio/internal/config"
)

// Profile is the site owner's card.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Email    string `json:"email,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Bio      string `json:"bio,omitempty"` // markdown, shown by the about command
}

// Project is one portfolio entry.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Stack       []string `json:"stack,omitempty"`
	URL         string   `json:"url,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// File is the on-disk shape of content.json.
type File struct {
	Profile  Profile           `json:"profile"`
	Projects []Project         `json:"projects"`
	Commands map[string]string `json:"commands,omitempty"`
}

func filePath() (string, error) {
	dir, err := cfg.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "content.json"), nil
}

// Path exposes the content file location, for the serve watcher.
func Path() (string, error) { return filePath() }

// Load reads content.json, falling back to the built-in seed when the
// file does not exist yet.
func Load() (File, error) {
	p, err := filePath()
	if err != nil {
		return File{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Seed(), nil
		}
		return File{}, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return File{}, err
	}
	return normalize(f), nil
}

// Save writes the content file, creating parent dirs.
func Save(f File) error {
	p, err := filePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(normalize(f), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// AddProject appends a project. Reports existed=true without writing when
// the ID is already taken.
func AddProject(p Project) (existed bool, err error) {
	f, err := Load()
	if err != nil {
		return false, err
	}
	for _, cur := range f.Projects {
		if cur.ID == p.ID {
			return true, nil
		}
	}
	f.Projects = append(f.Projects, p)
	return false, Save(f)
}

// RemoveProjects deletes projects by ID.
func RemoveProjects(ids []string) (removed []string, missing []string, err error) {
	f, err := Load()
	if err != nil {
		return nil, nil, err
	}
	byID := map[string]bool{}
	for _, p := range f.Projects {
		byID[p.ID] = true
	}
	keep := make([]Project, 0, len(f.Projects))
	drop := map[string]bool{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if byID[id] {
			drop[id] = true
			removed = append(removed, id)
		} else {
			missing = append(missing, id)
		}
	}
	for _, p := range f.Projects {
		if !drop[p.ID] {
			keep = append(keep, p)
		}
	}
	f.Projects = keep
	if err := Save(f); err != nil {
		return nil, nil, err
	}
	return removed, missing, nil
}

func normalize(f File) File {
	for i := range f.Projects {
		f.Projects[i].ID = strings.TrimSpace(f.Projects[i].ID)
		f.Projects[i].Name = strings.TrimSpace(f.Projects[i].Name)
		aa := make([]string, 0, len(f.Projects[i].Stack))
		for _, s := range f.Projects[i].Stack {
			if s = strings.TrimSpace(s); s != "" {
				aa = append(aa, s)
			}
		}
		f.Projects[i].Stack = aa
	}
	if len(f.Commands) > 0 {
		cmds := make(map[string]string, len(f.Commands))
		keys := make([]string, 0, len(f.Commands))
		for k := range f.Commands {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			name := strings.ToLower(strings.TrimSpace(k))
			if name == "" {
				continue
			}
			cmds[name] = f.Commands[k]
		}
		f.Commands = cmds
	}
	return f
}
