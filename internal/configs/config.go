package configs

import (
	"fmt"
	"sort"
	"strings"

	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/utils"
)

// Settings is the persisted root document.
type Settings struct {
	ProjectsFolder string                              `toml:"projects_folder"`
	EditorCommand  string                              `toml:"editor_command"`
	Token          string                              `toml:"token"`
	Projects       map[string]map[string]ProjectRecord `toml:"projects"`
}

// ProjectRecord is the persisted metadata for one project.
type ProjectRecord struct {
	Dir     string `toml:"dir"`
	RepoURL string `toml:"repo_url,omitempty"`
}

// Settings keys addressable through Get and Set.
const (
	KeyProjectsFolder = "projects_folder"
	KeyEditorCommand  = "editor_command"
	KeyToken          = "token"
)

// NewSettings returns an empty document.
func NewSettings() *Settings {
	return &Settings{Projects: make(map[string]map[string]ProjectRecord)}
}

// Keys returns the settings keys in display order.
func Keys() []string {
	return []string{KeyProjectsFolder, KeyEditorCommand, KeyToken}
}

// Get returns the value stored under key.
func Get(s *Settings, key string) (string, error) {
	switch key {
	case KeyProjectsFolder:
		return s.ProjectsFolder, nil
	case KeyEditorCommand:
		return s.EditorCommand, nil
	case KeyToken:
		return s.Token, nil
	}
	return "", fmt.Errorf("%w: %q (valid keys: %s)", perrors.ErrInvalidKey, key, strings.Join(Keys(), ", "))
}

// Set stores value under key.
func Set(s *Settings, key, value string) error {
	switch key {
	case KeyProjectsFolder:
		s.ProjectsFolder = value
	case KeyEditorCommand:
		s.EditorCommand = value
	case KeyToken:
		s.Token = value
	default:
		return fmt.Errorf("%w: %q (valid keys: %s)", perrors.ErrInvalidKey, key, strings.Join(Keys(), ", "))
	}
	return nil
}

// MaskSecret hides all but the last four characters of a credential.
func MaskSecret(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}

// HasToken reports whether remote repository creation is enabled.
func (s *Settings) HasToken() bool {
	return s.Token != ""
}

// CloneProjects returns a deep copy of the projects section.
func (s *Settings) CloneProjects() map[string]map[string]ProjectRecord {
	out := make(map[string]map[string]ProjectRecord, len(s.Projects))
	for group, projects := range s.Projects {
		inner := make(map[string]ProjectRecord, len(projects))
		for name, rec := range projects {
			inner[name] = rec
		}
		out[group] = inner
	}
	return out
}

// Clone returns a deep copy of the document.
func (s *Settings) Clone() *Settings {
	c := *s
	c.Projects = s.CloneProjects()
	return &c
}

// Validate checks the projects section: every group and project key must be
// a valid name and every record must carry a directory.
func (s *Settings) Validate() error {
	groups := make([]string, 0, len(s.Projects))
	for group := range s.Projects {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		if err := utils.ValidateName("group", group); err != nil {
			return err
		}
		for name, rec := range s.Projects[group] {
			if err := utils.ValidateName("project", name); err != nil {
				return fmt.Errorf("%w (in group %q)", err, group)
			}
			if rec.Dir == "" {
				return fmt.Errorf("project %q in group %q has no dir", name, group)
			}
		}
	}
	return nil
}
