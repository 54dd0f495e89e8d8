package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/pm/internal/audit"
	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/prompt"
	"github.com/PolarWolf314/pm/internal/registry"
	"github.com/PolarWolf314/pm/internal/utils"
)

// Project keys accepted by Configure.
const (
	ProjectKeyName    = "name"
	ProjectKeyGroup   = "group"
	ProjectKeyDir     = "dir"
	ProjectKeyRepoURL = "repo_url"
)

// ClearValue given as the repo_url value removes the repository URL.
const ClearValue = "-"

// ProjectKeys returns the keys accepted by Configure, in display order.
func ProjectKeys() []string {
	return []string{ProjectKeyName, ProjectKeyGroup, ProjectKeyDir, ProjectKeyRepoURL}
}

// ConfigureOptions configures the configure workflow.
type ConfigureOptions struct {
	// Name is the project to change.
	Name string

	// Group narrows the lookup. When empty every group is searched.
	Group string

	// Key is the project key to change. Asked for when empty.
	Key string

	// Value is the new value. Asked for when empty. ClearValue removes a
	// repo_url.
	Value string

	// MoveFolder renames the folder on disk along with the project name.
	MoveFolder bool
}

// ConfigureResult contains the outcome of a configure operation.
type ConfigureResult struct {
	// Project is the project after the change.
	Project *registry.Project

	// Key is the key that was changed.
	Key string

	// Previous is the value before the change.
	Previous string

	// FolderMoved indicates the folder was renamed on disk.
	FolderMoved bool
}

// Configure changes one key of a registered project.
//
// With MoveFolder, a rename also renames the project folder. If saving the
// renamed project fails the folder is moved back.
//
// Returns ErrInvalidKey if the key is not one of ProjectKeys().
// Returns ErrAlreadyExists if the new name or group is taken.
// Returns ErrProjectDirExists if the folder cannot be moved over an existing one.
// Returns ErrPersistFailure if the settings document cannot be written.
func Configure(ctx context.Context, env *Env, opts ConfigureOptions) (*ConfigureResult, error) {
	reg, err := env.openRegistry()
	if err != nil {
		return nil, err
	}

	project, err := reg.Find(opts.Name, opts.Group)
	if err != nil {
		return nil, err
	}

	key := opts.Key
	if key == "" {
		if key, err = chooseProjectKey(env); err != nil {
			return nil, err
		}
	}
	if !isProjectKey(key) {
		return nil, fmt.Errorf("%w: %q (valid keys: %s)", perrors.ErrInvalidKey, key, strings.Join(ProjectKeys(), ", "))
	}

	value, err := askIfEmpty(env, opts.Value, "value", fmt.Sprintf("New value for %s: ", key))
	if err != nil {
		return nil, err
	}

	result := &ConfigureResult{Key: key}

	switch key {
	case ProjectKeyName:
		result.Previous = project.Name
		result.Project, result.FolderMoved, err = renameProject(reg, project, value, opts.MoveFolder)
		if err == nil {
			env.log(audit.Entry{Operation: "rename", Project: project.Name, Group: project.Group, NewName: value, Dir: result.Project.Dir})
		}

	case ProjectKeyGroup:
		result.Previous = project.Group
		result.Project, err = reg.Regroup(project.Name, project.Group, value)
		if err == nil {
			env.log(audit.Entry{Operation: "regroup", Project: project.Name, Group: project.Group, NewGroup: value})
		}

	case ProjectKeyDir:
		result.Previous = project.Dir
		var dir string
		if dir, err = absDir(value); err == nil {
			result.Project, err = reg.SetPath(project.Name, project.Group, dir)
		}
		if err == nil {
			env.log(audit.Entry{Operation: "set-path", Project: project.Name, Group: project.Group, Dir: dir})
		}

	case ProjectKeyRepoURL:
		result.Previous = project.RepoURL
		if value == ClearValue {
			value = ""
		}
		result.Project, err = reg.SetRepoURL(project.Name, project.Group, value)
		if err == nil {
			env.log(audit.Entry{Operation: "set-repo-url", Project: project.Name, Group: project.Group, RepoURL: value})
		}
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

// renameProject renames the project and, when moveFolder is set, its folder.
// The folder is moved first and moved back if the registry rejects the rename.
func renameProject(reg *registry.Registry, project *registry.Project, newName string, moveFolder bool) (*registry.Project, bool, error) {
	if !moveFolder || newName == project.Name {
		p, err := reg.Rename(project.Name, project.Group, newName, "")
		return p, false, err
	}

	if err := utils.ValidateName("project", newName); err != nil {
		return nil, false, err
	}
	if _, err := reg.FindExact(newName, project.Group); err == nil {
		return nil, false, fmt.Errorf("%w: %s in group %s", perrors.ErrAlreadyExists, newName, project.Group)
	}

	oldDir := project.Dir
	newDir := filepath.Join(filepath.Dir(oldDir), newName)
	if utils.PathExists(newDir) {
		return nil, false, fmt.Errorf("%w: %s", perrors.ErrProjectDirExists, newDir)
	}
	if err := os.Rename(oldDir, newDir); err != nil {
		return nil, false, fmt.Errorf("failed to move %s to %s: %w", oldDir, newDir, err)
	}

	p, err := reg.Rename(project.Name, project.Group, newName, newDir)
	if err != nil {
		if rbErr := os.Rename(newDir, oldDir); rbErr != nil {
			return nil, false, errors.Join(err, fmt.Errorf("failed to move %s back to %s: %w", newDir, oldDir, rbErr))
		}
		return nil, false, err
	}
	return p, true, nil
}

func chooseProjectKey(env *Env) (string, error) {
	p, err := env.prompter("key")
	if err != nil {
		return "", err
	}

	keys := ProjectKeys()
	options := make([]prompt.Option, len(keys))
	for i, k := range keys {
		options[i] = prompt.Option{Index: i + 1, Label: k}
	}

	picked, err := p.Choose("Select a key by its number (type 'q' to quit): ", options)
	if err != nil {
		return "", err
	}
	if picked < 1 || picked > len(keys) {
		return "", fmt.Errorf("selection %d is out of range", picked)
	}
	return keys[picked-1], nil
}

func isProjectKey(key string) bool {
	for _, k := range ProjectKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// absDir expands "~" and makes path absolute. The directory must exist.
func absDir(path string) (string, error) {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if !utils.IsDir(abs) {
		return "", fmt.Errorf("directory %s does not exist", abs)
	}
	return abs, nil
}
