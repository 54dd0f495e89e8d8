package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/audit"
	"github.com/PolarWolf314/pm/internal/configs"
	perrors "github.com/PolarWolf314/pm/internal/errors"
)

// ConfigEntry is one settings key and its display value.
type ConfigEntry struct {
	Key   string
	Value string
}

// ConfigListResult contains the outcome of a config list operation.
type ConfigListResult struct {
	// Path is the settings document that was read.
	Path string

	// Entries holds every settings key in display order. The token is masked.
	Entries []ConfigEntry

	// Groups and Projects count the registered groups and projects.
	Groups   int
	Projects int
}

// ConfigList reports every settings key.
func ConfigList(ctx context.Context, env *Env) (*ConfigListResult, error) {
	settings, err := env.Store.Load()
	if err != nil {
		return nil, err
	}

	result := &ConfigListResult{Path: env.Store.Path(), Groups: len(settings.Projects)}
	for _, key := range configs.Keys() {
		value, err := configs.Get(settings, key)
		if err != nil {
			return nil, err
		}
		if key == configs.KeyToken {
			value = configs.MaskSecret(value)
		}
		result.Entries = append(result.Entries, ConfigEntry{Key: key, Value: value})
	}
	for _, projects := range settings.Projects {
		result.Projects += len(projects)
	}
	return result, nil
}

// ConfigGetOptions configures the config get workflow.
type ConfigGetOptions struct {
	// Key is the settings key to read.
	Key string

	// Reveal returns the token unmasked.
	Reveal bool
}

// ConfigGet returns the value of one settings key.
//
// Returns ErrInvalidKey if the key is unknown.
func ConfigGet(ctx context.Context, env *Env, opts ConfigGetOptions) (string, error) {
	settings, err := env.Store.Load()
	if err != nil {
		return "", err
	}

	value, err := configs.Get(settings, opts.Key)
	if err != nil {
		return "", err
	}
	if opts.Key == configs.KeyToken && !opts.Reveal {
		value = configs.MaskSecret(value)
	}
	return value, nil
}

// ConfigSetOptions configures the config set workflow.
type ConfigSetOptions struct {
	// Key is the settings key to change.
	Key string

	// Value is the new value. Asked for when empty.
	Value string
}

// ConfigSetResult contains the outcome of a config set operation.
type ConfigSetResult struct {
	Key   string
	Value string
}

// ConfigSet changes one settings key and saves the document.
// A projects_folder value is expanded and must name an existing directory.
//
// Returns ErrInvalidKey if the key is unknown.
// Returns ErrPersistFailure if the settings document cannot be written.
func ConfigSet(ctx context.Context, env *Env, opts ConfigSetOptions) (*ConfigSetResult, error) {
	settings, err := env.Store.Load()
	if err != nil {
		return nil, err
	}
	if _, err := configs.Get(settings, opts.Key); err != nil {
		return nil, err
	}

	value, err := askIfEmpty(env, opts.Value, "value", fmt.Sprintf("New value for %s: ", opts.Key))
	if err != nil {
		return nil, err
	}
	if opts.Key == configs.KeyProjectsFolder {
		if value, err = absDir(value); err != nil {
			return nil, err
		}
	}

	if err := configs.Set(settings, opts.Key, value); err != nil {
		return nil, err
	}
	if err := env.Store.Save(settings); err != nil {
		return nil, err
	}

	env.log(audit.Entry{Operation: "config-set", Key: opts.Key})

	display := value
	if opts.Key == configs.KeyToken {
		display = configs.MaskSecret(value)
	}
	return &ConfigSetResult{Key: opts.Key, Value: display}, nil
}

// ConfigOpen runs the editor command inside the folder holding the settings
// document.
//
// Returns ErrEditorNotSet if editor_command is empty.
func ConfigOpen(ctx context.Context, env *Env) (string, error) {
	settings, err := env.Store.Load()
	if err != nil {
		return "", err
	}
	if settings.EditorCommand == "" {
		return "", perrors.ErrEditorNotSet
	}

	if err := env.runEditor(settings.EditorCommand, env.Store.Dir()); err != nil {
		return "", fmt.Errorf("failed to run editor command %q: %w", settings.EditorCommand, err)
	}
	return env.Store.Path(), nil
}
