package workflows

import (
	"context"
	"fmt"

	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/registry"
	"github.com/PolarWolf314/pm/internal/utils"
)

// OpenOptions configures the open and browser workflows.
type OpenOptions struct {
	// Name is the project name.
	Name string

	// Group narrows the lookup. When empty every group is searched.
	Group string
}

// OpenResult contains the outcome of an open operation.
type OpenResult struct {
	// Project is the project that was opened.
	Project *registry.Project

	// Command is the editor command that was run.
	Command string
}

// Open runs the configured editor command with the project folder as its
// working directory.
//
// Returns ErrEditorNotSet if editor_command is empty.
// Returns ErrGroupNotFound or ErrProjectNotFound if the project is unknown.
// Returns ErrCancelled if the user quits an ambiguous-name choice.
func Open(ctx context.Context, env *Env, opts OpenOptions) (*OpenResult, error) {
	reg, err := env.openRegistry()
	if err != nil {
		return nil, err
	}

	command := reg.Settings().EditorCommand
	if command == "" {
		return nil, perrors.ErrEditorNotSet
	}

	project, err := reg.Find(opts.Name, opts.Group)
	if err != nil {
		return nil, err
	}
	if !utils.IsDir(project.Dir) {
		return nil, fmt.Errorf("project folder %s does not exist", project.Dir)
	}

	if err := env.runEditor(command, project.Dir); err != nil {
		return nil, fmt.Errorf("failed to run editor command %q: %w", command, err)
	}

	return &OpenResult{Project: project, Command: command}, nil
}

// BrowserResult contains the outcome of a browser operation.
type BrowserResult struct {
	// Project is the project whose page was opened.
	Project *registry.Project

	// URL is the page that was opened.
	URL string
}

// Browser opens the project's repository page in the default browser.
//
// Returns ErrNoRepoURL if the project has no repo_url.
// Returns ErrGroupNotFound or ErrProjectNotFound if the project is unknown.
func Browser(ctx context.Context, env *Env, opts OpenOptions) (*BrowserResult, error) {
	reg, err := env.openRegistry()
	if err != nil {
		return nil, err
	}

	project, err := reg.Find(opts.Name, opts.Group)
	if err != nil {
		return nil, err
	}
	if project.RepoURL == "" {
		return nil, fmt.Errorf("%w: %s", perrors.ErrNoRepoURL, project.Name)
	}

	if err := env.openURL(project.RepoURL); err != nil {
		return nil, err
	}
	return &BrowserResult{Project: project, URL: project.RepoURL}, nil
}
