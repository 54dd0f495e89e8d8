package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/audit"
	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/registry"
)

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	// Name is the project to forget.
	Name string

	// Group narrows the lookup. When empty every group is searched.
	Group string

	// Yes skips the confirmation prompt.
	Yes bool
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	// Project is the project that was removed from the registry.
	Project *registry.Project
}

// Remove deletes a project from the registry. The folder on disk is kept.
//
// Returns ErrCancelled if the user declines the confirmation.
// Returns ErrGroupNotFound or ErrProjectNotFound if the project is unknown.
func Remove(ctx context.Context, env *Env, opts RemoveOptions) (*RemoveResult, error) {
	reg, err := env.openRegistry()
	if err != nil {
		return nil, err
	}

	project, err := reg.Find(opts.Name, opts.Group)
	if err != nil {
		return nil, err
	}

	if !opts.Yes {
		p, err := env.prompter("confirmation")
		if err != nil {
			return nil, err
		}
		question := fmt.Sprintf("Remove %s from group %s? The folder stays on disk. [y/n]: ", project.Name, project.Group)
		confirmed, err := p.Bool(question)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			return nil, perrors.ErrCancelled
		}
	}

	removed, err := reg.Delete(project.Name, project.Group)
	if err != nil {
		return nil, err
	}

	env.log(audit.Entry{Operation: "delete", Project: removed.Name, Group: removed.Group, Dir: removed.Dir})

	return &RemoveResult{Project: removed}, nil
}
