package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/registry"
)

// List targets.
const (
	ListProjects = "projects"
	ListGroups   = "groups"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// Target is ListProjects or ListGroups. Defaults to ListProjects.
	Target string

	// Group restricts a project listing to one group.
	Group string
}

// GroupSummary describes one group.
type GroupSummary struct {
	Name     string
	Projects int
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	// Groups is set when listing groups.
	Groups []GroupSummary

	// Projects is set when listing projects, sorted by group and name.
	Projects []registry.Project
}

// List reports the registered groups or projects.
//
// Returns ErrGroupNotFound if Group names an unknown group.
func List(ctx context.Context, env *Env, opts ListOptions) (*ListResult, error) {
	reg, err := env.openRegistry()
	if err != nil {
		return nil, err
	}

	switch opts.Target {
	case ListGroups:
		result := &ListResult{}
		for _, group := range reg.Groups() {
			projects, err := reg.Projects(group)
			if err != nil {
				return nil, err
			}
			result.Groups = append(result.Groups, GroupSummary{Name: group, Projects: len(projects)})
		}
		return result, nil

	case ListProjects, "":
		projects, err := reg.Projects(opts.Group)
		if err != nil {
			return nil, err
		}
		return &ListResult{Projects: projects}, nil
	}

	return nil, fmt.Errorf("unknown list target %q (expected %s or %s)", opts.Target, ListProjects, ListGroups)
}
