package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/pm/internal/audit"
	"github.com/PolarWolf314/pm/internal/configs"
	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/gitrepo"
	"github.com/PolarWolf314/pm/internal/registry"
	"github.com/PolarWolf314/pm/internal/remote"
	"github.com/PolarWolf314/pm/internal/utils"
)

// CreateOptions configures the create workflow.
type CreateOptions struct {
	// Name is the project name. Asked for when empty.
	Name string

	// Group is the project's group. Asked for when empty.
	Group string

	// RepoName is the name of the hosted repository. Defaults to Name.
	RepoName string

	// Remote forces the remote repository decision. Nil means ask.
	Remote *bool

	// Private forces the visibility of the remote repository. Nil means ask.
	Private *bool

	// NoOpen skips running the editor command after creation.
	NoOpen bool
}

// CreateResult contains the outcome of a create operation.
type CreateResult struct {
	// Project is the registered project.
	Project *registry.Project

	// GroupCreated indicates the group folder did not exist before.
	GroupCreated bool

	// Repository is the created remote, or nil when none was created.
	Repository *remote.Repository

	// RemoteErr is set when creating the remote repository failed.
	// The project is still created in that case.
	RemoteErr error

	// Warnings lists non-fatal problems (git scaffolding, editor launch).
	Warnings []string

	// Opened indicates the editor command was run.
	Opened bool
}

// Create makes a new project folder under <projects_folder>/<group>/<name>,
// initializes a git repository in it, optionally creates a hosted repository
// and registers the project with a single save.
//
// Every question is asked before anything is written, so an interrupted
// create leaves no trace.
//
// Returns ErrConfigMissing if pm has not been set up or has no projects folder.
// Returns ErrInvalidName if the name or group is not acceptable.
// Returns ErrAlreadyExists if the group already holds a project with that name.
// Returns ErrProjectDirExists if the folder is already present on disk.
// Returns ErrCancelled or ErrInterrupted if the user stops a prompt.
func Create(ctx context.Context, env *Env, opts CreateOptions) (*CreateResult, error) {
	reg, err := env.openRegistry()
	if err != nil {
		return nil, err
	}
	settings := reg.Settings()
	if settings.ProjectsFolder == "" {
		return nil, fmt.Errorf("%w: %s is not set", perrors.ErrConfigMissing, configs.KeyProjectsFolder)
	}

	name, err := askIfEmpty(env, opts.Name, "project name", "Project name: ")
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateName("project", name); err != nil {
		return nil, err
	}

	group, err := askIfEmpty(env, opts.Group, "group", "Group: ")
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateName("group", group); err != nil {
		return nil, err
	}

	if _, err := reg.FindExact(name, group); err == nil {
		return nil, fmt.Errorf("%w: %s in group %s", perrors.ErrAlreadyExists, name, group)
	}

	groupDir := filepath.Join(settings.ProjectsFolder, group)
	dir := filepath.Join(groupDir, name)
	if utils.PathExists(dir) {
		return nil, fmt.Errorf("%w: %s", perrors.ErrProjectDirExists, dir)
	}

	wantRemote, private, err := askRemote(env, settings, opts)
	if err != nil {
		return nil, err
	}

	result := &CreateResult{GroupCreated: !utils.IsDir(groupDir)}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project folder %s: %w", dir, err)
	}

	gitReady := true
	if err := gitrepo.Init(dir); err != nil {
		gitReady = false
		result.Warnings = append(result.Warnings, err.Error())
	}

	rec := configs.ProjectRecord{Dir: dir}
	if wantRemote {
		repoName := opts.RepoName
		if repoName == "" {
			repoName = name
		}

		repo, err := env.Remote.CreateRepository(ctx, settings.Token, repoName, private)
		if err != nil {
			result.RemoteErr = err
		} else {
			result.Repository = repo
			rec.RepoURL = repo.HTMLURL
			if gitReady {
				if err := gitrepo.AddOrigin(dir, repo.CloneURL); err != nil {
					result.Warnings = append(result.Warnings, err.Error())
				}
			}
		}
	}

	project, err := reg.CreateRecord(name, group, rec)
	if err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			return nil, errors.Join(err, fmt.Errorf("failed to remove %s: %w", dir, rmErr))
		}
		if result.GroupCreated {
			_ = os.Remove(groupDir)
		}
		return nil, err
	}
	result.Project = project

	env.log(audit.Entry{
		Operation: "create",
		Project:   name,
		Group:     group,
		Dir:       dir,
		RepoURL:   rec.RepoURL,
	})

	if !opts.NoOpen && settings.EditorCommand != "" {
		if err := env.runEditor(settings.EditorCommand, dir); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to run editor command: %v", err))
		} else {
			result.Opened = true
		}
	}

	return result, nil
}

// askRemote decides whether to create a hosted repository and its
// visibility. Nothing is asked without a token and a remote adapter.
func askRemote(env *Env, settings *configs.Settings, opts CreateOptions) (bool, bool, error) {
	if !settings.HasToken() || env.Remote == nil {
		return false, false, nil
	}

	want := false
	if opts.Remote != nil {
		want = *opts.Remote
	} else {
		p, err := env.prompter("remote repository decision")
		if err != nil {
			return false, false, err
		}
		if want, err = p.Bool("Create a GitHub repository? [y/n]: "); err != nil {
			return false, false, err
		}
	}
	if !want {
		return false, false, nil
	}

	if opts.Private != nil {
		return true, *opts.Private, nil
	}
	p, err := env.prompter("repository visibility")
	if err != nil {
		return false, false, err
	}
	private, err := p.Bool("Should the repository be private? [y/n]: ")
	if err != nil {
		return false, false, err
	}
	return true, private, nil
}

func askIfEmpty(env *Env, value, what, question string) (string, error) {
	if value != "" {
		return value, nil
	}
	p, err := env.prompter(what)
	if err != nil {
		return "", err
	}
	return p.Text(question)
}
