package workflows

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/pm/internal/audit"
	"github.com/PolarWolf314/pm/internal/configs"
	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/gitrepo"
	"github.com/PolarWolf314/pm/internal/prompt"
	"github.com/PolarWolf314/pm/internal/registry"
	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/utils"
)

// SetupOptions configures the setup workflow.
type SetupOptions struct {
	// Force overwrites an existing settings document without asking.
	Force bool

	// ImportAll imports every discovered project without asking.
	ImportAll bool
}

// SetupResult contains the outcome of a setup operation.
type SetupResult struct {
	// Path is where the settings document was written.
	Path string

	// Overwritten indicates a previous document was replaced.
	Overwritten bool

	// Replaced indicates the previous document could not be read, so its
	// projects were dropped. Importing the projects folder registers them
	// again.
	Replaced bool

	// Discovered lists the unregistered project folders found under the
	// projects folder.
	Discovered []registry.Project

	// Imported lists the projects that were registered.
	Imported []registry.Project
}

// Setup asks for the projects folder, editor command and token, writes the
// settings document and offers to register the project folders already
// present as <projects_folder>/<group>/<project>.
//
// Projects registered in an existing document are kept. A document that
// cannot be read is replaced by an empty one.
//
// Returns ErrCancelled if the user declines to overwrite an existing document.
// Returns ErrPersistFailure if the settings document cannot be written.
func Setup(ctx context.Context, env *Env, opts SetupOptions) (*SetupResult, error) {
	p, err := env.prompter("setup input")
	if err != nil {
		return nil, err
	}

	result := &SetupResult{Path: env.Store.Path()}

	settings, err := env.Store.Load()
	switch {
	case err == nil:
		if err := confirmOverwrite(p, opts.Force, "pm is already configured. Overwrite the settings? [y/n]: "); err != nil {
			return nil, err
		}
		result.Overwritten = true
	case errors.Is(err, perrors.ErrConfigCorrupt):
		if err := confirmOverwrite(p, opts.Force, "The settings document cannot be read. Replace it? [y/n]: "); err != nil {
			return nil, err
		}
		settings = configs.NewSettings()
		result.Overwritten = true
		result.Replaced = true
	case errors.Is(err, perrors.ErrConfigMissing):
		settings = configs.NewSettings()
	default:
		return nil, err
	}

	folder, err := p.Path("Projects folder: ")
	if err != nil {
		return nil, err
	}
	if !utils.IsDir(folder) {
		return nil, fmt.Errorf("%s is not a directory", folder)
	}
	settings.ProjectsFolder = folder

	if settings.EditorCommand, err = askOptional(p, "Do you want to set an editor command? [y/n]: ", "Editor command (for example 'code .'): "); err != nil {
		return nil, err
	}
	if settings.Token, err = askOptional(p, "Do you want to set a GitHub token? [y/n]: ", "GitHub token: "); err != nil {
		return nil, err
	}

	if err := env.Store.Save(settings); err != nil {
		return nil, err
	}
	env.log(audit.Entry{Operation: "setup", Dir: folder})

	reg := registry.New(env.Store, settings, nil)
	discovered, err := DiscoverProjects(reg, folder)
	if err != nil {
		return nil, err
	}
	result.Discovered = discovered
	if len(discovered) == 0 {
		return result, nil
	}

	if !opts.ImportAll {
		labels := make([]string, len(discovered))
		for i, d := range discovered {
			labels[i] = d.Group + "/" + d.Name
		}
		fmt.Fprint(env.out(), "Unregistered project folders:\n"+utils.FormatList(labels, ui.Path))

		question := fmt.Sprintf("Found %d unregistered projects in %s. Import them? [y/n]: ", len(discovered), folder)
		ok, err := p.Bool(question)
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}
	}

	imported, err := reg.Import(discovered)
	if err != nil {
		return nil, err
	}
	result.Imported = imported
	if len(imported) > 0 {
		env.log(audit.Entry{Operation: "import", Dir: folder, Count: len(imported)})
	}

	return result, nil
}

// DiscoverProjects walks <folder>/<group>/<project> and returns the folders
// that are not registered yet, sorted by group and name. Hidden folders and
// names that are not valid project or group names are skipped. A project's
// repo_url is taken from its git origin when there is one.
func DiscoverProjects(reg *registry.Registry, folder string) ([]registry.Project, error) {
	groups, err := utils.ListSubdirs(folder)
	if err != nil {
		return nil, err
	}

	var found []registry.Project
	for _, group := range groups {
		if !utils.IsValidName(group) {
			continue
		}
		names, err := utils.ListSubdirs(filepath.Join(folder, group))
		if err != nil {
			return nil, err
		}

		for _, name := range names {
			if !utils.IsValidName(name) {
				continue
			}
			if _, err := reg.FindExact(name, group); err == nil {
				continue
			}

			dir := filepath.Join(folder, group, name)
			rec := configs.ProjectRecord{Dir: dir}
			if origin, err := gitrepo.OriginURL(dir); err == nil {
				rec.RepoURL = gitrepo.WebURL(origin)
			}
			found = append(found, registry.Project{Name: name, Group: group, ProjectRecord: rec})
		}
	}
	return found, nil
}

// confirmOverwrite asks before an existing document is replaced unless force
// is set. Declining yields ErrCancelled.
func confirmOverwrite(p prompt.Prompter, force bool, question string) error {
	if force {
		return nil
	}
	ok, err := p.Bool(question)
	if err != nil {
		return err
	}
	if !ok {
		return perrors.ErrCancelled
	}
	return nil
}

// askOptional asks whether a value should be set and then asks for it.
// Declining yields "".
func askOptional(p prompt.Prompter, question, valuePrompt string) (string, error) {
	want, err := p.Bool(question)
	if err != nil || !want {
		return "", err
	}
	return p.Text(valuePrompt)
}
