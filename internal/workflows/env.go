package workflows

import (
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/pm/internal/audit"
	"github.com/PolarWolf314/pm/internal/configs"
	"github.com/PolarWolf314/pm/internal/prompt"
	"github.com/PolarWolf314/pm/internal/registry"
	"github.com/PolarWolf314/pm/internal/remote"
	"github.com/PolarWolf314/pm/internal/resolve"
	"github.com/PolarWolf314/pm/internal/utils"
)

// Env holds the collaborators shared by every workflow.
type Env struct {
	// Store reads and writes the settings document.
	Store *configs.Store

	// Prompter asks for missing input. Workflows that need an answer and
	// find Prompter nil fail instead of guessing.
	Prompter prompt.Prompter

	// Remote creates hosted repositories. Nil disables remote creation.
	Remote remote.Creator

	// Audit records successful mutations. Nil disables the trail.
	Audit *audit.Trail

	// Out receives the few lines a workflow prints itself, such as the
	// heading of an ambiguous-name choice. Defaults to os.Stdout.
	Out io.Writer

	// RunEditor runs the editor command inside dir. Defaults to a shell.
	RunEditor func(command, dir string) error

	// OpenURL opens a web page. Defaults to the system browser.
	OpenURL func(url string) error
}

func (e *Env) out() io.Writer {
	if e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

func (e *Env) runEditor(command, dir string) error {
	if e.RunEditor != nil {
		return e.RunEditor(command, dir)
	}
	return utils.EditorCommand(command, dir).Run()
}

func (e *Env) openURL(url string) error {
	if e.OpenURL != nil {
		return e.OpenURL(url)
	}
	return utils.OpenURL(url)
}

func (e *Env) log(entry audit.Entry) {
	if e.Audit != nil {
		e.Audit.Log(entry)
	}
}

func (e *Env) prompter(what string) (prompt.Prompter, error) {
	if e.Prompter == nil {
		return nil, fmt.Errorf("%s is required", what)
	}
	return e.Prompter, nil
}

// openRegistry loads the settings document and wraps it in a Registry whose
// ambiguous lookups are resolved through the Prompter.
func (e *Env) openRegistry() (*registry.Registry, error) {
	doc, err := e.Store.Load()
	if err != nil {
		return nil, err
	}

	var resolver registry.Resolver
	if e.Prompter != nil {
		resolver = resolve.New(e.Prompter, e.out())
	}
	return registry.New(e.Store, doc, resolver), nil
}
