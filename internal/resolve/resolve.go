// Package resolve turns a bare project name that exists in several groups
// into one project by asking the user.
package resolve

import (
	"fmt"
	"io"

	"github.com/PolarWolf314/pm/internal/prompt"
	"github.com/PolarWolf314/pm/internal/registry"
	"github.com/PolarWolf314/pm/internal/ui"
)

const selectPrompt = "Select a project by its number (type 'q' to quit): "

// Chooser asks the user to pick one of several indexed options.
type Chooser interface {
	Choose(prompt string, options []prompt.Option) (int, error)
}

// Engine implements registry.Resolver on top of a Chooser.
type Engine struct {
	chooser Chooser
	out     io.Writer
}

// New returns an Engine that prints its heading to out.
func New(chooser Chooser, out io.Writer) *Engine {
	return &Engine{chooser: chooser, out: out}
}

// Resolve numbers the candidates from 1 in the order given and returns the
// one the user picks. Cancellation is returned unchanged.
func (e *Engine) Resolve(name string, candidates []registry.Project) (*registry.Project, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates for %q", name)
	}

	options := make([]prompt.Option, len(candidates))
	for i, c := range candidates {
		options[i] = prompt.Option{
			Index: i + 1,
			Label: fmt.Sprintf("%s (in group %s)", c.Name, ui.Highlight.Sprint(c.Group)),
		}
	}

	fmt.Fprintln(e.out, "Multiple projects found:")
	picked, err := e.chooser.Choose(selectPrompt, options)
	if err != nil {
		return nil, err
	}
	if picked < 1 || picked > len(candidates) {
		return nil, fmt.Errorf("selection %d is out of range", picked)
	}

	chosen := candidates[picked-1]
	return &chosen, nil
}
