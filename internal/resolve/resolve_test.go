package resolve

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/pm/internal/configs"
	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/prompt"
	"github.com/PolarWolf314/pm/internal/registry"
)

// countingChooser wraps a Chooser and records every call.
type countingChooser struct {
	inner   Chooser
	calls   int
	options []prompt.Option
}

func (c *countingChooser) Choose(p string, options []prompt.Option) (int, error) {
	c.calls++
	c.options = options
	return c.inner.Choose(p, options)
}

type countingSaver struct{ saves int }

func (f *countingSaver) Save(*configs.Settings) error {
	f.saves++
	return nil
}

func ambiguousRegistry(input string) (*registry.Registry, *countingChooser, *countingSaver, *bytes.Buffer) {
	os.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	chooser := &countingChooser{inner: prompt.NewReader(strings.NewReader(input), &out)}

	doc := configs.NewSettings()
	doc.Projects = map[string]map[string]configs.ProjectRecord{
		"A": {"site": {Dir: "/p/a/site"}},
		"B": {"site": {Dir: "/p/b/site", RepoURL: "https://github.com/me/site"}},
	}
	saver := &countingSaver{}
	reg := registry.New(saver, doc, New(chooser, &out))
	return reg, chooser, saver, &out
}

func TestAmbiguousLookupPromptsOnceWithTwoIndexes(t *testing.T) {
	reg, chooser, _, out := ambiguousRegistry("2\n")

	project, err := reg.FindByName("site")
	require.NoError(t, err)

	assert.Equal(t, 1, chooser.calls)
	require.Len(t, chooser.options, 2)
	assert.Equal(t, 1, chooser.options[0].Index)
	assert.Equal(t, 2, chooser.options[1].Index)
	assert.Equal(t, "B", project.Group)
	assert.Equal(t, "/p/b/site", project.Dir)
	assert.Contains(t, out.String(), "Multiple projects found:")
	assert.Contains(t, out.String(), "[1] site (in group 'A')")
}

func TestAmbiguousLookupCancel(t *testing.T) {
	reg, _, saver, _ := ambiguousRegistry("q\n")

	_, err := reg.FindByName("site")
	assert.ErrorIs(t, err, perrors.ErrCancelled)
	assert.Zero(t, saver.saves)
}

func TestAmbiguousLookupOutOfRangeReprompts(t *testing.T) {
	reg, chooser, saver, out := ambiguousRegistry("3\n1\n")
	before := reg.Settings().Clone()

	project, err := reg.FindByName("site")
	require.NoError(t, err)

	assert.Equal(t, "A", project.Group)
	assert.Equal(t, 1, chooser.calls, "re-prompting happens inside a single choice")
	assert.Contains(t, out.String(), "Options are: 1, 2.")
	assert.Equal(t, before, reg.Settings())
	assert.Zero(t, saver.saves)
}

type fixedChooser struct{ pick int }

func (f fixedChooser) Choose(string, []prompt.Option) (int, error) { return f.pick, nil }

func TestResolveRejectsOutOfRangeFromChooser(t *testing.T) {
	engine := New(fixedChooser{pick: 5}, &bytes.Buffer{})
	_, err := engine.Resolve("site", []registry.Project{{Name: "site", Group: "A"}})
	assert.Error(t, err)
}

func TestResolveKeepsCandidateOrder(t *testing.T) {
	engine := New(fixedChooser{pick: 3}, &bytes.Buffer{})
	candidates := []registry.Project{
		{Name: "site", Group: "z"},
		{Name: "site", Group: "m"},
		{Name: "site", Group: "a"},
	}

	project, err := engine.Resolve("site", candidates)
	require.NoError(t, err)
	assert.Equal(t, "a", project.Group)
}
