package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/pm/internal/audit"
	"github.com/PolarWolf314/pm/internal/configs"
	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/prompt"
	"github.com/PolarWolf314/pm/internal/remote"
)

// scriptedPrompter answers prompts from a fixed list, in order. Running out
// of answers behaves like the end of input.
type scriptedPrompter struct {
	answers []string
	asked   []string
}

func (s *scriptedPrompter) next(question string) (string, error) {
	s.asked = append(s.asked, question)
	if len(s.answers) == 0 {
		return "", perrors.ErrInterrupted
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedPrompter) Bool(question string) (bool, error) {
	answer, err := s.next(question)
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

func (s *scriptedPrompter) Text(question string) (string, error) {
	return s.next(question)
}

func (s *scriptedPrompter) Path(question string) (string, error) {
	return s.next(question)
}

func (s *scriptedPrompter) Choose(question string, options []prompt.Option) (int, error) {
	answer, err := s.next(question)
	if err != nil {
		return 0, err
	}
	if strings.Contains(answer, prompt.CancelToken) {
		return 0, perrors.ErrCancelled
	}
	return strconv.Atoi(answer)
}

type fakeRemote struct {
	calls   int
	name    string
	private bool
	err     error
}

func (f *fakeRemote) CreateRepository(ctx context.Context, token, name string, private bool) (*remote.Repository, error) {
	f.calls++
	f.name = name
	f.private = private
	if f.err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrRemoteCreate, f.err)
	}
	return &remote.Repository{
		HTMLURL:  "https://github.com/me/" + name,
		CloneURL: "https://github.com/me/" + name + ".git",
	}, nil
}

type testEnv struct {
	*Env
	home     string
	folder   string
	prompter *scriptedPrompter
	out      *strings.Builder
	editor   []string
	opened   []string
}

// newTestEnv writes a settings document whose projects folder is an empty
// temporary directory.
func newTestEnv(t *testing.T, answers ...string) *testEnv {
	t.Helper()

	home := t.TempDir()
	folder := t.TempDir()

	settings := configs.NewSettings()
	settings.ProjectsFolder = folder
	store := configs.NewStore(configs.SettingsPath(home))
	require.NoError(t, store.Save(settings))

	te := &testEnv{
		home:     home,
		folder:   folder,
		prompter: &scriptedPrompter{answers: answers},
		out:      &strings.Builder{},
	}
	te.Env = &Env{
		Store:    store,
		Prompter: te.prompter,
		Audit:    audit.NewTrail(home),
		Out:      te.out,
		RunEditor: func(command, dir string) error {
			te.editor = append(te.editor, command+"@"+dir)
			return nil
		},
		OpenURL: func(url string) error {
			te.opened = append(te.opened, url)
			return nil
		},
	}
	return te
}

// update edits the stored document in place.
func (te *testEnv) update(t *testing.T, mutate func(s *configs.Settings)) {
	t.Helper()
	settings, err := te.Store.Load()
	require.NoError(t, err)
	mutate(settings)
	require.NoError(t, te.Store.Save(settings))
}

// addProject registers name in group with a real folder under the projects folder.
func (te *testEnv) addProject(t *testing.T, group, name string, rec configs.ProjectRecord) string {
	t.Helper()
	dir := filepath.Join(te.folder, group, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	rec.Dir = dir
	te.update(t, func(s *configs.Settings) {
		if s.Projects[group] == nil {
			s.Projects[group] = make(map[string]configs.ProjectRecord)
		}
		s.Projects[group][name] = rec
	})
	return dir
}

func (te *testEnv) load(t *testing.T) *configs.Settings {
	t.Helper()
	settings, err := te.Store.Load()
	require.NoError(t, err)
	return settings
}

func (te *testEnv) history(t *testing.T) []audit.Entry {
	t.Helper()
	entries, err := te.Audit.ReadEntries()
	require.NoError(t, err)
	return entries
}

func boolPtr(b bool) *bool {
	return &b
}
