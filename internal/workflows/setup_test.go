package workflows

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/pm/internal/audit"
	"github.com/PolarWolf314/pm/internal/configs"
	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/gitrepo"
)

func newSetupEnv(t *testing.T, answers ...string) (*Env, *scriptedPrompter) {
	t.Helper()
	home := filepath.Join(t.TempDir(), "pm")
	p := &scriptedPrompter{answers: answers}
	return &Env{
		Store:    configs.NewStore(configs.SettingsPath(home)),
		Prompter: p,
		Audit:    audit.NewTrail(home),
	}, p
}

func mkdirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(filepath.Join(root, p), 0755))
	}
}

func TestSetupFreshInstall(t *testing.T) {
	folder := t.TempDir()
	env, p := newSetupEnv(t, folder, "y", "code .", "n")

	result, err := Setup(context.Background(), env, SetupOptions{})
	require.NoError(t, err)
	assert.False(t, result.Overwritten)
	assert.Empty(t, result.Discovered)
	assert.Len(t, p.asked, 4)

	settings, err := env.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, folder, settings.ProjectsFolder)
	assert.Equal(t, "code .", settings.EditorCommand)
	assert.Empty(t, settings.Token)
	assert.Empty(t, settings.Projects)
}

func TestSetupImportsExistingFolders(t *testing.T) {
	folder := t.TempDir()
	mkdirs(t, folder, "work/site", "work/api", "personal/site", ".cache/junk", "work/.hidden")
	require.NoError(t, os.WriteFile(filepath.Join(folder, "work", "notes.txt"), nil, 0644))
	require.NoError(t, gitrepo.Init(filepath.Join(folder, "work", "site")))
	require.NoError(t, gitrepo.AddOrigin(filepath.Join(folder, "work", "site"), "git@github.com:me/site.git"))

	env, _ := newSetupEnv(t, folder, "n", "n", "y")

	result, err := Setup(context.Background(), env, SetupOptions{})
	require.NoError(t, err)
	assert.Len(t, result.Discovered, 3)
	require.Len(t, result.Imported, 3)

	settings, err := env.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, configs.ProjectRecord{
		Dir:     filepath.Join(folder, "work", "site"),
		RepoURL: "https://github.com/me/site",
	}, settings.Projects["work"]["site"])
	assert.Contains(t, settings.Projects["work"], "api")
	assert.Contains(t, settings.Projects["personal"], "site")
	assert.NotContains(t, settings.Projects, ".cache")

	entries, err := env.Audit.ReadEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "setup", entries[0].Operation)
	assert.Equal(t, "import", entries[1].Operation)
	assert.Equal(t, 3, entries[1].Count)
}

func TestSetupDeclinedImport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	folder := t.TempDir()
	mkdirs(t, folder, "work/site")
	env, _ := newSetupEnv(t, folder, "n", "n", "n")
	var out strings.Builder
	env.Out = &out

	result, err := Setup(context.Background(), env, SetupOptions{})
	require.NoError(t, err)
	assert.Len(t, result.Discovered, 1)
	assert.Empty(t, result.Imported)
	assert.Contains(t, out.String(), "Unregistered project folders:\n    - work/site\n")

	settings, err := env.Store.Load()
	require.NoError(t, err)
	assert.Empty(t, settings.Projects)
}

func TestSetupExistingDocument(t *testing.T) {
	folder := t.TempDir()
	env, _ := newSetupEnv(t)
	existing := configs.NewSettings()
	existing.ProjectsFolder = "/old"
	existing.Projects["work"] = map[string]configs.ProjectRecord{"site": {Dir: "/old/work/site"}}
	require.NoError(t, env.Store.Save(existing))

	// Declining keeps the document untouched.
	env.Prompter = &scriptedPrompter{answers: []string{"n"}}
	_, err := Setup(context.Background(), env, SetupOptions{})
	require.ErrorIs(t, err, perrors.ErrCancelled)

	settings, err := env.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, "/old", settings.ProjectsFolder)

	// Force replaces the settings but keeps registered projects.
	env.Prompter = &scriptedPrompter{answers: []string{folder, "n", "y", "ghp_token"}}
	result, err := Setup(context.Background(), env, SetupOptions{Force: true})
	require.NoError(t, err)
	assert.True(t, result.Overwritten)

	settings, err = env.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, folder, settings.ProjectsFolder)
	assert.Equal(t, "ghp_token", settings.Token)
	assert.Contains(t, settings.Projects["work"], "site")
}

func writeCorruptSettings(t *testing.T, env *Env) {
	t.Helper()
	require.NoError(t, os.MkdirAll(env.Store.Dir(), 0755))
	require.NoError(t, os.WriteFile(env.Store.Path(), []byte("this is = = not toml"), 0600))
	_, err := env.Store.Load()
	require.ErrorIs(t, err, perrors.ErrConfigCorrupt)
}

func TestSetupForceReplacesCorruptDocument(t *testing.T) {
	folder := t.TempDir()
	mkdirs(t, folder, "work/site")
	env, p := newSetupEnv(t, folder, "n", "n")
	writeCorruptSettings(t, env)

	result, err := Setup(context.Background(), env, SetupOptions{Force: true, ImportAll: true})
	require.NoError(t, err)
	assert.True(t, result.Overwritten)
	assert.True(t, result.Replaced)
	assert.Len(t, p.asked, 3)
	require.Len(t, result.Imported, 1)

	settings, err := env.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, folder, settings.ProjectsFolder)
	assert.Equal(t, filepath.Join(folder, "work", "site"), settings.Projects["work"]["site"].Dir)
}

func TestSetupAsksBeforeReplacingCorruptDocument(t *testing.T) {
	env, p := newSetupEnv(t, "n")
	writeCorruptSettings(t, env)

	_, err := Setup(context.Background(), env, SetupOptions{})
	require.ErrorIs(t, err, perrors.ErrCancelled)
	assert.Equal(t, []string{"The settings document cannot be read. Replace it? [y/n]: "}, p.asked)

	data, err := os.ReadFile(env.Store.Path())
	require.NoError(t, err)
	assert.Equal(t, "this is = = not toml", string(data))

	folder := t.TempDir()
	env.Prompter = &scriptedPrompter{answers: []string{"y", folder, "n", "n"}}
	result, err := Setup(context.Background(), env, SetupOptions{})
	require.NoError(t, err)
	assert.True(t, result.Replaced)

	settings, err := env.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, folder, settings.ProjectsFolder)
	assert.Empty(t, settings.Projects)
}

func TestSetupInterrupted(t *testing.T) {
	env, _ := newSetupEnv(t)

	_, err := Setup(context.Background(), env, SetupOptions{})
	require.ErrorIs(t, err, perrors.ErrInterrupted)
	assert.False(t, env.Store.Exists())
}
