package workflows

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/pm/internal/configs"
	perrors "github.com/PolarWolf314/pm/internal/errors"
)

func TestConfigSetAndGet(t *testing.T) {
	te := newTestEnv(t)

	result, err := ConfigSet(context.Background(), te.Env, ConfigSetOptions{Key: "token", Value: "ghp_abcdef1234"})
	require.NoError(t, err)
	assert.Equal(t, "**********1234", result.Value)

	masked, err := ConfigGet(context.Background(), te.Env, ConfigGetOptions{Key: "token"})
	require.NoError(t, err)
	assert.Equal(t, "**********1234", masked)

	raw, err := ConfigGet(context.Background(), te.Env, ConfigGetOptions{Key: "token", Reveal: true})
	require.NoError(t, err)
	assert.Equal(t, "ghp_abcdef1234", raw)

	entries := te.history(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "config-set", entries[0].Operation)
	assert.Equal(t, "token", entries[0].Key)
}

func TestConfigSetProjectsFolderMustExist(t *testing.T) {
	te := newTestEnv(t)
	target := t.TempDir()

	_, err := ConfigSet(context.Background(), te.Env, ConfigSetOptions{Key: "projects_folder", Value: filepath.Join(target, "missing")})
	require.Error(t, err)

	_, err = ConfigSet(context.Background(), te.Env, ConfigSetOptions{Key: "projects_folder", Value: target})
	require.NoError(t, err)
	assert.Equal(t, target, te.load(t).ProjectsFolder)
}

func TestConfigSetPromptsForValue(t *testing.T) {
	te := newTestEnv(t, "code .")

	_, err := ConfigSet(context.Background(), te.Env, ConfigSetOptions{Key: "editor_command"})
	require.NoError(t, err)
	assert.Equal(t, "code .", te.load(t).EditorCommand)
}

func TestConfigInvalidKey(t *testing.T) {
	te := newTestEnv(t)

	_, err := ConfigGet(context.Background(), te.Env, ConfigGetOptions{Key: "theme"})
	require.ErrorIs(t, err, perrors.ErrInvalidKey)

	_, err = ConfigSet(context.Background(), te.Env, ConfigSetOptions{Key: "theme", Value: "dark"})
	require.ErrorIs(t, err, perrors.ErrInvalidKey)
	assert.Empty(t, te.prompter.asked)
}

func TestConfigList(t *testing.T) {
	te := newTestEnv(t)
	te.update(t, func(s *configs.Settings) { s.Token = "ghp_abcdef1234" })
	te.addProject(t, "work", "site", configs.ProjectRecord{})

	result, err := ConfigList(context.Background(), te.Env)
	require.NoError(t, err)
	assert.Equal(t, te.Store.Path(), result.Path)
	assert.Equal(t, []ConfigEntry{
		{Key: "projects_folder", Value: te.folder},
		{Key: "editor_command", Value: ""},
		{Key: "token", Value: "**********1234"},
	}, result.Entries)
	assert.Equal(t, 1, result.Groups)
	assert.Equal(t, 1, result.Projects)
}

func TestConfigOpen(t *testing.T) {
	te := newTestEnv(t)

	_, err := ConfigOpen(context.Background(), te.Env)
	require.ErrorIs(t, err, perrors.ErrEditorNotSet)

	te.update(t, func(s *configs.Settings) { s.EditorCommand = "vim ." })
	path, err := ConfigOpen(context.Background(), te.Env)
	require.NoError(t, err)
	assert.Equal(t, te.Store.Path(), path)
	assert.Equal(t, []string{"vim .@" + te.Store.Dir()}, te.editor)
}

func TestConfigRequiresSetup(t *testing.T) {
	env := &Env{Store: configs.NewStore(configs.SettingsPath(t.TempDir()))}

	_, err := ConfigList(context.Background(), env)
	require.ErrorIs(t, err, perrors.ErrConfigMissing)
}
