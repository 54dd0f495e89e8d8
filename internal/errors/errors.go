package errors

import (
	"errors"
	"fmt"
)

// Settings errors indicate problems with the persisted settings document.
var (
	// ErrConfigMissing indicates no settings document exists yet.
	ErrConfigMissing = errors.New("pm is not configured")

	// ErrConfigCorrupt indicates the settings document could not be decoded or failed validation.
	ErrConfigCorrupt = errors.New("settings document is corrupt")

	// ErrPersistFailure indicates the settings document could not be written.
	ErrPersistFailure = errors.New("failed to write settings document")

	// ErrInvalidKey indicates an unrecognized settings or project key.
	ErrInvalidKey = errors.New("invalid key")
)

// Registry errors indicate failed lookups or mutations of projects and groups.
var (
	// ErrGroupNotFound indicates the requested group does not exist.
	ErrGroupNotFound = errors.New("group not found")

	// ErrProjectNotFound indicates the requested project does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrAlreadyExists indicates a project with the same name already exists in the group.
	ErrAlreadyExists = errors.New("project already exists")

	// ErrInvalidName indicates a project or group name violates the naming rules.
	ErrInvalidName = errors.New("invalid name")

	// ErrAmbiguousName indicates a bare project name matches projects in several groups
	// and nothing is available to choose between them.
	ErrAmbiguousName = errors.New("project name exists in several groups")

	// ErrProjectDirExists indicates the folder for a new project is already present on disk.
	ErrProjectDirExists = errors.New("project folder already exists")
)

// Interaction errors indicate the user stopped the current command.
var (
	// ErrCancelled indicates the user chose to abort the operation.
	ErrCancelled = errors.New("operation cancelled")

	// ErrInterrupted indicates the user interrupted a prompt (Ctrl-C or end of input).
	ErrInterrupted = fmt.Errorf("interrupted: %w", ErrCancelled)
)

// Collaborator errors indicate failures outside the registry.
var (
	// ErrRemoteCreate indicates the hosted repository could not be created.
	ErrRemoteCreate = errors.New("failed to create remote repository")

	// ErrEditorNotSet indicates no editor command is configured.
	ErrEditorNotSet = errors.New("editor command is not set")

	// ErrNoRepoURL indicates the project has no repository URL.
	ErrNoRepoURL = errors.New("project has no repository URL")
)
