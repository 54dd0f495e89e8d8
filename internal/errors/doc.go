// Package errors provides typed error values for the pm application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Settings errors: The settings document is missing, corrupt or could
//     not be written (ErrConfigMissing, ErrConfigCorrupt, ErrPersistFailure)
//   - Registry errors: Lookups and mutations of projects and groups
//     (ErrGroupNotFound, ErrProjectNotFound, ErrAlreadyExists, ErrInvalidName)
//   - Interaction errors: The user aborted a prompt (ErrCancelled, ErrInterrupted)
//   - Collaborator errors: Remote hosting, editor and browser problems
//     (ErrRemoteCreate, ErrEditorNotSet, ErrNoRepoURL)
//
// # Usage
//
// Return errors from internal packages:
//
//	if _, ok := doc.Projects[group]; !ok {
//	    return nil, errors.ErrGroupNotFound
//	}
//
// Handle errors in the CLI layer:
//
//	project, err := reg.Find(name, group)
//	if errors.Is(err, perrors.ErrProjectNotFound) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %s in group %s", errors.ErrProjectNotFound, name, group)
//
// ErrInterrupted wraps ErrCancelled, so errors.Is(err, ErrCancelled) is true
// for both a deliberate quit and an interrupt. Check ErrInterrupted first when
// the two must be told apart.
package errors
