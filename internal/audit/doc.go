// Package audit records the history of registry mutations.
//
// Every successful create, rename, regroup, path change, repository change,
// removal, import and settings change is appended to a JSON Lines file in
// the pm home directory:
//
//	<home>/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - The local user running pm
//   - Operation name
//   - Operation-specific details (project, group, new name, directory, etc.)
//
// # Usage
//
//	trail := audit.NewTrail(home)
//	trail.Log(audit.Entry{Operation: "create", Project: "site", Group: "work"})
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error. A registry change is never
// undone because its history entry could not be written.
//
// # Reading Logs
//
// Use ReadEntries() to parse the log for display. Malformed entries are
// silently skipped to handle partial writes.
package audit
