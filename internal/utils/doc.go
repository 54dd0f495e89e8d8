// Package utils provides shared utility functions for the pm application.
//
// Functions are organized into logical groups:
//
// # Filesystem Utilities
//
//   - ExpandHome: expands a leading ~ to the user's home directory
//   - PathExists, IsDir: existence checks
//   - ListSubdirs: lists visible child directories, used by setup's scan
//
// # Name Utilities
//
//   - IsValidName / ValidateName: the naming policy shared by projects and groups
//   - FormatList: renders names or paths as an indented bullet list
//
// # System Utilities
//
//   - EditorCommand: builds the shell invocation for the configured editor
//   - OpenURL: opens a URL in the default browser
//
// # Terminal Utilities
//
//   - IsTerminal: checks if stdin is a terminal
package utils
