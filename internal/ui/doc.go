// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content by type (commands, paths, project names, status
// markers). When colors are available, content is colorized. When NO_COLOR
// is set or the terminal doesn't support colors, text-based decorations
// (backticks, quotes) are used instead.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("pm setup")            // Commands and code
//	ui.Path.Sprint("~/code/work/site")    // File paths
//	ui.Success.Sprint("✓")                // Success indicators
//	ui.Error.Sprint("✗")                  // Error indicators
//	ui.Warning.Sprint("⚠")                // Warnings
//	ui.Info.Sprint("→")                   // Informational hints
//	ui.Highlight.Sprint("site")           // Project and group names
//	ui.Muted.Sprint("no repository")      // De-emphasized text
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
//
// When colors are disabled, formatters apply text decorations:
//   - Code: `backticks`
//   - Highlight: 'single quotes'
//   - Muted: (parentheses)
//   - Others: no decoration (self-evident from context)
package ui
