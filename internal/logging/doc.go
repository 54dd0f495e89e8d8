// Package logger provides leveled logging for pm CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors from
// fatih/color.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only user-facing warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Shown with --verbose or --debug
//	Logger.WarnfUser()      // Always shown (user-facing warnings)
//	Logger.Errorf()         // Always shown
//	Logger.ErrorfAndReturn() // Shown with --debug, returns the formatted error
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Found %d projects", count)
//
// The root command creates the logger in its PersistentPreRun and passes it
// to workflows.
package logger
