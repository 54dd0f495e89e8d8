// Package configs manages the pm settings document.
//
// All state lives in a single TOML document, pm-settings.toml, inside the pm
// home directory (os.UserConfigDir()/pm unless overridden):
//
//	projects_folder = "/home/me/code"
//	editor_command  = "code ."
//	token           = ""
//
//	[projects.work.site]
//	dir      = "/home/me/code/work/site"
//	repo_url = "https://github.com/me/site"
//
// # Store
//
// Store is the only path to disk. Load decodes and validates the whole
// document; Save rewrites it in full through a temporary file and a rename,
// so a failed write never leaves a half-written document behind. There is no
// partial update: callers mutate a copy in memory and hand the whole document
// to Save.
//
// Load reports ErrConfigMissing when the document does not exist and
// ErrConfigCorrupt when it cannot be decoded or fails validation. It never
// repairs a document.
//
// # Keys
//
// The top-level scalar settings are addressable by key for the config
// subcommands: projects_folder, editor_command and token. Unknown keys are
// rejected with ErrInvalidKey.
package configs
