package audit

import (
	"encoding/json"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LogFileName is the name of the audit log inside the pm home directory.
const LogFileName = "audit.jsonl"

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`   // Unique entry identifier.
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // Local account running pm.
	Operation string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	Project  string `json:"project,omitempty"`
	Group    string `json:"group,omitempty"`
	NewName  string `json:"new_name,omitempty"`  // For rename.
	NewGroup string `json:"new_group,omitempty"` // For regroup.
	Dir      string `json:"dir,omitempty"`       // For create/set-path.
	RepoURL  string `json:"repo_url,omitempty"`  // For create/set-repo-url.
	Key      string `json:"key,omitempty"`       // For config set.
	Count    int    `json:"count,omitempty"`     // For import.
}

// Trail appends entries to one audit log.
type Trail struct {
	path string
}

// NewTrail returns a Trail writing to the audit log inside home.
func NewTrail(home string) *Trail {
	return &Trail{path: filepath.Join(home, LogFileName)}
}

// Path returns the path to the audit log file.
func (t *Trail) Path() string {
	return t.path
}

// Log appends an entry to the audit log.
// If logging fails, the error is swallowed.
func (t *Trail) Log(entry Entry) {
	if t == nil {
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.User == "" {
		entry.User = currentUser()
	}

	if err := os.MkdirAll(filepath.Dir(t.path), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func (t *Trail) ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(t.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func currentUser() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}
