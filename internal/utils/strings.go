package utils

import (
	"fmt"
	"strings"

	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/ui"
)

// FormatList renders items as an indented bullet list, one per line, each
// styled with f. An empty slice renders as "".
func FormatList(items []string, f ui.Formatter) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "    - " + f.Sprint(item)
	}
	return strings.Join(lines, "\n") + "\n"
}

// IsValidName checks a project or group name. Names must be non-empty, carry
// no leading or trailing whitespace, contain no path separators and must not
// be "." or "..". Interior spaces are allowed.
func IsValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.TrimSpace(name) != name {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// ValidateName returns ErrInvalidName wrapped with the offending value.
func ValidateName(kind, name string) error {
	if !IsValidName(name) {
		return fmt.Errorf("%w: %s %q", perrors.ErrInvalidName, kind, name)
	}
	return nil
}
