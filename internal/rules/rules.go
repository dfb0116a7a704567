// Package rules implements the glob exclusion rules shared by merge-time
// collection and split-time restoration.
package rules

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Rule excludes matching files when active.
type Rule struct {
	Pattern string
	Active  bool
}

// Validate reports whether the rule's pattern is a usable glob.
func (r Rule) Validate() error {
	if strings.TrimSpace(r.Pattern) == "" {
		return fmt.Errorf("empty pattern")
	}
	if !doublestar.ValidatePattern(r.Pattern) {
		return fmt.Errorf("invalid glob pattern %q", r.Pattern)
	}
	return nil
}

// Excluded reports whether the file at relPath (slash-separated, relative)
// is excluded by any active rule. A rule matches if its pattern matches
// the file name or any individual path segment. Callers pass different
// roots: merge passes paths relative to the source directory, so its own
// name is never a segment, while split passes the declared bundle path,
// whose first segment is the bundled directory's name.
func Excluded(rs []Rule, relPath string) bool {
	if len(rs) == 0 {
		return false
	}
	segments := strings.Split(strings.Trim(relPath, "/"), "/")
	for _, r := range rs {
		if !r.Active {
			continue
		}
		for _, seg := range segments {
			if ok, err := doublestar.Match(r.Pattern, seg); err == nil && ok {
				return true
			}
		}
	}
	return false
}
