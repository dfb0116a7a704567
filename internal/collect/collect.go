// Package collect enumerates the source files that belong in a bundle and
// computes the display paths recorded in its markers.
package collect

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/scbundle/scb/internal/rules"
)

// DefaultExtensions is the extension set used when none is configured.
var DefaultExtensions = []string{".py", ".rs", ".c", ".h", ".cpp", ".hpp", ".css"}

// ExtensionSet holds lower-cased, dot-prefixed extensions.
type ExtensionSet map[string]bool

// NewExtensionSet normalizes exts into a set: entries are trimmed,
// lower-cased, and given a leading dot if missing. Empty entries are dropped.
func NewExtensionSet(exts []string) ExtensionSet {
	set := make(ExtensionSet, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	return set
}

// Contains reports whether ext (in any case) is in the set.
func (s ExtensionSet) Contains(ext string) bool {
	return s[strings.ToLower(ext)]
}

// Files walks root and returns the absolute paths of every file whose
// extension is in exts. Path segments below the root that start with "."
// are skipped, as is any file excluded by an active rule. The result is
// unordered; callers sort by display path.
func Files(root string, exts ExtensionSet, rs []rules.Rule) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	var files []string
	err = filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != absRoot && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if !exts.Contains(filepath.Ext(name)) {
			return nil
		}
		rel, err := filepath.Rel(absRoot, p)
		if err != nil {
			return err
		}
		if rules.Excluded(rs, filepath.ToSlash(rel)) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// DisplayPath computes the "./"-prefixed, slash-separated path recorded in
// bundle markers for file under root. The root's own directory name is
// preserved as the leading component, so a later split re-creates the tree
// under its original name. A root with no parent (the filesystem root)
// falls back to its own name, or to the bare relative path if it has none.
func DisplayPath(root, file string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	parent := filepath.Dir(absRoot)
	if parent == absRoot {
		rel, err := filepath.Rel(absRoot, file)
		if err != nil {
			return "", err
		}
		name := filepath.Base(absRoot)
		if name == string(filepath.Separator) || name == "" || name == "." {
			return "./" + filepath.ToSlash(rel), nil
		}
		return "./" + name + "/" + filepath.ToSlash(rel), nil
	}
	rel, err := filepath.Rel(parent, file)
	if err != nil {
		return "", err
	}
	return "./" + filepath.ToSlash(rel), nil
}
