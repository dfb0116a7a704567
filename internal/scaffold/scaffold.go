// Package scaffold writes a starter scb.yaml.
package scaffold

import (
	"fmt"
	"os"
)

const defaultConfig = `# scb configuration. Run 'scb docs config' for the full reference.

# File extensions included in a merge.
extensions:
  - .py
  - .rs
  - .c
  - .h
  - .cpp
  - .hpp
  - .css

# Glob rules excluding files from both merge and split.
rules:
  - pattern: "*_test.py"
    active: false

# Replace existing files during split instead of renaming around them.
overwrite: false
`

// Run writes the starter config to path. An existing file is left alone
// unless force is set.
func Run(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to replace it)", path)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
