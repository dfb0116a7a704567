package split

import (
	"fmt"
	"path/filepath"
	"strings"
)

// resolveTarget maps a declared display path from a bundle marker onto a
// location under outputDir. Declared paths are POSIX; an absolute one has
// its root marker stripped and is retried as relative. Anything still
// absolute under host conventions (drive letters, UNC) is rejected, as is
// any path whose ".." segments escape outputDir after normalization.
// ".." segments that stay inside the root are fine: "safe/../safe.txt"
// resolves to "safe.txt".
func resolveTarget(outputDir, declared string) (string, error) {
	p := strings.TrimSpace(declared)
	if strings.HasPrefix(p, "/") {
		p = strings.TrimLeft(p, "/")
	}
	if p == "" {
		return "", fmt.Errorf("no file name in %q", declared)
	}

	native := filepath.FromSlash(p)
	if filepath.IsAbs(native) || filepath.VolumeName(native) != "" {
		return "", fmt.Errorf("absolute path")
	}

	base, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}
	full := filepath.Clean(filepath.Join(base, native))
	if full == base {
		return "", fmt.Errorf("resolves to the output directory itself")
	}
	if !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", fmt.Errorf("escapes the output directory")
	}
	return full, nil
}
