package split

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const maxRenameAttempts = 1000

// collisionTarget decides the path actually written for target. With
// overwrite on, an existing regular file is replaced in place. Anything
// else that already exists is renamed around with a numeric suffix before
// the extension: name_1.ext, name_2.ext, and so on. Running out of
// attempts fails this entry only.
func collisionTarget(target string, overwrite bool, log io.Writer) (string, error) {
	info, err := os.Lstat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return target, nil
		}
		return "", err
	}
	if overwrite && info.Mode().IsRegular() {
		return target, nil
	}

	dir := filepath.Dir(target)
	base := filepath.Base(target)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for n := 1; n <= maxRenameAttempts; n++ {
		cand := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if _, err := os.Lstat(cand); errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(log, "duplicate name: %s written as %s\n", base, filepath.Base(cand))
			return cand, nil
		}
	}
	return "", fmt.Errorf("no free name for %s after %d attempts", base, maxRenameAttempts)
}
