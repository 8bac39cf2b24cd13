package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const maxCollisionProbes = 10000

// ResolvePath returns target unchanged when nothing exists there. Otherwise
// it probes base_1.ext, base_2.ext, ... in increasing order and returns the
// first free path. Probing is deterministic and never skips an integer.
func ResolvePath(target string) (string, error) {
	exists, err := statExists(target)
	if err != nil {
		return "", err
	}
	if !exists {
		return target, nil
	}

	dir := filepath.Dir(target)
	ext := filepath.Ext(target)
	base := strings.TrimSuffix(filepath.Base(target), ext)

	for i := 1; i <= maxCollisionProbes; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, i, ext))
		exists, err := statExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("exhausted duplicate-name slots for %s", target)
}

func statExists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
