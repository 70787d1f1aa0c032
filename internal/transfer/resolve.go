package transfer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDest normalizes a (source, destination) pair into the concrete
// destination path. If dest is an existing directory, or does not exist but
// is spelled with a trailing separator, the source's base name is appended.
// Pure: no filesystem mutation.
func ResolveDest(src, dest string, force bool) (string, error) {
	srcInfo, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", src, ErrSourceNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", src, err)
	}

	resolved := dest
	destInfo, destErr := os.Stat(dest)
	destIsDir := destErr == nil && destInfo.IsDir()
	if destIsDir || (errors.Is(destErr, fs.ErrNotExist) && hasTrailingSeparator(dest)) {
		name := filepath.Base(filepath.Clean(src))
		if name == "." || name == ".." || name == string(filepath.Separator) {
			return "", fmt.Errorf("%s: %w", src, ErrCannotDeriveName)
		}
		resolved = filepath.Join(dest, name)
	}

	if info, err := os.Stat(resolved); err == nil {
		if info.IsDir() != srcInfo.IsDir() {
			return "", fmt.Errorf("%s: %w", resolved, ErrDestinationKindMismatch)
		}
		if !info.IsDir() && !force {
			return "", fmt.Errorf("%s: %w", resolved, ErrDestinationExists)
		}
	}

	return resolved, nil
}

func hasTrailingSeparator(path string) bool {
	return strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/")
}
