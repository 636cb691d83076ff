package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Suffixes appended to the base name of generated manifests.
const (
	SealedSuffix   = "-sealed"
	UnsealedSuffix = "-unsealed"
)

// DerivedPath returns a path next to source with suffix inserted before the
// extension, so "dir/secret.yaml" becomes "dir/secret-sealed.yaml".
func DerivedPath(source, suffix string) string {
	dir := filepath.Dir(source)
	ext := filepath.Ext(source)
	base := strings.TrimSuffix(filepath.Base(source), ext)
	return filepath.Join(dir, base+suffix+ext)
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) || err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
