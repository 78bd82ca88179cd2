// Package path locates repo-level assets (.env, migrations) from whatever
// directory the process or a test binary happens to run in.
package path

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot walks from startDir toward the filesystem root and returns the
// first directory containing targetName. isDir selects whether the target
// must be a directory or a file.
func FindRoot(startDir, targetName string, isDir bool) (string, error) {
	dir := startDir

	for {
		candidate := filepath.Join(dir, targetName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() == isDir {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find %s starting from %s", targetName, startDir)
		}
		dir = parent
	}
}
