package util

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetProjectRootDir returns the path to the project root directory,
// either from the PROJECT_ROOT_DIR environment variable or relative to this source file.
func GetProjectRootDir() string {
	if val, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
		return val
	}

	_, file, _, _ := runtime.Caller(0) //nolint:dogsled

	return filepath.Join(filepath.Dir(file), "..", "..")
}
