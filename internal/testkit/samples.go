package testkit

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
)

// SamplesDir returns the repository testdata/quote directory.
func SamplesDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return filepath.Join("..", "..", "testdata", "quote")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", "quote")
}

// Samples returns the sorted paths of all *.cs samples; nil when the
// directory is missing.
func Samples() []string {
	paths, err := filepath.Glob(filepath.Join(SamplesDir(), "*.cs"))
	if err != nil {
		return nil
	}
	sort.Strings(paths)
	return paths
}

// ReadSample reads one sample.
func ReadSample(path string) ([]byte, error) {
	// #nosec G304 -- path comes from Samples
	return os.ReadFile(path)
}
