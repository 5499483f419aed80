// Package assets loads files the renderer needs at startup.
package assets

import (
	"os"
)

// FileContents returns the full contents of the file at path. The boolean is
// false when the file cannot be opened or read; the caller decides what a
// missing file means.
func FileContents(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}
