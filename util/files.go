package util

import (
	"errors"
	"os"
)

// FileExists reports whether path names an existing file. A missing file is not
// an error; any other stat failure is.
func FileExists(path string) (exists bool, _ error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}
