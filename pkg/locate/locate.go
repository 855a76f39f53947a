// Package locate resolves the root source file the patcher operates on.
package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Zaynmiraj/nim-react-toastify/pkg/stack"
)

// ErrNoRootFile is returned when none of the candidate paths exist.
var ErrNoRootFile = errors.New("locate: no root file found")

// RootFile returns the first existing candidate from the definition's
// priority-ordered list, as a path relative to dir. An explicit override
// takes precedence over the candidate list; an override that does not
// exist is an error rather than a fallthrough.
func RootFile(dir string, def *stack.Definition, override string) (string, error) {
	if override != "" {
		if !isFile(filepath.Join(dir, filepath.FromSlash(override))) {
			return "", fmt.Errorf("%w: configured root %q does not exist", ErrNoRootFile, override)
		}
		return filepath.FromSlash(override), nil
	}

	for _, candidate := range def.RootCandidates {
		if isFile(filepath.Join(dir, filepath.FromSlash(candidate))) {
			return filepath.FromSlash(candidate), nil
		}
	}
	return "", fmt.Errorf("%w: tried %d candidates for stack %s", ErrNoRootFile, len(def.RootCandidates), def.Stack)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
