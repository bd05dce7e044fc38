package launcher

import (
	"fmt"

	"github.com/jaimeyzzz/qiwurun/internal/fsops"
	"github.com/spf13/afero"
)

// ResolveExecutable checks the candidate paths in order and returns the first
// one that exists as a regular file. Returns ErrExecutableNotFound if none do.
func ResolveExecutable(fsys afero.Fs, candidates []string) (string, error) {
	for _, candidate := range candidates {
		if fsops.IsFile(fsys, candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w (tried %d build locations)", ErrExecutableNotFound, len(candidates))
}
