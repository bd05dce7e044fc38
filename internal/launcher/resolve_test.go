package launcher

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidatePaths() []string {
	return []string{
		"/proj/build/bin/Release/qiwu-example.exe",
		"/proj/build/bin/RelWithDebInfo/qiwu-example.exe",
		"/proj/build/bin/qiwu-example",
		"/proj/build/qiwu-example",
	}
}

func writeFile(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte("bin"), 0755))
}

func TestResolveExecutable_FirstCandidateWins(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	candidates := candidatePaths()
	writeFile(t, fsys, candidates[0])
	writeFile(t, fsys, candidates[2])

	resolved, err := ResolveExecutable(fsys, candidates)
	require.NoError(t, err)
	assert.Equal(t, candidates[0], resolved)
}

func TestResolveExecutable_PriorityOrder(t *testing.T) {
	t.Parallel()

	candidates := candidatePaths()

	// For every candidate, when it is the highest existing one it must win
	// regardless of which lower-priority ones also exist.
	for i := range candidates {
		fsys := afero.NewMemMapFs()
		for j := i; j < len(candidates); j++ {
			writeFile(t, fsys, candidates[j])
		}

		resolved, err := ResolveExecutable(fsys, candidates)
		require.NoError(t, err)
		assert.Equal(t, candidates[i], resolved)
	}
}

func TestResolveExecutable_NoneExist(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()

	resolved, err := ResolveExecutable(fsys, candidatePaths())
	assert.ErrorIs(t, err, ErrExecutableNotFound)
	assert.Empty(t, resolved)
}

func TestResolveExecutable_DirectoryDoesNotCount(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	candidates := candidatePaths()
	require.NoError(t, fsys.MkdirAll(candidates[0], 0755))
	writeFile(t, fsys, candidates[3])

	resolved, err := ResolveExecutable(fsys, candidates)
	require.NoError(t, err)
	assert.Equal(t, candidates[3], resolved)
}
