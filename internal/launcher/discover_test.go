package launcher

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resourcesDir = "/proj/resources"

func writeConfig(t *testing.T, fsys afero.Fs, rel string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(resourcesDir, rel), []byte("exp: {}\n"), 0644))
}

func TestDiscoverConfigs_MissingDir(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()

	entries, err := DiscoverConfigs(fsys, resourcesDir)
	assert.ErrorIs(t, err, ErrResourcesDirMissing)
	assert.Nil(t, entries)
}

func TestDiscoverConfigs_EmptyDirIsNotAnError(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(filepath.Join(resourcesDir, "exps"), 0755))

	entries, err := DiscoverConfigs(fsys, resourcesDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDiscoverConfigs_FiltersAndSorts(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "exps/b.yaml")
	writeConfig(t, fsys, "exps/a.yml")
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(resourcesDir, "exps", "c.txt"), []byte("nope"), 0644))

	entries, err := DiscoverConfigs(fsys, resourcesDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, filepath.Join("exps", "a.yml"), entries[0].RelPath)
	assert.Equal(t, "b", entries[1].Name)
	assert.Equal(t, filepath.Join("exps", "b.yaml"), entries[1].RelPath)
}

func TestDiscoverConfigs_Recursive(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "exps/basic.yaml")
	writeConfig(t, fsys, "exps/cloth/drape.yaml")
	writeConfig(t, fsys, "exps/fluids/dam_break.yml")

	entries, err := DiscoverConfigs(fsys, resourcesDir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	relPaths := []string{entries[0].RelPath, entries[1].RelPath, entries[2].RelPath}
	assert.Equal(t, []string{
		filepath.Join("exps", "basic.yaml"),
		filepath.Join("exps", "cloth", "drape.yaml"),
		filepath.Join("exps", "fluids", "dam_break.yml"),
	}, relPaths)
}

func TestDiscoverConfigs_NameIsFileStem(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "exps/cloth/drape_test.yaml")

	entries, err := DiscoverConfigs(fsys, resourcesDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "drape_test", entries[0].Name)
}

func TestDiscoverConfigs_ConfigsOutsideExpsIgnored(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "exps/keep.yaml")
	writeConfig(t, fsys, "other/skip.yaml")

	entries, err := DiscoverConfigs(fsys, resourcesDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep", entries[0].Name)
}
