package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jaimeyzzz/qiwurun/internal/fsops"
	"github.com/jaimeyzzz/qiwurun/internal/paths"
	"github.com/spf13/afero"
)

// ConfigEntry describes one discovered experiment configuration file.
type ConfigEntry struct {
	// Name is the file stem shown in menus.
	Name string `json:"name"`
	// RelPath is the path relative to the resources directory. It is the
	// argument passed to the simulation executable.
	RelPath string `json:"path"`
	// AbsPath is the absolute file location.
	AbsPath string `json:"full_path"`
}

// configExtensions are the file extensions recognized as experiment configs.
var configExtensions = []string{".yaml", ".yml"}

// DiscoverConfigs recursively scans <resourcesDir>/exps for YAML configuration
// files. Entries are sorted case-sensitively by relative path, so menu
// numbering is stable across runs. A missing exps directory returns
// ErrResourcesDirMissing; an existing directory with no matches returns an
// empty slice and no error.
func DiscoverConfigs(fsys afero.Fs, resourcesDir string) ([]ConfigEntry, error) {
	expsDir := filepath.Join(resourcesDir, paths.ExperimentsSubdir)
	if !fsops.IsDir(fsys, expsDir) {
		return nil, fmt.Errorf("%w: %s", ErrResourcesDirMissing, expsDir)
	}

	entries := []ConfigEntry{}
	err := afero.Walk(fsys, expsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !hasConfigExtension(path) {
			return nil
		}

		rel, err := filepath.Rel(resourcesDir, path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", path, err)
		}
		abs := path
		if a, err := filepath.Abs(path); err == nil {
			abs = a
		}

		base := filepath.Base(path)
		entries = append(entries, ConfigEntry{
			Name:    strings.TrimSuffix(base, filepath.Ext(base)),
			RelPath: rel,
			AbsPath: abs,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", expsDir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RelPath < entries[j].RelPath
	})

	return entries, nil
}

func hasConfigExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range configExtensions {
		if ext == want {
			return true
		}
	}
	return false
}
