// Package savedir finds the Craftomation101 save files of the current user.
package savedir

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	GameFolderName = "Craftomation101"
)

// DefaultDir returns the game's save folder, which is %AppData%\Craftomation101
// on Windows.
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "DefaultDir error")
	}
	return filepath.Join(configDir, GameFolderName), nil
}

// List returns the names of the extensionless regular files in dir, sorted.
// A missing directory is reported as having no save files.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, `List error reading "%s"`, dir)
	}

	saveEntries := lo.Filter(
		entries,
		func(entry os.DirEntry, _ int) bool {
			if filepath.Ext(entry.Name()) != "" {
				return false
			}
			// Stat follows symlinks; broken links are skipped
			info, err := os.Stat(filepath.Join(dir, entry.Name()))
			return err == nil && info.Mode().IsRegular()
		},
	)
	names := lo.Map(
		saveEntries,
		func(entry os.DirEntry, _ int) string {
			return entry.Name()
		},
	)
	sort.Strings(names)
	return names, nil
}

// Filter keeps the names containing term, ignoring case.
func Filter(names []string, term string) []string {
	term = strings.ToLower(term)
	return lo.Filter(
		names,
		func(name string, _ int) bool {
			return strings.Contains(strings.ToLower(name), term)
		},
	)
}

// Resolve turns a name given by the user into a path. Absolute paths and
// paths that exist relative to the working directory are kept as they are.
func Resolve(dir string, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(dir, name)
}
