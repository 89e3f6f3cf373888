package respace

import (
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/jpl-au/docsite/internal/glob"
)

// Files resolves the set of files to format. Explicit args are returned as
// given. Otherwise root is walked and every file matching pattern is kept,
// skipping .git and every directory whose root-relative path is listed
// in ignore.
func Files(args []string, root, pattern string, ignore []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && (d.Name() == ".git" || slices.Contains(ignore, rel)) {
				return filepath.SkipDir
			}
			return nil
		}
		ok, err := glob.Match(pattern, rel)
		if err != nil {
			return err
		}
		if ok {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
