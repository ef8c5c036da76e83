package epaper

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func isImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// Files returns the image files under root in lexicographic order. A root
// that is itself an image file yields just that file; any other regular
// file yields nothing. Directories are listed at depth 1 unless recursive
// is set. Hidden files and directories are skipped.
func Files(root string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("epaper: invalid path %q: %w", root, err)
	}

	switch {
	case info.Mode().IsRegular():
		if isImage(root) {
			return []string{root}, nil
		}
		return nil, nil
	case info.IsDir():
	default:
		return nil, fmt.Errorf("epaper: %q is neither a file nor a directory", root)
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Ignore hidden files and directories
		if path != root && info.Name()[0] == '.' {
			if info.Mode().IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode().IsDir() {
			if !recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode().IsRegular() && isImage(path) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	return files, nil
}
