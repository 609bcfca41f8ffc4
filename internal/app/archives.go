package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcpacktools/packtable/internal/ctxlog"
	"github.com/mcpacktools/packtable/internal/fsutil"
)

// resolveArchives expands each input path into resourcepack archive paths.
// If a path names a .zip file, it is taken as-is. If it names a directory,
// every .zip file directly inside it is taken, in lexical order. Duplicates
// keep their first occurrence.
func resolveArchives(ctx context.Context, inputs []string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	var archives []string
	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		archives = append(archives, path)
	}

	for _, input := range inputs {
		logger.Debug("Resolving input path.", "path", input)
		info, err := os.Stat(input)
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input path not found: %s", input)
		}
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", input, err)
		}

		if info.IsDir() {
			logger.Debug("Path is a directory, scanning for archives.", "directory", input)
			found, err := fsutil.ListFilesByExtension(input, ".zip")
			if err != nil {
				return nil, fmt.Errorf("error scanning directory %s: %w", input, err)
			}
			for _, f := range found {
				add(f)
			}
			continue
		}

		logger.Debug("Path is a single file.", "file", input)
		if filepath.Ext(input) != ".zip" {
			return nil, fmt.Errorf("specified file is not a .zip archive: %s", input)
		}
		add(input)
	}

	return archives, nil
}
