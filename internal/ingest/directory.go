package ingest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
)

// FileResult records the outcome of collecting one file.
type FileResult struct {
	Path string
	Err  string
}

// DirStats aggregates a directory walk.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Failed  uint32
}

// CollectDirectory walks root, filters by includeExts (or the default
// json/pdf set), skips hidden entries if requested, and returns the
// matching file paths in walk order plus aggregate stats. Unreadable
// entries are recorded, not fatal.
func CollectDirectory(root string, includeExts []string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		exts = constants.AllowedExtensions
	} else {
		for _, e := range includeExts {
			if e = constants.NormalizeExt(strings.TrimSpace(e)); e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && IsHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := exts[constants.NormalizeExt(filepath.Ext(path))]; !ok {
			return nil
		}
		stats.Matched++
		results = append(results, FileResult{Path: path})
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	return results, stats, nil
}
