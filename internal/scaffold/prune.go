package scaffold

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/qupath/extension-scaffold/internal/filesystem"
)

// maxCleanupPasses bounds the empty-directory sweep so a cleanup defect can
// never loop forever.
const maxCleanupPasses = 10

// pruner removes the sources of languages the caller did not select, then
// sweeps out directories left empty.
type pruner struct {
	fs       filesystem.FileSystem
	log      *log.Logger
	language Language
}

// groovyClassified reports whether a file belongs to the Groovy subtree.
func groovyClassified(name string) bool {
	return strings.HasSuffix(name, groovySourceSuffix) || strings.Contains(name, markerGroovy)
}

// javaClassified reports whether a file belongs to the Java subtree.
func javaClassified(name string) bool {
	if strings.HasSuffix(name, javaSourceSuffix) {
		return true
	}
	return strings.Contains(name, markerJavaDemo) && !strings.Contains(name, markerGroovy)
}

func (p *pruner) doomed(name string) bool {
	if !p.language.IncludesGroovy() && groovyClassified(name) {
		return true
	}
	if !p.language.IncludesJava() && javaClassified(name) {
		return true
	}
	return false
}

// prune deletes non-selected language files under root. Deletions are
// buffered during the walk and executed afterwards; failures are warnings,
// not errors.
func (p *pruner) prune(root string) (int, []string, error) {
	if p.language == LanguageBoth {
		return 0, nil, nil
	}

	var doomed []string
	err := p.fs.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if p.doomed(entry.Name()) {
			doomed = append(doomed, path)
		}
		return nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to scan for prunable files: %w", err)
	}

	deleted := 0
	var warnings []string
	for _, path := range doomed {
		if err := withRetry(func() error { return p.fs.Remove(path) }); err != nil {
			warning := fmt.Sprintf("could not delete %s: %v", path, err)
			p.log.Warn("deletion failed", "path", path, "err", err)
			warnings = append(warnings, warning)
			continue
		}
		deleted++
	}

	return deleted, warnings, nil
}

// removeEmptyDirs repeatedly deletes empty directories under root until no
// pass removes anything, capped at maxCleanupPasses.
func (p *pruner) removeEmptyDirs(root string) (int, error) {
	removed := 0

	for pass := 0; pass < maxCleanupPasses; pass++ {
		var dirs []string
		err := p.fs.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() && path != root {
				dirs = append(dirs, path)
			}
			return nil
		})
		if err != nil {
			return removed, fmt.Errorf("failed to scan for empty directories: %w", err)
		}

		// Deepest first, so an emptied parent is caught in the same pass.
		sort.Slice(dirs, func(i, j int) bool {
			return strings.Count(dirs[i], string(filepath.Separator)) > strings.Count(dirs[j], string(filepath.Separator))
		})

		removedThisPass := 0
		for _, dir := range dirs {
			entries, err := p.fs.ReadDir(dir)
			if err != nil || len(entries) > 0 {
				continue
			}
			if err := p.fs.Remove(dir); err != nil {
				p.log.Warn("could not remove empty directory", "path", dir, "err", err)
				continue
			}
			removedThisPass++
		}

		removed += removedThisPass
		if removedThisPass == 0 {
			break
		}
	}

	return removed, nil
}

// withRetry retries a delete or move a few times with backoff. Freshly closed
// handles can transiently block these operations on some platforms.
func withRetry(op func() error) error {
	const attempts = 3

	var err error
	for i := 0; i < attempts; i++ {
		if err = op(); err == nil {
			return nil
		}
		if i < attempts-1 {
			time.Sleep(time.Duration(i+1) * 50 * time.Millisecond)
		}
	}
	return err
}
