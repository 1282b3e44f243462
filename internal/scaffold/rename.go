package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qupath/extension-scaffold/internal/filesystem"
	"github.com/qupath/extension-scaffold/internal/names"
)

// renamer moves files and directories whose names embed template markers.
type renamer struct {
	fs  filesystem.FileSystem
	set *names.Set
}

// newNodeName renames a single path element. First match wins.
func newNodeName(name string, set *names.Set) string {
	switch {
	case strings.Contains(name, markerJavaDemo) && !strings.Contains(name, markerGroovy):
		return strings.ReplaceAll(name, markerJavaDemo, set.Identifier+"Extension")
	case strings.Contains(name, markerGroovyDemo):
		return strings.ReplaceAll(name, markerGroovyDemo, set.Identifier+"GroovyExtension")
	case strings.Contains(name, markerCapitalized):
		return strings.ReplaceAll(name, markerCapitalized, set.Identifier)
	case strings.Contains(name, markerLowercase):
		return strings.ReplaceAll(name, markerLowercase, set.LowerFlat)
	default:
		return name
	}
}

// relocateSegments replaces every directory segment exactly named after the
// lowercase marker, so package paths move to the new namespace.
func relocateSegments(relDir string, set *names.Set) string {
	if relDir == "." || relDir == "" {
		return relDir
	}
	segments := strings.Split(relDir, "/")
	for i, segment := range segments {
		if segment == markerLowercase {
			segments[i] = set.LowerFlat
		}
	}
	return strings.Join(segments, "/")
}

// renameFile moves one file to its marker-free location, creating missing
// intermediate directories. Returns whether the file moved.
func (rn *renamer) renameFile(root, path string) (bool, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false, err
	}
	rel = filepath.ToSlash(rel)

	relDir := "."
	name := rel
	if idx := strings.LastIndex(rel, "/"); idx >= 0 {
		relDir = rel[:idx]
		name = rel[idx+1:]
	}

	newRelDir := relocateSegments(relDir, rn.set)
	newName := newNodeName(name, rn.set)
	if newRelDir == relDir && newName == name {
		return false, nil
	}

	destDir := filepath.Join(root, filepath.FromSlash(newRelDir))
	if err := rn.fs.MkdirAll(destDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", destDir, err)
	}

	dest := filepath.Join(destDir, newName)
	if err := withRetry(func() error { return rn.fs.Rename(path, dest) }); err != nil {
		return false, fmt.Errorf("failed to move %s to %s: %w", path, dest, err)
	}

	return true, nil
}

// renameDir renames one directory in place. When the destination already
// exists (its files were relocated ahead of it), any stragglers are moved
// over and the emptied source is dropped.
func (rn *renamer) renameDir(path string) (bool, error) {
	base := filepath.Base(path)
	newName := newNodeName(base, rn.set)
	if newName == base {
		return false, nil
	}

	dest := filepath.Join(filepath.Dir(path), newName)
	if !rn.fs.Exists(dest) {
		if err := withRetry(func() error { return rn.fs.Rename(path, dest) }); err != nil {
			return false, fmt.Errorf("failed to rename %s to %s: %w", path, dest, err)
		}
		return true, nil
	}

	entries, err := rn.fs.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	for _, entry := range entries {
		src := filepath.Join(path, entry.Name())
		dst := filepath.Join(dest, entry.Name())
		if rn.fs.Exists(dst) {
			// Already materialized at the destination; the emptied source
			// is swept up with the other empty directories.
			continue
		}
		if err := withRetry(func() error { return rn.fs.Rename(src, dst) }); err != nil {
			return false, fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
		}
	}
	// Best effort: anything left is an empty shell for the cleanup pass.
	_ = rn.fs.Remove(path)

	return true, nil
}
