package scaffold

import (
	"bytes"
	"fmt"
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/qupath/extension-scaffold/internal/filesystem"
)

// copier duplicates the template tree, dropping build artifacts, VCS and IDE
// state, the scaffold's own files, and anything the template gitignores.
type copier struct {
	fs            filesystem.FileSystem
	templateRoot  string
	ignore        gitignore.GitIgnore
	extraExcludes []string
}

func newCopier(fs filesystem.FileSystem, templateRoot string, extraExcludes []string) (*copier, error) {
	ignore, err := loadGitIgnore(fs, templateRoot)
	if err != nil {
		return nil, err
	}

	return &copier{
		fs:            fs,
		templateRoot:  templateRoot,
		ignore:        ignore,
		extraExcludes: extraExcludes,
	}, nil
}

func loadGitIgnore(fs filesystem.FileSystem, root string) (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(root, ".gitignore")
	if !fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), root, nil), nil
}

// copyTree duplicates the template root into dst.
func (c *copier) copyTree(dst string) error {
	return c.copyDir(c.templateRoot, dst)
}

func (c *copier) copyDir(src, dst string) error {
	entries, err := c.fs.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", src, err)
	}

	if err := c.fs.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dst, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		srcPath := filepath.Join(src, name)

		if copyExcluded(name, entry.IsDir()) {
			continue
		}

		rel, err := filepath.Rel(c.templateRoot, srcPath)
		if err != nil {
			return err
		}
		if c.excluded(filepath.ToSlash(rel), entry.IsDir()) {
			continue
		}

		dstPath := filepath.Join(dst, name)
		if entry.IsDir() {
			if err := c.copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		if err := c.copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

func (c *copier) copyFile(src, dst string) error {
	data, err := c.fs.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	info, err := c.fs.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	// Preserve the source mode so the Gradle launcher stays executable.
	if err := c.fs.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	return nil
}

func (c *copier) excluded(rel string, isDir bool) bool {
	if c.ignore != nil {
		if match := c.ignore.Relative(rel, isDir); match != nil && match.Ignore() {
			return true
		}
	}

	for _, pattern := range c.extraExcludes {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(rel)); ok {
			return true
		}
		if rel == pattern {
			return true
		}
	}

	return false
}
