// Package scaffold generates a new QuPath extension project from the
// extension template: copy, substitute, rename, prune.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/qupath/extension-scaffold/internal/filesystem"
	"github.com/qupath/extension-scaffold/internal/names"
)

// ErrTargetExists is returned when the output directory is already occupied.
var ErrTargetExists = errors.New("target directory already exists")

const stagingAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Options configures one generation run.
type Options struct {
	// TemplateRoot is the template directory; the output becomes its sibling.
	TemplateRoot string
	// Names is the derived name set of the validated identifier.
	Names *names.Set
	// Language selects which source subtrees survive.
	Language Language
	// ExtraExcludes are additional copy-exclusion patterns, usually from the
	// template manifest.
	ExtraExcludes []string
}

// Result summarizes a successful run.
type Result struct {
	TargetPath       string
	FilesUpdated     int
	FilesRenamed     int
	FilesDeleted     int
	EmptyDirsRemoved int
	Warnings         []string
}

// Generator runs the scaffolding pipeline.
type Generator struct {
	fs  filesystem.FileSystem
	log *log.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(fs filesystem.FileSystem, logger *log.Logger) *Generator {
	return &Generator{fs: fs, log: logger}
}

// Run executes the full pipeline. The tree is built in a staging directory
// next to the target and renamed into place only after every stage succeeds,
// so the target path never holds a half-generated project. A failed run
// leaves the staging directory behind for inspection.
func (g *Generator) Run(opts Options) (*Result, error) {
	templateRoot := filepath.Clean(opts.TemplateRoot)
	target := filepath.Join(filepath.Dir(templateRoot), opts.Names.ArtifactID)

	if g.fs.Exists(target) {
		return nil, fmt.Errorf("%w: %s", ErrTargetExists, target)
	}

	suffix, err := gonanoid.Generate(stagingAlphabet, 8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate staging suffix: %w", err)
	}
	staging := target + ".stage-" + suffix

	copier, err := newCopier(g.fs, templateRoot, opts.ExtraExcludes)
	if err != nil {
		return nil, err
	}
	if err := copier.copyTree(staging); err != nil {
		return nil, err
	}

	result := &Result{TargetPath: target}
	if err := g.transform(staging, opts, result); err != nil {
		return nil, err
	}

	if err := withRetry(func() error { return g.fs.Rename(staging, target) }); err != nil {
		return nil, fmt.Errorf("failed to move %s into place: %w", staging, err)
	}

	g.log.Debug("generated project", "target", target)
	return result, nil
}

// transform rewrites, renames and prunes the staged tree in place.
func (g *Generator) transform(root string, opts Options, result *Result) error {
	files, dirs, err := g.collect(root)
	if err != nil {
		return err
	}

	rw := &rewriter{fs: g.fs, subs: substitutionsFor(opts.Names), language: opts.Language}
	rn := &renamer{fs: g.fs, set: opts.Names}

	// Content first, then the node's own name, one file at a time.
	for _, path := range files {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		updated, err := rw.rewriteFile(path, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		if updated {
			result.FilesUpdated++
		}

		moved, err := rn.renameFile(root, path)
		if err != nil {
			return err
		}
		if moved {
			result.FilesRenamed++
		}
	}

	// Directory renames run post-order so the file pass above never had the
	// tree shift underneath it.
	for _, dir := range dirs {
		if !g.fs.Exists(dir) {
			continue
		}
		moved, err := rn.renameDir(dir)
		if err != nil {
			return err
		}
		if moved {
			result.FilesRenamed++
		}
	}

	pr := &pruner{fs: g.fs, log: g.log, language: opts.Language}

	deleted, warnings, err := pr.prune(root)
	if err != nil {
		return err
	}
	result.FilesDeleted = deleted
	result.Warnings = warnings

	emptied, err := pr.removeEmptyDirs(root)
	if err != nil {
		return err
	}
	result.EmptyDirsRemoved = emptied

	return nil
}

// collect gathers every file (pre-order) and directory (deepest first) under
// root before any mutation happens.
func (g *Generator) collect(root string) (files, dirs []string, err error) {
	err = g.fs.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}
		if entry.IsDir() {
			dirs = append(dirs, path)
		} else {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(files)
	sort.Slice(dirs, func(i, j int) bool {
		di := strings.Count(dirs[i], string(filepath.Separator))
		dj := strings.Count(dirs[j], string(filepath.Separator))
		if di != dj {
			return di > dj
		}
		return dirs[i] < dirs[j]
	})

	return files, dirs, nil
}
