package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/qupath/extension-scaffold/internal/template"
)

// Directories never copied into the generated project: build output, the
// local Gradle cache, version control metadata and IDE state.
var excludedDirNames = map[string]bool{
	"build":   true,
	".gradle": true,
	".git":    true,
	".idea":   true,
	".vscode": true,
}

// Extensions treated as binary and never rewritten.
var binaryExtensions = map[string]bool{
	".png":   true,
	".jpg":   true,
	".jpeg":  true,
	".gif":   true,
	".ico":   true,
	".jar":   true,
	".class": true,
	".zip":   true,
}

// copyExcluded reports whether an entry is dropped during the tree copy.
func copyExcluded(name string, isDir bool) bool {
	if isDir {
		return excludedDirNames[name]
	}
	if strings.HasSuffix(name, ".iml") {
		return true
	}
	return name == template.ManifestName
}

// rewriteExcluded reports whether a copied file is left byte-identical by the
// content rewriter. relPath is slash-separated, relative to the tree root.
func rewriteExcluded(relPath string) bool {
	name := filepath.Base(relPath)

	if binaryExtensions[strings.ToLower(filepath.Ext(name))] {
		return true
	}
	if strings.HasSuffix(strings.ToLower(name), ".md") {
		return true
	}
	if name == "gradlew" || name == "gradlew.bat" {
		return true
	}
	if strings.Contains(relPath, "gradle/wrapper") {
		return true
	}
	// The scaffolding tool's own files, however they are capitalized.
	if strings.Contains(strings.ToLower(name), "createextension") {
		return true
	}
	return false
}
