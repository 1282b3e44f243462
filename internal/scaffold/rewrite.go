package scaffold

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/qupath/extension-scaffold/internal/filesystem"
)

// Tokens driving line-level edits of the build descriptor.
const (
	scaffoldIncludeToken = "createExtension.gradle"
	groovyPluginToken    = "id 'groovy'"
	groovyBundleToken    = "libs.bundles.groovy"
)

// rewriter applies the substitution table to copied text files.
type rewriter struct {
	fs       filesystem.FileSystem
	subs     []substitution
	language Language
}

// rewriteFile rewrites one file in place and reports whether it changed.
// Excluded and non-UTF-8 files are left untouched; the latter is deliberate
// best-effort behavior, not an error.
func (r *rewriter) rewriteFile(path, rel string) (bool, error) {
	if rewriteExcluded(rel) {
		return false, nil
	}

	data, err := r.fs.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return false, nil
	}

	content, changed := applySubstitutions(string(data), r.subs)

	name := baseName(rel)
	if name == buildDescriptorName {
		content = filterBuildDescriptor(content, r.language)
		// The descriptor always loses at least the scaffold include line.
		changed = true
	}

	if !changed {
		return false, nil
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := r.fs.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return true, nil
}

// filterBuildDescriptor removes the scaffold's own include directive and,
// when Groovy is not selected, the Groovy plugin and dependency-bundle lines.
// The plugin line takes its immediately preceding comment line with it.
func filterBuildDescriptor(content string, language Language) string {
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.Contains(line, scaffoldIncludeToken) {
			continue
		}

		if !language.IncludesGroovy() {
			if strings.Contains(line, groovyPluginToken) {
				if n := len(kept); n > 0 && strings.HasPrefix(strings.TrimSpace(kept[n-1]), "//") {
					kept = kept[:n-1]
				}
				continue
			}
			if strings.Contains(line, groovyBundleToken) {
				continue
			}
		}

		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

func baseName(rel string) string {
	if idx := strings.LastIndex(rel, "/"); idx >= 0 {
		return rel[idx+1:]
	}
	return rel
}
