package scaffold

import (
	"strings"

	"github.com/qupath/extension-scaffold/internal/names"
)

// Template markers as they appear in the QuPath extension template.
const (
	markerModuleID      = "io.github.qupath.extension.template"
	markerArtifactID    = "qupath-extension-template"
	markerPackage       = "qupath.ext.template"
	markerGroovyDemo    = "DemoGroovyExtension"
	markerJavaDemo      = "DemoExtension"
	markerCapitalized   = "Template"
	markerLowercase     = "template"
	markerGroovy        = "Groovy"
	javaSourceSuffix    = ".java"
	groovySourceSuffix  = ".groovy"
	buildDescriptorName = "build.gradle"
)

// substitution is one literal marker/replacement pair.
type substitution struct {
	marker      string
	replacement string
}

// substitutionsFor builds the ordered substitution table for a name set.
// Full coordinates come first so the generic trailing tokens they contain are
// never partially matched.
func substitutionsFor(set *names.Set) []substitution {
	return []substitution{
		{markerModuleID, set.ModuleID},
		{markerArtifactID, set.ArtifactID},
		{markerPackage, set.Package},
		{markerGroovyDemo, set.Identifier + "GroovyExtension"},
		{markerJavaDemo, set.Identifier + "Extension"},
		{markerCapitalized, set.Identifier},
		{markerLowercase, set.LowerFlat},
	}
}

// applySubstitutions replaces every marker occurrence in content, in table
// order, and reports whether anything matched.
func applySubstitutions(content string, subs []substitution) (string, bool) {
	changed := false
	for _, sub := range subs {
		if strings.Contains(content, sub.marker) {
			content = strings.ReplaceAll(content, sub.marker, sub.replacement)
			changed = true
		}
	}
	return content, changed
}
