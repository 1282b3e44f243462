// Package template describes the template directory being scaffolded from.
package template

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/adrg/frontmatter"
	"github.com/qupath/extension-scaffold/internal/filesystem"
)

// ManifestName is the optional template descriptor at the template root. The
// file is documentation for template authors; its YAML frontmatter configures
// the scaffold. It is never copied into a generated project.
const ManifestName = ".scaffold.md"

// DefaultIdentifier is used when an interactive run leaves the name blank and
// the template does not declare its own default.
const DefaultIdentifier = "MyExtension"

// Manifest holds template-level scaffold configuration.
type Manifest struct {
	DefaultName string   `yaml:"default-name"`
	Description string   `yaml:"description"`
	Exclude     []string `yaml:"exclude"`
}

// LoadManifest reads the manifest from the template root. A missing manifest
// yields built-in defaults; a present but unparsable one is an error.
func LoadManifest(fs filesystem.FileSystem, templateRoot string) (*Manifest, error) {
	path := filepath.Join(templateRoot, ManifestName)
	if !fs.Exists(path) {
		return &Manifest{DefaultName: DefaultIdentifier}, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestName, err)
	}

	var manifest Manifest
	if _, err := frontmatter.Parse(bytes.NewReader(data), &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestName, err)
	}

	if manifest.DefaultName == "" {
		manifest.DefaultName = DefaultIdentifier
	}

	return &manifest, nil
}
