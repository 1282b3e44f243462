package names

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Fixed prefixes of the QuPath extension project family.
const (
	PackagePrefix  = "qupath.ext."
	ArtifactPrefix = "qupath-extension-"
	ModulePrefix   = "io.github.qupath.extension."
)

// ErrInvalidIdentifier is returned when the base name does not start with an
// uppercase letter or contains characters other than letters and digits.
var ErrInvalidIdentifier = errors.New("invalid identifier")

var identifierPattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// Set holds every derived form of a validated identifier.
type Set struct {
	Identifier string // e.g. "CellClassifier"
	KebabCase  string // e.g. "cell-classifier"
	LowerFlat  string // e.g. "cellclassifier"
	Package    string // e.g. "qupath.ext.cellclassifier"
	ArtifactID string // e.g. "qupath-extension-cell-classifier"
	ModuleID   string // e.g. "io.github.qupath.extension.cell-classifier"
}

// Validate checks that identifier is a legal base name.
func Validate(identifier string) error {
	if !identifierPattern.MatchString(identifier) {
		return fmt.Errorf("%w: %q (must start with an uppercase letter and contain only letters and digits)", ErrInvalidIdentifier, identifier)
	}
	return nil
}

// Derive computes the full name set for a base identifier.
func Derive(identifier string) (*Set, error) {
	if err := Validate(identifier); err != nil {
		return nil, err
	}

	kebab := kebabCase(identifier)
	lowerFlat := strings.ToLower(identifier)

	return &Set{
		Identifier: identifier,
		KebabCase:  kebab,
		LowerFlat:  lowerFlat,
		Package:    PackagePrefix + lowerFlat,
		ArtifactID: ArtifactPrefix + kebab,
		ModuleID:   ModulePrefix + kebab,
	}, nil
}

// kebabCase inserts a hyphen before each uppercase letter that follows a
// lowercase letter or digit, then lowercases the whole string.
func kebabCase(s string) string {
	var b strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return b.String()
}
