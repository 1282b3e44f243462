package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// Language selects which source-language subtrees survive in the generated
// project.
type Language string

const (
	LanguageJava   Language = "java"
	LanguageGroovy Language = "groovy"
	LanguageBoth   Language = "both"
)

// ErrInvalidLanguage is returned for language tokens outside java/groovy/both.
var ErrInvalidLanguage = errors.New("invalid language selection")

// ParseLanguage parses a language token case-insensitively. An empty token
// selects the default, Java.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return LanguageJava, nil
	case "java":
		return LanguageJava, nil
	case "groovy":
		return LanguageGroovy, nil
	case "both":
		return LanguageBoth, nil
	default:
		return "", fmt.Errorf("%w: %q (expected java, groovy or both)", ErrInvalidLanguage, s)
	}
}

// IncludesJava reports whether Java sources are kept.
func (l Language) IncludesJava() bool {
	return l == LanguageJava || l == LanguageBoth
}

// IncludesGroovy reports whether Groovy sources are kept.
func (l Language) IncludesGroovy() bool {
	return l == LanguageGroovy || l == LanguageBoth
}
