// Package create drives the interactive questions of the create command.
package create

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/qupath/extension-scaffold/internal/names"
	"github.com/qupath/extension-scaffold/internal/scaffold"
	"github.com/qupath/extension-scaffold/internal/template"
	"github.com/qupath/extension-scaffold/internal/tui"
)

// Flow orchestrates the create prompts using huh forms.
type Flow struct {
	theme       *huh.Theme
	defaultName string
	description string
}

// Result captures the confirmed answers. A nil Result means the user backed
// out and nothing should be generated.
type Result struct {
	Names    *names.Set
	Language scaffold.Language
}

// NewFlow constructs a Flow seeded with the template manifest defaults.
func NewFlow(manifest *template.Manifest) *Flow {
	return &Flow{
		theme:       tui.NewHuhTheme(),
		defaultName: manifest.DefaultName,
		description: manifest.Description,
	}
}

// Run asks for the extension name and language, shows the derived names, and
// requires explicit confirmation. Returns nil on abort or decline.
func (f *Flow) Run(preselected *scaffold.Language) (*Result, error) {
	identifier, err := f.inputIdentifier()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	set, err := names.Derive(identifier)
	if err != nil {
		return nil, err
	}

	language := scaffold.LanguageJava
	if preselected != nil {
		language = *preselected
	} else {
		language, err = f.selectLanguage()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, nil
			}
			return nil, err
		}
	}

	confirmed, err := f.confirm(set, language)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}
	if !confirmed {
		return nil, nil
	}

	return &Result{Names: set, Language: language}, nil
}

func (f *Flow) inputIdentifier() (string, error) {
	identifier := ""

	description := "UpperCamelCase, letters and digits only."
	if f.description != "" {
		description = f.description + "\n" + description
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Extension name").
				Description(description).
				Placeholder(f.defaultName).
				Value(&identifier).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						// Blank falls back to the template default.
						return nil
					}
					return names.Validate(strings.TrimSpace(v))
				}),
		),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return "", err
	}

	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		identifier = f.defaultName
	}

	return identifier, nil
}

func (f *Flow) selectLanguage() (scaffold.Language, error) {
	language := string(scaffold.LanguageJava)

	opts := []huh.Option[string]{
		huh.NewOption("java — Java sources only", string(scaffold.LanguageJava)),
		huh.NewOption("groovy — Groovy sources only", string(scaffold.LanguageGroovy)),
		huh.NewOption("both — keep Java and Groovy", string(scaffold.LanguageBoth)),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Source language").
				Description("Which sources should the new extension keep?").
				Options(opts...).
				Value(&language),
		),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return "", err
	}

	return scaffold.ParseLanguage(language)
}

func (f *Flow) confirm(set *names.Set, language scaffold.Language) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Create %s?", set.ArtifactID)).
				Description(RenderNames(set, language)).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}

// RenderNames lists the derived names shown on the confirmation screen.
func RenderNames(set *names.Set, language scaffold.Language) string {
	rows := []struct{ label, value string }{
		{"Name", set.Identifier},
		{"Artifact", set.ArtifactID},
		{"Package", set.Package},
		{"Module", set.ModuleID},
		{"Class", set.Identifier + "Extension"},
		{"Language", string(language)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(tui.LabelStyle.Render(row.label))
		b.WriteString(row.value)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
