package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/qupath/extension-scaffold/internal/filesystem"
	"github.com/qupath/extension-scaffold/internal/names"
	"github.com/qupath/extension-scaffold/internal/scaffold"
	"github.com/qupath/extension-scaffold/internal/template"
	"github.com/qupath/extension-scaffold/internal/tui"
	"github.com/qupath/extension-scaffold/internal/tui/create"
	"github.com/spf13/cobra"
)

// CreateCommand handles the create command
type CreateCommand struct {
	fs  filesystem.FileSystem
	log *log.Logger
}

// NewCreateCommand creates a new create command
func NewCreateCommand(fs filesystem.FileSystem, logger *log.Logger) *cobra.Command {
	cmd := &CreateCommand{fs: fs, log: logger}

	cobraCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new extension project from the template",
		Long: `Create a new extension project next to the template directory.

With --name the run is fully unattended; without it the tool asks for the
name and language and shows the derived names before writing anything.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("name", "n", "", "Extension name in UpperCamelCase (skips all prompts)")
	cobraCmd.Flags().StringP("language", "l", "", "Sources to keep: java, groovy or both (default java)")
	cobraCmd.Flags().StringP("template", "t", ".", "Path to the extension template directory")

	return cobraCmd
}

// Run executes the create command
func (c *CreateCommand) Run(cmd *cobra.Command, args []string) error {
	nameFlag, _ := cmd.Flags().GetString("name")
	languageFlag, _ := cmd.Flags().GetString("language")
	templateFlag, _ := cmd.Flags().GetString("template")
	if templateFlag == "" {
		templateFlag = "."
	}

	templateRoot, err := filepath.Abs(templateFlag)
	if err != nil {
		return fmt.Errorf("failed to resolve template path: %w", err)
	}
	if !c.fs.Exists(templateRoot) {
		return fmt.Errorf("template directory not found: %s", templateRoot)
	}

	manifest, err := template.LoadManifest(c.fs, templateRoot)
	if err != nil {
		return err
	}

	set, language, cancelled, err := c.resolveInput(nameFlag, languageFlag, manifest)
	if err != nil {
		return err
	}
	if cancelled {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.SubtleStyle.Render("Cancelled. Nothing was created."))
		return nil
	}

	generator := scaffold.NewGenerator(c.fs, c.log)
	result, err := generator.Run(scaffold.Options{
		TemplateRoot:  templateRoot,
		Names:         set,
		Language:      language,
		ExtraExcludes: manifest.Exclude,
	})
	if err != nil {
		return err
	}

	summary, err := RenderSummary(result)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), summary)

	return nil
}

// resolveInput validates direct flags or falls back to the interactive flow.
// A supplied --name means unattended mode: no prompts, no confirmation.
func (c *CreateCommand) resolveInput(nameFlag, languageFlag string, manifest *template.Manifest) (*names.Set, scaffold.Language, bool, error) {
	if nameFlag != "" {
		set, err := names.Derive(nameFlag)
		if err != nil {
			return nil, "", false, err
		}
		language, err := scaffold.ParseLanguage(languageFlag)
		if err != nil {
			return nil, "", false, err
		}
		return set, language, false, nil
	}

	var preselected *scaffold.Language
	if languageFlag != "" {
		parsed, err := scaffold.ParseLanguage(languageFlag)
		if err != nil {
			return nil, "", false, err
		}
		preselected = &parsed
	}

	flow := create.NewFlow(manifest)
	result, err := flow.Run(preselected)
	if err != nil {
		return nil, "", false, fmt.Errorf("failed to run prompts: %w", err)
	}
	if result == nil {
		return nil, "", true, nil
	}

	return result.Names, result.Language, false, nil
}
