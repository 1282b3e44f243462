package cli

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/qupath/extension-scaffold/internal/scaffold"
	"github.com/qupath/extension-scaffold/internal/tui"
)

const summaryTemplate = `{{ .FilesUpdated }} {{ .FilesUpdated | plural "file" "files" }} updated, ` +
	`{{ .FilesRenamed }} renamed, ` +
	`{{ .FilesDeleted }} deleted, ` +
	`{{ .EmptyDirsRemoved }} {{ .EmptyDirsRemoved | plural "empty directory" "empty directories" }} removed`

var summaryTmpl = template.Must(template.New("summary").Funcs(sprig.FuncMap()).Parse(summaryTemplate))

// RenderSummary renders the human-readable result of a successful run.
func RenderSummary(result *scaffold.Result) (string, error) {
	var counts bytes.Buffer
	if err := summaryTmpl.Execute(&counts, result); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(tui.SuccessStyle.Render("Created " + result.TargetPath))
	b.WriteString("\n")
	b.WriteString(counts.String())

	for _, warning := range result.Warnings {
		b.WriteString("\n")
		b.WriteString(tui.WarningStyle.Render("warning: " + warning))
	}

	return b.String(), nil
}
