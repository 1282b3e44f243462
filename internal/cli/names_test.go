package cli

import (
	"bytes"
	"testing"

	"github.com/qupath/extension-scaffold/internal/names"
	"github.com/stretchr/testify/require"
)

func TestNamesCommand(t *testing.T) {
	cmd := NewNamesCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"ProjectMetadataEditor"})

	require.NoError(t, cmd.Execute())

	output := out.String()
	require.Contains(t, output, "project-metadata-editor")
	require.Contains(t, output, "projectmetadataeditor")
	require.Contains(t, output, "qupath.ext.projectmetadataeditor")
	require.Contains(t, output, "qupath-extension-project-metadata-editor")
	require.Contains(t, output, "ProjectMetadataEditorExtension")
}

func TestNamesCommandInvalidIdentifier(t *testing.T) {
	cmd := NewNamesCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"not-a-name"})

	err := cmd.Execute()
	require.ErrorIs(t, err, names.ErrInvalidIdentifier)
}
