package scaffold

import (
	"testing"

	"github.com/qupath/extension-scaffold/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestNewNodeNamePrecedence(t *testing.T) {
	set := mustDerive(t, "CellClassifier")

	cases := []struct {
		name string
		want string
	}{
		{"DemoExtension.java", "CellClassifierExtension.java"},
		{"DemoGroovyExtension.groovy", "CellClassifierGroovyExtension.groovy"},
		{"TemplateHelper.java", "CellClassifierHelper.java"},
		{"template", "cellclassifier"},
		{"template.properties", "cellclassifier.properties"},
		// Capitalized marker wins over the lowercase one inside it.
		{"Template.md", "CellClassifier.md"},
		{"unrelated.txt", "unrelated.txt"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, newNodeName(tc.name, set), "input %q", tc.name)
	}
}

func TestRelocateSegments(t *testing.T) {
	set := mustDerive(t, "CellClassifier")

	require.Equal(t, "src/main/java/qupath/ext/cellclassifier",
		relocateSegments("src/main/java/qupath/ext/template", set))
	require.Equal(t, "src/main/java/qupath/ext/cellclassifier/sub",
		relocateSegments("src/main/java/qupath/ext/template/sub", set))
	// Only segments exactly named after the marker move.
	require.Equal(t, "docs/templates", relocateSegments("docs/templates", set))
	require.Equal(t, ".", relocateSegments(".", set))
}

func TestRenameFileRelocatesAndRenames(t *testing.T) {
	set := mustDerive(t, "CellClassifier")
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/out/src/main/java/qupath/ext/template/DemoExtension.java", []byte("x"))

	rn := &renamer{fs: fs, set: set}

	moved, err := rn.renameFile("/out", "/out/src/main/java/qupath/ext/template/DemoExtension.java")
	require.NoError(t, err)
	require.True(t, moved)

	require.True(t, fs.Exists("/out/src/main/java/qupath/ext/cellclassifier/CellClassifierExtension.java"))
	require.False(t, fs.Exists("/out/src/main/java/qupath/ext/template/DemoExtension.java"))
}

func TestRenameFileNoMarkers(t *testing.T) {
	set := mustDerive(t, "CellClassifier")
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/out/settings.gradle", []byte("x"))

	rn := &renamer{fs: fs, set: set}

	moved, err := rn.renameFile("/out", "/out/settings.gradle")
	require.NoError(t, err)
	require.False(t, moved)
	require.True(t, fs.Exists("/out/settings.gradle"))
}

func TestRenameDirSimple(t *testing.T) {
	set := mustDerive(t, "CellClassifier")
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/out/docs/template/notes.txt", []byte("x"))

	rn := &renamer{fs: fs, set: set}

	moved, err := rn.renameDir("/out/docs/template")
	require.NoError(t, err)
	require.True(t, moved)

	require.True(t, fs.Exists("/out/docs/cellclassifier/notes.txt"))
	require.False(t, fs.Exists("/out/docs/template"))
}

func TestRenameDirMergesIntoExistingDestination(t *testing.T) {
	set := mustDerive(t, "CellClassifier")
	fs := filesystem.NewMockFileSystem()
	// Destination already holds relocated files; the source kept a straggler.
	fs.AddFile("/out/pkg/cellclassifier/Moved.java", []byte("x"))
	fs.AddFile("/out/pkg/template/Straggler.txt", []byte("y"))

	rn := &renamer{fs: fs, set: set}

	moved, err := rn.renameDir("/out/pkg/template")
	require.NoError(t, err)
	require.True(t, moved)

	require.True(t, fs.Exists("/out/pkg/cellclassifier/Moved.java"))
	require.True(t, fs.Exists("/out/pkg/cellclassifier/Straggler.txt"))
	require.False(t, fs.Exists("/out/pkg/template"))
}
