package scaffold

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/qupath/extension-scaffold/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestLanguageClassification(t *testing.T) {
	require.True(t, groovyClassified("CellClassifierGroovyExtension.groovy"))
	require.True(t, groovyClassified("helper.groovy"))
	require.True(t, groovyClassified("GroovySupport.java"))
	require.False(t, groovyClassified("CellClassifierExtension.java"))

	require.True(t, javaClassified("CellClassifierExtension.java"))
	require.True(t, javaClassified("DemoExtension.txt"))
	require.False(t, javaClassified("DemoGroovyExtensionDemoExtension.txt"))
	require.False(t, javaClassified("notes.md"))
}

func TestPruneDeletesGroovyForJavaSelection(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/out/src/main/java/A.java", []byte("x"))
	fs.AddFile("/out/src/main/groovy/B.groovy", []byte("x"))
	fs.AddFile("/out/src/main/resources/app.properties", []byte("x"))

	p := &pruner{fs: fs, log: log.New(io.Discard), language: LanguageJava}

	deleted, warnings, err := p.prune("/out")
	require.NoError(t, err)
	require.Equal(t, 1, deleted)
	require.Empty(t, warnings)

	require.False(t, fs.Exists("/out/src/main/groovy/B.groovy"))
	require.True(t, fs.Exists("/out/src/main/java/A.java"))
	require.True(t, fs.Exists("/out/src/main/resources/app.properties"))
}

func TestPruneBothDeletesNothing(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/out/src/main/java/A.java", []byte("x"))
	fs.AddFile("/out/src/main/groovy/B.groovy", []byte("x"))

	p := &pruner{fs: fs, log: log.New(io.Discard), language: LanguageBoth}

	deleted, warnings, err := p.prune("/out")
	require.NoError(t, err)
	require.Equal(t, 0, deleted)
	require.Empty(t, warnings)
}

func TestPruneReportsWarningsOnFailure(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/out/src/B.groovy", []byte("x"))
	fs.FailRemove["/out/src/B.groovy"] = true

	p := &pruner{fs: fs, log: log.New(io.Discard), language: LanguageJava}

	deleted, warnings, err := p.prune("/out")
	require.NoError(t, err)
	require.Equal(t, 0, deleted)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "/out/src/B.groovy")
}

func TestRemoveEmptyDirs(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/out/keep/file.txt", []byte("x"))
	fs.AddDir("/out/a/b/c")
	fs.AddDir("/out/a/d")

	p := &pruner{fs: fs, log: log.New(io.Discard), language: LanguageJava}

	removed, err := p.removeEmptyDirs("/out")
	require.NoError(t, err)
	require.Equal(t, 4, removed)

	require.False(t, fs.Exists("/out/a"))
	require.True(t, fs.Exists("/out/keep/file.txt"))
	require.True(t, fs.Exists("/out"))
}
