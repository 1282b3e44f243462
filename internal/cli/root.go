package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/qupath/extension-scaffold/internal/filesystem"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, logger *log.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "extension-scaffold",
		Short: "Generate QuPath extension projects from the extension template",
		Long: `A CLI tool for turning the QuPath extension template into a new,
independent extension project: name substitution, file renames and optional
pruning of the Java or Groovy sources.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `extension-scaffold create` when no subcommand is provided.
			return (&CreateCommand{fs: fs, log: logger}).Run(cmd, args)
		},
	}

	rootCmd.AddCommand(NewCreateCommand(fs, logger))
	rootCmd.AddCommand(NewNamesCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	rootCmd := NewRootCommand(fs, logger)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
