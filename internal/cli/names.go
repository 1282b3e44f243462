package cli

import (
	"fmt"

	"github.com/qupath/extension-scaffold/internal/names"
	"github.com/spf13/cobra"
)

// NewNamesCommand creates the names command, a dry run of name derivation.
func NewNamesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "names <ExtensionName>",
		Short: "Show the names derived from an extension name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := names.Derive(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%-12s %s\n", "name", set.Identifier)
			_, _ = fmt.Fprintf(out, "%-12s %s\n", "kebab", set.KebabCase)
			_, _ = fmt.Fprintf(out, "%-12s %s\n", "flat", set.LowerFlat)
			_, _ = fmt.Fprintf(out, "%-12s %s\n", "package", set.Package)
			_, _ = fmt.Fprintf(out, "%-12s %s\n", "artifact", set.ArtifactID)
			_, _ = fmt.Fprintf(out, "%-12s %s\n", "module", set.ModuleID)
			_, _ = fmt.Fprintf(out, "%-12s %s\n", "class", set.Identifier+"Extension")

			return nil
		},
	}
}
