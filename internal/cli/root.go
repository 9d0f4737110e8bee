// Package cli implements the sitemark command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/riverfjs/sitemark"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
}

// NewRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "sitemark",
		Short:         "Render website copy written in a small markdown subset",
		Long:          `Render headings (## / ###), bullet lists, paragraphs, **bold**, *italic* and [links](url) as an outline, HTML, JSON or plain text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a TOML config file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug information to stderr")

	root.AddCommand(newRenderCmd(flags))
	root.AddCommand(newExcerptCmd(flags))
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (f *globalFlags) debugf(format string, args ...any) {
	if f.verbose {
		sitemark.Logger.Printf("[DEBUG] "+format, args...)
	}
}
