package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverfjs/sitemark"
)

// defaultExcerptLen fits a typical og:description.
const defaultExcerptLen = 160

func newExcerptCmd(global *globalFlags) *cobra.Command {
	var maxLen int
	cmd := &cobra.Command{
		Use:   "excerpt [file]",
		Short: "Print a plain-text summary for link previews",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(pathArg(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			global.debugf("excerpt of %s, max %d", doc.name, maxLen)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sitemark.Excerpt(doc.body, maxLen))
			return err
		},
	}
	cmd.Flags().IntVarP(&maxLen, "max", "n", defaultExcerptLen, "Maximum length in UTF-16 code units (0 = no limit)")
	return cmd
}
