package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/htmltext"
)

var metaCmd = &cobra.Command{
	Use:   "meta FILE...",
	Short: "Print the title and meta information of HTML files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMeta,
}

func init() {
	rootCmd.AddCommand(metaCmd)
}

func runMeta(cmd *cobra.Command, args []string) error {
	return process(cmd, args, func(in input) (string, []htmltext.Warning, error) {
		m, warnings, err := in.extractor().Metadata()
		if err != nil {
			return "", warnings, err
		}

		var sb strings.Builder
		field := func(name, value string) {
			if value != "" {
				fmt.Fprintf(&sb, "%-12s %s\n", name+":", value)
			}
		}
		field("Title", m.Title)
		field("Author", m.Author)
		field("Subject", m.Subject)
		field("Description", m.Description)
		field("Keywords", strings.Join(m.KeywordList(), ", "))
		field("Charset", m.Charset)
		return sb.String(), warnings, nil
	})
}
