package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/htmltext"
)

var styleCmd = &cobra.Command{
	Use:   "style FILE...",
	Short: "Print the CSS of the first <style> element",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(cmd, args, func(in input) (string, []htmltext.Warning, error) {
			return in.extractor().Style()
		})
	},
}

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks FILE...",
	Short: "List the named anchors of HTML files",
	Long:  `Lists each <a name="..."> anchor as "offset<TAB>name", where offset is the byte offset of the anchor in the UTF-8 markup.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(cmd, args, func(in input) (string, []htmltext.Warning, error) {
			marks, _, err := in.extractor().Bookmarks()
			if err != nil {
				return "", nil, err
			}
			var sb strings.Builder
			for _, m := range marks {
				fmt.Fprintf(&sb, "%d\t%s\n", m.Offset, m.Name)
			}
			return sb.String(), nil, nil
		})
	},
}

var stripLinksCmd = &cobra.Command{
	Use:   "strip-links FILE...",
	Short: "Print the markup with hyperlinks removed",
	Long:  `Removes every <a href> wrapper and keeps its content. Named anchors are left in place. Output is UTF-8.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(cmd, args, func(in input) (string, []htmltext.Warning, error) {
			return in.extractor().StripLinks()
		})
	},
}

func init() {
	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(bookmarksCmd)
	rootCmd.AddCommand(stripLinksCmd)
}
