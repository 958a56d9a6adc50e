package cli

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/htmltext"
)

var (
	noOuterText      bool
	preserveNewlines bool
	bodyOnly         bool
)

var textCmd = &cobra.Command{
	Use:   "text FILE...",
	Short: "Print the plain text of HTML files",
	Long: `Converts each file to plain text. Entities are decoded, <br> and block
elements become line breaks, and scripts, styles and comments are dropped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runText,
}

func init() {
	textCmd.Flags().BoolVar(&noOuterText, "no-outer", false, "drop text before the first and after the last element")
	textCmd.Flags().BoolVar(&preserveNewlines, "preserve-newlines", false, "keep line breaks from the source")
	textCmd.Flags().BoolVar(&bodyOnly, "body-only", false, "only convert the content of the <body> element")
	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	outer := cfg.IncludeOuterText
	if cmd.Flags().Changed("no-outer") {
		outer = !noOuterText
	}
	preserve := cfg.PreserveNewlines
	if cmd.Flags().Changed("preserve-newlines") {
		preserve = preserveNewlines
	}

	return process(cmd, args, func(in input) (string, []htmltext.Warning, error) {
		ext := in.extractor()
		if !outer {
			ext = ext.ExcludeOuterText()
		}
		if preserve {
			ext = ext.PreserveNewlines()
		}
		if bodyOnly {
			ext = ext.BodyOnly()
		}
		return ext.Text()
	})
}
