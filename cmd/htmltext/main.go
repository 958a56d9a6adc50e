// Command htmltext extracts text, metadata and links from HTML files.
package main

import (
	"os"

	"github.com/tsawler/htmltext/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
