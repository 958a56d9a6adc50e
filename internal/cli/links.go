package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/zeebo/xxh3"

	"github.com/tsawler/htmltext"
)

var (
	baseURL      string
	imageLinks   bool
	uniqueLinks  bool
	normalizeURL bool
)

var linksCmd = &cobra.Command{
	Use:   "links FILE...",
	Short: "List the hyperlinks of HTML files",
	Long: `Lists the links of each file in document order as "kind<TAB>url".
Relative links are resolved against --base, or against the page's own
<base href> when it has one. Without either they are printed as written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLinks,
}

func init() {
	linksCmd.Flags().StringVarP(&baseURL, "base", "b", "", "absolute URL the pages were fetched from")
	linksCmd.Flags().BoolVar(&imageLinks, "images", true, "include <img> sources")
	linksCmd.Flags().BoolVarP(&uniqueLinks, "unique", "u", false, "print each URL once across all files")
	linksCmd.Flags().BoolVar(&normalizeURL, "normalize", false, "normalize resolved URLs")
	rootCmd.AddCommand(linksCmd)
}

// seenSet records URL hashes shared by all workers.
type seenSet struct {
	mu   sync.Mutex
	seen map[uint64]struct{}
}

// add reports whether url had not been added before.
func (s *seenSet) add(url string) bool {
	h := xxh3.HashString(url)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[h]; ok {
		return false
	}
	s.seen[h] = struct{}{}
	return true
}

func runLinks(cmd *cobra.Command, args []string) error {
	images := cfg.IncludeImageLinks
	if cmd.Flags().Changed("images") {
		images = imageLinks
	}
	unique := cfg.UniqueLinks
	if cmd.Flags().Changed("unique") {
		unique = uniqueLinks
	}
	normalize := cfg.NormalizeURLs
	if cmd.Flags().Changed("normalize") {
		normalize = normalizeURL
	}

	seen := &seenSet{seen: make(map[uint64]struct{})}
	if unique {
		// with a shared set, which file reports a URL first must not depend
		// on scheduling
		cfg.Jobs = 1
	}

	return process(cmd, args, func(in input) (string, []htmltext.Warning, error) {
		ext := in.extractor()
		if baseURL != "" {
			ext = ext.BaseURL(baseURL)
		}
		if !images {
			ext = ext.ExcludeImageLinks()
		}
		if normalize {
			ext = ext.NormalizeURLs()
		}

		links, warnings, err := ext.Links()
		if err != nil {
			return "", warnings, err
		}

		var sb strings.Builder
		for _, l := range links {
			if unique && !seen.add(l.URL) {
				continue
			}
			fmt.Fprintf(&sb, "%s\t%s\n", l.Kind, l.URL)
		}
		return sb.String(), warnings, nil
	})
}
