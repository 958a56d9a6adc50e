package htmltext

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	// Text options
	excludeOuterText bool
	preserveNewlines bool
	newlinesSet      bool // preserveNewlines was chosen explicitly
	bodyOnly         bool

	// Link options
	baseURL           string
	excludeImageLinks bool
	normalizeURLs     bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		excludeOuterText:  false,
		preserveNewlines:  false,
		bodyOnly:          false,
		baseURL:           "",
		excludeImageLinks: false,
		normalizeURLs:     false,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
