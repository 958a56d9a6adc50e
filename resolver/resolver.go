package resolver

import (
	"strings"

	"github.com/PuerkitoBio/purell"
)

// DefaultNormalization is the purell flag set used by WithNormalization when
// no flags are given.
const DefaultNormalization = purell.FlagsSafe | purell.FlagRemoveDotSegments

// URLResolver turns references found in a page into absolute URLs.
// The root is decomposed once; each Resolve call overwrites the "current"
// fields. A URLResolver is not safe for concurrent use.
type URLResolver struct {
	root           string
	rootFullDomain string
	rootDomain     string
	rootSubdomain  string
	lastSlash      int // index of the '/' ending the root's directory
	query          int // index of the root's '?', or -1
	imageName      string

	current           string
	currentFullDomain string
	currentDomain     string
	currentSubdomain  string

	normalize bool
	flags     purell.NormalizationFlags
}

// Option configures the resolver
type Option func(*URLResolver)

// WithNormalization runs resolved URLs through purell with the given flags
// (DefaultNormalization if none are given).
func WithNormalization(flags ...purell.NormalizationFlags) Option {
	return func(r *URLResolver) {
		r.normalize = true
		r.flags = DefaultNormalization
		if len(flags) > 0 {
			r.flags = 0
			for _, f := range flags {
				r.flags |= f
			}
		}
	}
}

// NewResolver creates a resolver for links found in the page at root.
func NewResolver(root string, opts ...Option) *URLResolver {
	root = strings.TrimSpace(root)
	if i := strings.IndexByte(root, '#'); i >= 0 {
		root = root[:i]
	}

	r := &URLResolver{}
	r.root, r.lastSlash, r.query = findLastDirectory(root)
	r.rootFullDomain, r.rootDomain, r.rootSubdomain = ParseDomain(r.root)
	r.current = r.root
	r.currentFullDomain, r.currentDomain, r.currentSubdomain = r.rootFullDomain, r.rootDomain, r.rootSubdomain
	if r.HasQuery() {
		r.imageName = ParseImageName(r.root)
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns ref as an absolute URL. isImage enables the image server
// convention where a bare directory src is completed with the page's
// "image=" query value.
func (r *URLResolver) Resolve(ref string, isImage bool) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	dir := r.root[:r.lastSlash+1]

	var u string
	switch {
	case IsAbsolute(ref):
		u = ref
	case strings.HasPrefix(ref, "//"):
		u = r.scheme() + ref
	case ref[0] == '?':
		if r.query >= 0 {
			u = r.root[:r.query] + ref
		} else {
			u = r.root + ref
		}
	case ref[0] == '/':
		u = r.rootFullDomain + ref
	case strings.HasPrefix(ref, "./"):
		u = dir + ref[2:]
	case strings.HasPrefix(ref, "../"):
		u = r.parentPath(ref)
	default:
		u = dir + ref
	}

	if i := strings.LastIndexByte(u, '#'); i >= 0 {
		u = u[:i]
	}
	if isImage && len(u) > 1 && u[len(u)-1] == '/' {
		u += r.imageName
	}
	u = strings.ReplaceAll(u, " ", "%20")
	if r.normalize {
		if n, err := purell.NormalizeURLString(u, r.flags); err == nil {
			u = n
		}
	}

	r.current = u
	r.currentFullDomain, r.currentDomain, r.currentSubdomain = ParseDomain(u)
	return u
}

// parentPath resolves a reference starting with one or more "../" against
// the root directory. It never climbs above the host.
func (r *URLResolver) parentPath(ref string) string {
	levels := 0
	for strings.HasPrefix(ref, "../") {
		levels++
		ref = ref[3:]
	}
	dir := r.root[:r.lastSlash]
	floor := len(r.rootFullDomain)
	for ; levels > 0; levels-- {
		i := strings.LastIndexByte(dir, '/')
		if i < floor {
			break
		}
		dir = dir[:i]
	}
	return dir + "/" + ref
}

// scheme returns the root's "scheme:" prefix, defaulting to "http:".
func (r *URLResolver) scheme() string {
	if i := strings.Index(r.root, "://"); i > 0 {
		return r.root[:i+1]
	}
	return "http:"
}

// DirectoryPath returns the directory of the current URL without its scheme,
// e.g. "a.com/dir" for "http://a.com/dir/page.html".
func (r *URLResolver) DirectoryPath() string {
	u, lastSlash, _ := findLastDirectory(r.current)
	start := 0
	if i := strings.Index(u, "://"); i >= 0 {
		start = i + 3
	}
	if lastSlash < start {
		return ""
	}
	return u[start:lastSlash]
}

// Root returns the root URL, with a trailing '/' added if it had no path.
func (r *URLResolver) Root() string { return r.root }

// RootFullDomain returns the scheme and host of the root ("http://www.a.com").
func (r *URLResolver) RootFullDomain() string { return r.rootFullDomain }

// RootDomain returns the root's registered domain ("a.com").
func (r *URLResolver) RootDomain() string { return r.rootDomain }

// RootSubdomain returns the root's subdomain ("sales.a.com"), or the domain.
func (r *URLResolver) RootSubdomain() string { return r.rootSubdomain }

// Current returns the URL produced by the last Resolve call.
func (r *URLResolver) Current() string { return r.current }

// FullDomain returns the scheme and host of the current URL.
func (r *URLResolver) FullDomain() string { return r.currentFullDomain }

// Domain returns the domain of the current URL.
func (r *URLResolver) Domain() string { return r.currentDomain }

// Subdomain returns the subdomain of the current URL.
func (r *URLResolver) Subdomain() string { return r.currentSubdomain }

// HasQuery reports whether the root URL has a query string.
func (r *URLResolver) HasQuery() bool { return r.query >= 0 }

// ImageName returns the root's "image=" query value.
func (r *URLResolver) ImageName() string { return r.imageName }

// findLastDirectory returns u, the index of the '/' that ends its directory,
// and the index of its query '?' (or -1). A URL with no path gets a '/'
// added, before the query if there is one.
func findLastDirectory(u string) (string, int, int) {
	query := strings.LastIndexByte(u, '?')
	slash := strings.LastIndexByte(u, '/')
	if query > 0 && slash > query {
		slash = strings.LastIndexByte(u[:query], '/')
	}
	if slash < 0 || (slash > 0 && u[slash-1] == '/') {
		if query >= 0 {
			u = u[:query] + "/" + u[query:]
			return u, query, query + 1
		}
		u += "/"
		return u, len(u) - 1, query
	}
	return u, slash, query
}

// ParseDomain splits u into its full domain (scheme and host), its domain
// (the last two host labels) and its subdomain (one more label, ignoring a
// leading "www"). Domain and subdomain are empty for hosts without a dot.
func ParseDomain(u string) (fullDomain, domain, subdomain string) {
	start := 0
	if i := strings.Index(u, "://"); i >= 0 {
		start = i + 3
	}
	fullDomain = u
	if i := strings.IndexAny(u[start:], "/?#"); i >= 0 {
		fullDomain = u[:start+i]
	}

	host := fullDomain[start:]
	dot := strings.LastIndexByte(host, '.')
	if dot <= 0 {
		return fullDomain, "", ""
	}
	prev := strings.LastIndexByte(host[:dot], '.')
	domain = host[prev+1:]
	subdomain = domain
	if prev > 0 {
		if i := strings.LastIndexByte(host[:prev], '.'); i >= 0 {
			subdomain = host[i+1:]
		}
	}
	return fullDomain, domain, subdomain
}

// opaqueSchemes are schemes whose URLs have no "//" authority.
var opaqueSchemes = []string{"mailto:", "tel:", "javascript:", "data:", "news:", "urn:", "sms:"}

// IsAbsolute reports whether ref already carries a scheme.
func IsAbsolute(ref string) bool {
	for _, s := range opaqueSchemes {
		if len(ref) >= len(s) && strings.EqualFold(ref[:len(s)], s) {
			return true
		}
	}
	i := strings.Index(ref, "://")
	if i <= 0 {
		return false
	}
	for j := 0; j < i; j++ {
		c := ref[j]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case j > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// IsTopLevelDomain reports whether u is just a domain, with no path beyond a
// trailing '/'.
func IsTopLevelDomain(u string) bool {
	if u == "" {
		return false
	}
	start := 0
	if i := strings.Index(u, "//"); i >= 0 {
		start = i + 2
	}
	i := strings.IndexByte(u[start:], '/')
	return i < 0 || start+i == len(u)-1
}

// ParseTopLevelDomain returns what follows the first dot of the host, so
// "com" for "http://www.a.com/x" and "co.uk" for "a.co.uk".
func ParseTopLevelDomain(u string) string {
	start := 0
	if i := strings.Index(strings.ToLower(u), "www."); i >= 0 {
		start = i + len("www.")
	}
	dot := strings.IndexByte(u[start:], '.')
	if dot < 0 || start+dot+1 >= len(u) {
		return ""
	}
	tld := u[start+dot+1:]
	if end := strings.IndexAny(tld, "/?"); end >= 0 {
		tld = tld[:end]
	}
	return tld
}

// ParseImageName returns the "image=" query value of u, up to the next '&'.
func ParseImageName(u string) string {
	q := strings.IndexByte(u, '?')
	if q < 0 {
		return ""
	}
	query := u[q:]
	i := strings.Index(strings.ToLower(query), "image=")
	if i < 0 {
		return ""
	}
	name := query[i+len("image="):]
	if end := strings.IndexByte(name, '&'); end >= 0 {
		name = name[:end]
	}
	return name
}
