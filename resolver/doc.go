// Package resolver provides URL resolution for links found in HTML pages.
//
// Links in a page are often relative to the page they appear in ("../x.html",
// "/root.html", "?page=2"). A [URLResolver] is built once from the page's URL
// and turns each reference into an absolute URL.
//
// # Basic Usage
//
//	r := resolver.NewResolver("http://a.com/dir/page.html")
//	r.Resolve("../x.html", false)      // http://a.com/x.html
//	r.Resolve("sub/page2.html", false) // http://a.com/dir/sub/page2.html
//
// After each call the domain parts of the resolved URL are available from
// [URLResolver.FullDomain], [URLResolver.Domain] and [URLResolver.Subdomain].
//
// # Parent Directories
//
// Each leading "../" climbs one directory from the page's directory. Climbing
// stops at the host, so a reference with too many "../" segments resolves to
// the site root instead of damaging the scheme.
//
// # Normalization
//
// Resolved URLs are left as built unless normalization is requested, in
// which case they are passed through purell:
//
//	r := resolver.NewResolver(root, resolver.WithNormalization())
//
// # Image Servers
//
// Some image servers use a page URL such as "view.php?image=a.png" and refer
// to images by directory only. When resolving an image whose URL ends in '/',
// the root's "image=" value is appended.
package resolver
