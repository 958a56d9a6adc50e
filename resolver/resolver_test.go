package resolver

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"parent", "../x.html", "http://a.com/x.html"},
		{"parent above host", "../../../x.html", "http://a.com/x.html"},
		{"host relative", "/root.html", "http://a.com/root.html"},
		{"query only", "?q=1", "http://a.com/dir/page.html?q=1"},
		{"relative", "sub/page2.html", "http://a.com/dir/sub/page2.html"},
		{"dot slash", "./x.html", "http://a.com/dir/x.html"},
		{"protocol relative", "//cdn.b.com/x.js", "http://cdn.b.com/x.js"},
		{"absolute", "https://b.com/y", "https://b.com/y"},
		{"mailto", "mailto:me@a.com", "mailto:me@a.com"},
		{"fragment stripped", "page.html#top", "http://a.com/dir/page.html"},
		{"space escaped", "my file.html", "http://a.com/dir/my%20file.html"},
		{"trimmed", "  x.html ", "http://a.com/dir/x.html"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver("http://a.com/dir/page.html")
			if got := r.Resolve(tt.ref, false); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolveUpdatesCurrent(t *testing.T) {
	r := NewResolver("http://www.a.com/dir/page.html")
	if r.Domain() != "a.com" {
		t.Errorf("initial Domain() = %q, want %q", r.Domain(), "a.com")
	}

	r.Resolve("//cdn.b.com/x.js", false)
	if r.Current() != "http://cdn.b.com/x.js" {
		t.Errorf("Current() = %q", r.Current())
	}
	if r.FullDomain() != "http://cdn.b.com" {
		t.Errorf("FullDomain() = %q, want %q", r.FullDomain(), "http://cdn.b.com")
	}
	if r.Domain() != "b.com" {
		t.Errorf("Domain() = %q, want %q", r.Domain(), "b.com")
	}
	if r.RootDomain() != "a.com" {
		t.Errorf("RootDomain() = %q, want %q", r.RootDomain(), "a.com")
	}
	if r.RootFullDomain() != "http://www.a.com" {
		t.Errorf("RootFullDomain() = %q", r.RootFullDomain())
	}
}

func TestRootWithoutPath(t *testing.T) {
	tests := []struct {
		root     string
		wantRoot string
		ref      string
		want     string
	}{
		{"http://a.com", "http://a.com/", "x.html", "http://a.com/x.html"},
		{"http://a.com?x=1", "http://a.com/?x=1", "y.html", "http://a.com/y.html"},
		{"http://a.com/dir/#frag", "http://a.com/dir/", "y.html", "http://a.com/dir/y.html"},
	}

	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			r := NewResolver(tt.root)
			if r.Root() != tt.wantRoot {
				t.Errorf("Root() = %q, want %q", r.Root(), tt.wantRoot)
			}
			if got := r.Resolve(tt.ref, false); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestImageServer(t *testing.T) {
	r := NewResolver("http://a.com/view.php?image=pic.png")
	if !r.HasQuery() {
		t.Fatal("HasQuery() = false")
	}
	if r.ImageName() != "pic.png" {
		t.Errorf("ImageName() = %q, want %q", r.ImageName(), "pic.png")
	}
	if got := r.Resolve("img/", true); got != "http://a.com/img/pic.png" {
		t.Errorf("image Resolve = %q", got)
	}
	if got := r.Resolve("img/", false); got != "http://a.com/img/" {
		t.Errorf("non-image Resolve = %q", got)
	}
	if got := r.Resolve("?page=2", false); got != "http://a.com/view.php?page=2" {
		t.Errorf("query Resolve = %q", got)
	}
}

func TestNormalization(t *testing.T) {
	ref := "/a/./b/../c.html"

	plain := NewResolver("http://a.com/dir/page.html")
	if got := plain.Resolve(ref, false); got != "http://a.com/a/./b/../c.html" {
		t.Errorf("without normalization = %q", got)
	}

	norm := NewResolver("http://a.com/dir/page.html", WithNormalization())
	if got := norm.Resolve(ref, false); got != "http://a.com/a/c.html" {
		t.Errorf("with normalization = %q", got)
	}
}

func TestDirectoryPath(t *testing.T) {
	r := NewResolver("http://a.com/dir/page.html")
	if got := r.DirectoryPath(); got != "a.com/dir" {
		t.Errorf("DirectoryPath() = %q, want %q", got, "a.com/dir")
	}
	r.Resolve("../x.html", false)
	if got := r.DirectoryPath(); got != "a.com" {
		t.Errorf("DirectoryPath() after Resolve = %q, want %q", got, "a.com")
	}
}

func TestParseDomain(t *testing.T) {
	tests := []struct {
		url                    string
		full, domain, subdomain string
	}{
		{"http://www.a.com/x", "http://www.a.com", "a.com", "a.com"},
		{"https://sales.www2.a.com?q", "https://sales.www2.a.com", "a.com", "www2.a.com"},
		{"http://b.com#top", "http://b.com", "b.com", "b.com"},
		{"http://localhost/x", "http://localhost", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			full, domain, sub := ParseDomain(tt.url)
			if full != tt.full || domain != tt.domain || sub != tt.subdomain {
				t.Errorf("ParseDomain(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.url, full, domain, sub, tt.full, tt.domain, tt.subdomain)
			}
		})
	}
}

func TestIsAbsolute(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"http://a.com", true},
		{"HTTPS://a.com", true},
		{"ftp://a.com/f", true},
		{"svn+ssh://a.com/r", true},
		{"mailto:me@a.com", true},
		{"JavaScript:void(0)", true},
		{"x.html", false},
		{"a/b://c", false},
		{"://x", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAbsolute(tt.ref); got != tt.want {
			t.Errorf("IsAbsolute(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestIsTopLevelDomain(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://a.com", true},
		{"http://a.com/", true},
		{"http://a.com/x", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsTopLevelDomain(tt.url); got != tt.want {
			t.Errorf("IsTopLevelDomain(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestParseTopLevelDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://www.a.com/x", "com"},
		{"a.co.uk", "co.uk"},
		{"www.a.org?x", "org"},
		{"localhost", ""},
	}

	for _, tt := range tests {
		if got := ParseTopLevelDomain(tt.url); got != tt.want {
			t.Errorf("ParseTopLevelDomain(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestParseImageName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"v.php?image=a.png&x=1", "a.png"},
		{"v.php?x=1&Image=b.gif", "b.gif"},
		{"v.php?x=1", ""},
		{"v.php", ""},
	}

	for _, tt := range tests {
		if got := ParseImageName(tt.url); got != tt.want {
			t.Errorf("ParseImageName(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
