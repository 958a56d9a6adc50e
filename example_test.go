package htmltext_test

import (
	"fmt"
	"strings"

	"github.com/tsawler/htmltext"
)

func ExampleFromString() {
	text, _, _ := htmltext.FromString("<p>Fish &amp; chips</p>").Text()
	fmt.Println(strings.TrimSpace(text))
	// Output: Fish & chips
}

func ExampleExtractor_Links() {
	page := `<a href="../about.html">About</a> <img src="logo.png">`
	links, _, _ := htmltext.FromString(page).BaseURL("http://example.com/docs/").Links()
	for _, l := range links {
		fmt.Println(l.Kind, l.URL)
	}
	// Output:
	// normal http://example.com/about.html
	// image http://example.com/docs/logo.png
}

func ExampleFormatWarnings() {
	_, warnings, _ := htmltext.FromString("Tom &amp;amp; Jerry &copy 1940").Text()
	fmt.Println(htmltext.FormatWarnings(warnings))
	// Output:
	// 4: Ampersand incorrectly encoded in HTML entity: &amp;amp;
	// 20: Missing semicolon on HTML entity: &copy
}
