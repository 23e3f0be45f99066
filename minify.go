package htmldiff

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

var (
	minifier *minify.M
	once     sync.Once
)

// getMinifier returns a configured HTML minifier (singleton). End tags,
// quotes and document tags are kept: minification here only collapses
// whitespace, it must not restructure the markup being compared.
func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.Add("text/html", &html.Minifier{
			KeepDocumentTags: true,
			KeepEndTags:      true,
			KeepQuotes:       true,
		})
	})
	return minifier
}

// minifyHTML collapses formatting-only whitespace ahead of parsing. If
// minification fails, the input is compared untouched.
func minifyHTML(htmlContent string) string {
	minified, err := getMinifier().String("text/html", htmlContent)
	if err != nil {
		return htmlContent
	}
	return minified
}
