package report

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// ValidateMarkdown checks that the rendered memo parses as Markdown using
// Goldmark. Goldmark is very permissive, so this is a basic sanity gate for
// anything headed to a rendering frontend.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	doc := parser.Parse(reader)
	return doc != nil
}
