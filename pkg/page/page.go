// Package page loads already-fetched page content from local files and
// mines the CSS a page embeds in its own markup. It never touches the
// network: external stylesheet references are reported, not fetched.
package page

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Load reads one local file and returns its content as text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// EmbeddedCSS collects the CSS carried inside an HTML document: the text of
// every <style> element followed by the declarations of every style
// attribute. Attribute values get a terminating semicolon appended when
// missing so their last declaration is recognizable downstream.
//
// Unparseable input yields "". Like the extractors, this degrades to empty
// output instead of failing.
func EmbeddedCSS(htmlText string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return ""
	}

	var sb strings.Builder

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		if css := strings.TrimSpace(s.Text()); css != "" {
			sb.WriteString(css)
			sb.WriteString("\n")
		}
	})

	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		decl := strings.TrimSpace(s.AttrOr("style", ""))
		if decl == "" {
			return
		}
		if !strings.HasSuffix(decl, ";") {
			decl += ";"
		}
		sb.WriteString(decl)
		sb.WriteString("\n")
	})

	return sb.String()
}

// StylesheetLinks returns the href of every <link rel="stylesheet"> in the
// document, in document order. Callers surface these to the user; fetching
// them is out of scope.
func StylesheetLinks(htmlText string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil
	}

	var hrefs []string
	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		if href := strings.TrimSpace(s.AttrOr("href", "")); href != "" {
			hrefs = append(hrefs, href)
		}
	})

	return hrefs
}
