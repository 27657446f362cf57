package extractor

import (
	"net/url"
	"time"
)

// SchemaVersion identifies the report layout. Bump when field names or
// presence rules change.
const SchemaVersion = "1.0"

// Report represents the complete design system summary extracted from one
// page's content. It includes the color palette, font stacks, spacing
// declarations, and structural component occurrences, keyed by category.
//
// Colors, Typography, and Spacing are nil when no CSS text was supplied;
// Components is nil when no HTML text was supplied.
type Report struct {
	URL        string            `json:"url"`
	Domain     string            `json:"domain"`
	Colors     *ColorSet         `json:"colors,omitempty"`
	Typography *Typography       `json:"typography,omitempty"`
	Spacing    *SpacingSet       `json:"spacing,omitempty"`
	Components *ComponentSummary `json:"components,omitempty"`
	Metadata   Metadata          `json:"metadata"`
}

// ColorSet holds deduplicated color literals grouped by syntax. Hex values
// are uppercased before deduplication so #fff and #FFF collapse to one
// entry. Entry order carries no meaning.
type ColorSet struct {
	Hex  []string `json:"hex,omitempty"`
	RGB  []string `json:"rgb,omitempty"`
	RGBA []string `json:"rgba,omitempty"`
}

// Typography holds the font-family stacks found in the stylesheet, in
// first-seen order. Order is meaningful here: a font stack's fallback
// order is informative to a reader.
type Typography struct {
	Fonts []string `json:"fonts,omitempty"`
}

// SpacingSet holds raw margin and padding declaration values, deduplicated.
// Values are opaque text; 10px and 10.0px are distinct entries. Entry order
// carries no meaning.
type SpacingSet struct {
	Margins  []string `json:"margins,omitempty"`
	Paddings []string `json:"paddings,omitempty"`
}

// ComponentSummary describes structural element occurrences in the markup:
// a bounded sample of button fragments, form and nav counts, and per-level
// heading groups.
type ComponentSummary struct {
	Buttons    []string       `json:"buttons,omitempty"`
	Forms      int            `json:"forms"`
	Navigation int            `json:"navigation"`
	Headings   []HeadingGroup `json:"headings,omitempty"`
}

// HeadingGroup summarizes one heading level (1-6) that occurs at least once:
// total occurrences plus a bounded sample of inner content captures.
type HeadingGroup struct {
	Level    int      `json:"level"`
	Count    int      `json:"count"`
	Examples []string `json:"examples,omitempty"`
}

// Metadata carries fixed report metadata: the schema version and the
// analysis timestamp.
type Metadata struct {
	Version    string `json:"version"`
	AnalyzedAt string `json:"analyzed_at"`
}

// Analyze runs every extractor applicable to the supplied content and
// assembles one report. An empty htmlText or cssText means that content was
// not supplied, and the corresponding report fields stay nil.
//
// Analyze is total over arbitrary input: malformed text yields fewer or no
// matches, never an error, and no network access occurs. Content must be
// supplied by the caller as already-fetched text.
func Analyze(rawURL, htmlText, cssText string) *Report {
	report := &Report{
		URL:    rawURL,
		Domain: Domain(rawURL),
		Metadata: Metadata{
			Version:    SchemaVersion,
			AnalyzedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}

	if cssText != "" {
		colors := ExtractColors(cssText)
		report.Colors = &colors

		report.Typography = &Typography{Fonts: ExtractFonts(cssText)}

		spacing := ExtractSpacing(cssText)
		report.Spacing = &spacing
	}

	if htmlText != "" {
		components := ScanComponents(htmlText)
		report.Components = &components
	}

	return report
}

// Domain returns the network-location component of rawURL: scheme excluded,
// port included if present, path/query/fragment excluded. A URL that cannot
// be parsed or carries no host yields "".
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// dedupe removes duplicate values from a slice, keeping only the first
// occurrence of each and preserving encounter order.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		if !seen[v] {
			result = append(result, v)
			seen[v] = true
		}
	}

	return result
}
