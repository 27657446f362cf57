package extractor

import (
	"regexp"
	"strings"
)

// Stylesheet patterns. These are lexical scanners over raw CSS text, not a
// CSS grammar: no cascade, no selector resolution, declarations recognized
// by property name and the terminating semicolon.
var (
	// Exactly 3 or 6 hex digits, word-boundary terminated. 4- and 8-digit
	// alpha forms are not matched.
	hexColorRe = regexp.MustCompile(`#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`)

	rgbColorRe = regexp.MustCompile(`(?i)rgba?\s*\(\s*\d+\s*,\s*\d+\s*,\s*\d+(?:\s*,\s*[\d.]+)?\s*\)`)

	fontFamilyRe = regexp.MustCompile(`(?i)font-family\s*:\s*([^;]+);`)

	marginRe  = regexp.MustCompile(`(?i)margin(?:-\w+)?\s*:\s*([^;]+);`)
	paddingRe = regexp.MustCompile(`(?i)padding(?:-\w+)?\s*:\s*([^;]+);`)
)

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// ExtractColors pulls color literals out of CSS text. Hex matches are
// uppercased before deduplication; rgb()/rgba() matches are stored verbatim
// and routed by the "rgba" substring. Absence of matches yields empty
// collections, never an error.
func ExtractColors(cssText string) ColorSet {
	var set ColorSet

	hexes := hexColorRe.FindAllString(cssText, -1)
	upper := make([]string, 0, len(hexes))
	for _, h := range hexes {
		upper = append(upper, strings.ToUpper(h))
	}
	set.Hex = dedupe(upper)

	var rgb, rgba []string
	for _, m := range rgbColorRe.FindAllString(cssText, -1) {
		if strings.Contains(strings.ToLower(m), "rgba") {
			rgba = append(rgba, m)
		} else {
			rgb = append(rgb, m)
		}
	}
	set.RGB = dedupe(rgb)
	set.RGBA = dedupe(rgba)

	return set
}

// ExtractFonts pulls font-family declaration values out of CSS text, quotes
// stripped and whitespace trimmed, in first-seen order with duplicates
// dropped. A value containing a literal semicolon inside a quoted font name
// is truncated at that semicolon; the matcher stops at the first one.
func ExtractFonts(cssText string) []string {
	matches := fontFamilyRe.FindAllStringSubmatch(cssText, -1)

	fonts := make([]string, 0, len(matches))
	for _, m := range matches {
		fonts = append(fonts, strings.TrimSpace(quoteStripper.Replace(m[1])))
	}

	return dedupe(fonts)
}

// ExtractSpacing pulls margin and padding declaration values out of CSS
// text. Property names match margin/padding plus any -suffix variant
// (margin-top, padding-left, ...). Values are kept as opaque raw text with
// no unit parsing, deduplicated per collection.
func ExtractSpacing(cssText string) SpacingSet {
	return SpacingSet{
		Margins:  dedupe(captureValues(marginRe, cssText)),
		Paddings: dedupe(captureValues(paddingRe, cssText)),
	}
}

func captureValues(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatch(text, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, m[1])
	}
	return values
}
