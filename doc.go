// Package designscan extracts a design system summary (colors, fonts,
// spacing, component occurrences) from the raw HTML/CSS text of a single
// web page and produces structured output (JSON or a markdown style guide).
//
// Extraction is pattern matching over markup and stylesheet text: no HTML
// tree construction, no CSS cascade, no selector resolution. Every
// extraction step is a pure transform of one string into a small record,
// and malformed input simply yields fewer matches, never an error. The
// tool performs no network I/O; content is supplied by the caller as
// already-fetched text or local files.
//
// The CLI lives in cmd/designscan; this root package exposes the same
// pipeline as a Go API so that callers can embed analysis in their own
// tools without shelling out.
//
// # Quick start
//
//	result, err := designscan.Run(designscan.Options{
//	    URL:      "https://example.com",
//	    HTMLPath: "page.html",
//	    CSSPath:  "page.css",
//	    Format:   designscan.FormatJSON,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output)
//
// The four extractors are also callable directly through pkg/extractor
// when the caller already holds the text in memory:
//
//	report := extractor.Analyze("https://example.com", htmlText, cssText)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Known matching limitations
//
// The lexical patterns carry a few documented edge cases: 4- and 8-digit
// hex colors are not matched, a font-family value containing a semicolon
// inside quotes is truncated at that semicolon, and nested or unclosed
// HTML tags produce implementation-defined fragment boundaries.
package designscan
