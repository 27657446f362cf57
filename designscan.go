package designscan

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/designscan/pkg/extractor"
	"github.com/hellenic-development/designscan/pkg/formatter"
	"github.com/hellenic-development/designscan/pkg/page"
)

// Version is the designscan release version.
const Version = "1.0.0"

// Output formats accepted by Options.Format.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Options configures one analysis run.
type Options struct {
	URL      string // page URL the content belongs to
	HTMLPath string // local file with already-fetched HTML, "" = none
	CSSPath  string // local file with already-fetched CSS, "" = none
	Format   string // "json" (default) or "markdown"
	Logger   Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the analysis output.
type Result struct {
	Report *extractor.Report
	Output string // rendered report in the requested format
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// Run executes the analysis pipeline: load the supplied content files, mine
// CSS embedded in the HTML document, extract the design system summary, and
// render it. The tool never fetches anything itself; content must already
// be on disk.
func Run(opts Options) (*Result, error) {
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	if opts.Format != FormatJSON && opts.Format != FormatMarkdown {
		return nil, fmt.Errorf("invalid output format %q (must be %s or %s)", opts.Format, FormatJSON, FormatMarkdown)
	}

	var htmlText, cssText string
	var err error

	if opts.HTMLPath != "" {
		opts.logInfo("Loading HTML from %s...", opts.HTMLPath)
		htmlText, err = page.Load(opts.HTMLPath)
		if err != nil {
			return nil, fmt.Errorf("load html: %w", err)
		}
	}

	if opts.CSSPath != "" {
		opts.logInfo("Loading CSS from %s...", opts.CSSPath)
		cssText, err = page.Load(opts.CSSPath)
		if err != nil {
			return nil, fmt.Errorf("load css: %w", err)
		}
	}

	if htmlText != "" {
		if links := page.StylesheetLinks(htmlText); len(links) > 0 {
			opts.logInfo("%d external stylesheet(s) referenced, not fetched: %s", len(links), strings.Join(links, ", "))
		}

		if embedded := page.EmbeddedCSS(htmlText); embedded != "" {
			opts.logInfo("Found embedded CSS in the HTML document")
			if cssText != "" {
				cssText += "\n"
			}
			cssText += embedded
		}
	}

	opts.logInfo("Extracting design system summary...")
	report := extractor.Analyze(opts.URL, htmlText, cssText)

	var output string
	switch opts.Format {
	case FormatJSON:
		output, err = formatter.ToJSON(report)
		if err != nil {
			return nil, err
		}
	case FormatMarkdown:
		output = formatter.ToMarkdown(report)
	}

	return &Result{Report: report, Output: output}, nil
}
