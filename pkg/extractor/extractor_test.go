package extractor

import (
	"testing"
	"time"
)

func TestDomain(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "plain https URL",
			url:  "https://example.com",
			want: "example.com",
		},
		{
			name: "path and query excluded",
			url:  "https://example.com/pricing?plan=pro#top",
			want: "example.com",
		},
		{
			name: "port included",
			url:  "http://localhost:8080/index.html",
			want: "localhost:8080",
		},
		{
			name: "subdomain kept",
			url:  "https://docs.example.co.uk/guide",
			want: "docs.example.co.uk",
		},
		{
			name: "no scheme means no host",
			url:  "example.com/page",
			want: "",
		},
		{
			name: "unparseable URL",
			url:  "http://exa mple.com",
			want: "",
		},
		{
			name: "empty URL",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Domain(tt.url); got != tt.want {
				t.Errorf("Domain(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestAnalyzeNoContent(t *testing.T) {
	report := Analyze("https://example.com", "", "")

	if report.URL != "https://example.com" {
		t.Errorf("URL = %q", report.URL)
	}
	if report.Domain != "example.com" {
		t.Errorf("Domain = %q, want example.com", report.Domain)
	}
	if report.Colors != nil || report.Typography != nil || report.Spacing != nil {
		t.Error("CSS-derived fields must be absent when no CSS text was supplied")
	}
	if report.Components != nil {
		t.Error("Components must be absent when no HTML text was supplied")
	}
	if report.Metadata.Version != SchemaVersion {
		t.Errorf("Metadata.Version = %q, want %q", report.Metadata.Version, SchemaVersion)
	}
	if _, err := time.Parse(time.RFC3339, report.Metadata.AnalyzedAt); err != nil {
		t.Errorf("Metadata.AnalyzedAt = %q, not RFC3339: %v", report.Metadata.AnalyzedAt, err)
	}
}

func TestAnalyzeCSSOnly(t *testing.T) {
	css := `body { color: #333; margin: 0; font-family: Inter, sans-serif; }`

	report := Analyze("https://example.com", "", css)

	if report.Colors == nil || len(report.Colors.Hex) != 1 || report.Colors.Hex[0] != "#333" {
		t.Errorf("Colors = %+v, want one hex entry #333", report.Colors)
	}
	if report.Typography == nil || len(report.Typography.Fonts) != 1 {
		t.Errorf("Typography = %+v, want one font stack", report.Typography)
	}
	if report.Spacing == nil || len(report.Spacing.Margins) != 1 {
		t.Errorf("Spacing = %+v, want one margin value", report.Spacing)
	}
	if report.Components != nil {
		t.Error("Components must stay absent without HTML text")
	}
}

func TestAnalyzeHTMLOnly(t *testing.T) {
	html := `<nav>x</nav><h1>Title</h1><button>Go</button>`

	report := Analyze("https://example.com", html, "")

	if report.Components == nil {
		t.Fatal("Components must be present when HTML text is supplied")
	}
	if report.Components.Navigation != 1 || len(report.Components.Buttons) != 1 {
		t.Errorf("Components = %+v", report.Components)
	}
	if report.Colors != nil || report.Typography != nil || report.Spacing != nil {
		t.Error("CSS-derived fields must stay absent without CSS text")
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{
			name:   "preserves first-seen order",
			values: []string{"b", "a", "b", "c", "a"},
			want:   []string{"b", "a", "c"},
		},
		{
			name:   "no duplicates",
			values: []string{"x", "y"},
			want:   []string{"x", "y"},
		},
		{
			name:   "empty input",
			values: []string{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupe(tt.values)
			if len(got) != len(tt.want) {
				t.Fatalf("dedupe() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("dedupe()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
