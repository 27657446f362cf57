package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/designscan/pkg/extractor"
)

// ToMarkdown transforms a design system report into a style-guide markdown
// document. Color and spacing values are rendered as CSS variable blocks
// ready to seed a design system; component occurrences are summarized in
// prose and tables.
func ToMarkdown(r *extractor.Report) string {
	var sb strings.Builder

	title := r.Domain
	if title == "" {
		title = r.URL
	}
	sb.WriteString(fmt.Sprintf("# Design System Report - %s\n\n", title))
	sb.WriteString(fmt.Sprintf("Extracted from `%s` at %s (schema %s).\n\n", r.URL, r.Metadata.AnalyzedAt, r.Metadata.Version))

	if r.Colors != nil {
		sb.WriteString("## Color Palette\n\n")
		sb.WriteString("```css\n")
		writeColorVars(&sb, "Hex", "color", sortedSet(r.Colors.Hex))
		writeColorVars(&sb, "RGB", "color-rgb", sortedSet(r.Colors.RGB))
		writeColorVars(&sb, "RGBA", "color-rgba", sortedSet(r.Colors.RGBA))
		sb.WriteString("```\n\n")
	}

	if r.Typography != nil && len(r.Typography.Fonts) > 0 {
		sb.WriteString("## Typography\n\n")
		sb.WriteString("Font stacks in discovery order (fallback order preserved):\n\n")
		for i, font := range r.Typography.Fonts {
			sb.WriteString(fmt.Sprintf("%d. `%s`\n", i+1, font))
		}
		sb.WriteString("\n")
	}

	if r.Spacing != nil && (len(r.Spacing.Margins) > 0 || len(r.Spacing.Paddings) > 0) {
		sb.WriteString("## Spacing\n\n")
		sb.WriteString("```css\n")
		writeColorVars(&sb, "Margins", "margin", sortedSet(r.Spacing.Margins))
		writeColorVars(&sb, "Paddings", "padding", sortedSet(r.Spacing.Paddings))
		sb.WriteString("```\n\n")
	}

	if r.Components != nil {
		c := r.Components
		sb.WriteString("## Components\n\n")
		sb.WriteString(fmt.Sprintf("- **Buttons**: %d sampled\n", len(c.Buttons)))
		sb.WriteString(fmt.Sprintf("- **Forms**: %d\n", c.Forms))
		sb.WriteString(fmt.Sprintf("- **Navigation**: %d\n", c.Navigation))
		sb.WriteString("\n")

		if len(c.Buttons) > 0 {
			sb.WriteString("### Button Samples\n\n")
			sb.WriteString("```html\n")
			for _, b := range c.Buttons {
				sb.WriteString(b)
				sb.WriteString("\n")
			}
			sb.WriteString("```\n\n")
		}

		if len(c.Headings) > 0 {
			sb.WriteString("### Heading Hierarchy\n\n")
			sb.WriteString("| Level | Count | First Example |\n")
			sb.WriteString("|-------|-------|---------------|\n")
			for _, h := range c.Headings {
				example := ""
				if len(h.Examples) > 0 {
					example = strings.ReplaceAll(h.Examples[0], "\n", " ")
				}
				sb.WriteString(fmt.Sprintf("| h%d | %d | %s |\n", h.Level, h.Count, example))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// writeColorVars renders one commented block of numbered CSS variables for
// a category. Empty categories render nothing.
func writeColorVars(sb *strings.Builder, label, prefix string, values []string) {
	if len(values) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("/* %s */\n", label))
	for i, v := range values {
		sb.WriteString(fmt.Sprintf("--%s-%d: %s;\n", prefix, i+1, v))
	}
}
