package formatter

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hellenic-development/designscan/pkg/extractor"
)

// ToJSON renders a report as two-space-indented JSON. Set-typed collections
// (colors, spacing) are sorted before encoding so discovery order never
// leaks into documents; font stacks and heading groups keep their order.
// The input report is not modified.
func ToJSON(r *extractor.Report) (string, error) {
	out := *r

	if r.Colors != nil {
		out.Colors = &extractor.ColorSet{
			Hex:  sortedSet(r.Colors.Hex),
			RGB:  sortedSet(r.Colors.RGB),
			RGBA: sortedSet(r.Colors.RGBA),
		}
	}
	if r.Spacing != nil {
		out.Spacing = &extractor.SpacingSet{
			Margins:  sortedSet(r.Spacing.Margins),
			Paddings: sortedSet(r.Spacing.Paddings),
		}
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	return string(data), nil
}

// sortedSet returns a sorted copy of an unordered collection.
func sortedSet(values []string) []string {
	if len(values) == 0 {
		return values
	}

	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}
