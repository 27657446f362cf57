package designscan

import (
	"encoding/json"

	"github.com/hellenic-development/designscan/pkg/extractor"
)

// ExampleReport returns a fixed illustrative report as indented JSON for
// the given URL. Only the url and domain fields derive from the argument;
// the rest is canned sample data standing in for an external fetch+render
// capability that is out of scope. Kept separate from the real pipeline so
// demo output is never mistaken for extraction output.
func ExampleReport(rawURL string) string {
	example := struct {
		URL    string `json:"url"`
		Domain string `json:"domain"`
		Colors struct {
			Hex []string `json:"hex"`
			RGB []string `json:"rgb"`
		} `json:"colors"`
		Typography struct {
			Fonts []string `json:"fonts"`
		} `json:"typography"`
		Components struct {
			Buttons    string `json:"buttons"`
			Forms      string `json:"forms"`
			Navigation string `json:"navigation"`
		} `json:"components"`
	}{
		URL:    rawURL,
		Domain: extractor.Domain(rawURL),
	}

	example.Colors.Hex = []string{"#378DFF", "#FFFFFF", "#333333"}
	example.Colors.RGB = []string{"rgb(55, 141, 255)", "rgb(51, 51, 51)"}
	example.Typography.Fonts = []string{"Inter", "Helvetica Neue", "Arial", "sans-serif"}
	example.Components.Buttons = "Detected"
	example.Components.Forms = "Detected"
	example.Components.Navigation = "Detected"

	data, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		// A fixed struct of strings cannot fail to encode.
		return "{}"
	}

	return string(data)
}
