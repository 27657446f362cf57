package extractor

import (
	"fmt"
	"regexp"
)

// Example caps keep the report readable when a page repeats an element
// hundreds of times. Counts stay exact; only samples are bounded.
const (
	maxButtonExamples  = 5
	maxHeadingExamples = 3
)

// Markup patterns. Best-effort lexical scanning: case-insensitive,
// matching across line breaks, non-greedy inner content. Nested same-name
// tags and unclosed tags are outside the contract.
var (
	buttonRe = regexp.MustCompile(`(?is)<button[^>]*>.*?</button>`)
	formRe   = regexp.MustCompile(`(?is)<form[^>]*>.*?</form>`)
	navRe    = regexp.MustCompile(`(?is)<nav[^>]*>.*?</nav>`)

	headingRes = compileHeadingPatterns()
)

func compileHeadingPatterns() [6]*regexp.Regexp {
	var res [6]*regexp.Regexp
	for i := range res {
		level := i + 1
		res[i] = regexp.MustCompile(fmt.Sprintf(`(?is)<h%d[^>]*>(.*?)</h%d>`, level, level))
	}
	return res
}

// ScanComponents pulls structural element occurrences out of HTML text:
// the first few button fragments verbatim, exact form and nav counts, and
// one group per heading level that occurs, in increasing level order.
func ScanComponents(htmlText string) ComponentSummary {
	summary := ComponentSummary{
		Forms:      len(formRe.FindAllString(htmlText, -1)),
		Navigation: len(navRe.FindAllString(htmlText, -1)),
	}

	buttons := buttonRe.FindAllString(htmlText, -1)
	if len(buttons) > maxButtonExamples {
		buttons = buttons[:maxButtonExamples]
	}
	summary.Buttons = buttons

	for i, re := range headingRes {
		matches := re.FindAllStringSubmatch(htmlText, -1)
		if len(matches) == 0 {
			continue
		}

		group := HeadingGroup{Level: i + 1, Count: len(matches)}
		for j, m := range matches {
			if j == maxHeadingExamples {
				break
			}
			group.Examples = append(group.Examples, m[1])
		}
		summary.Headings = append(summary.Headings, group)
	}

	return summary
}
