package cpfetch

import (
	"fmt"
	"strings"
)

// FormatMarkdown renders a problem for display.
// Sections are separated by blank lines; empty lists are omitted.
func FormatMarkdown(data *ProblemData) string {
	if data == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", data.Title)
	fmt.Fprintf(&b, "- Time limit: %s\n", data.TimeLimit)
	fmt.Fprintf(&b, "- Memory limit: %s\n", data.MemoryLimit)
	fmt.Fprintf(&b, "- Difficulty: %s\n", data.Difficulty)
	fmt.Fprintf(&b, "- Source: %s\n", data.Source)
	if len(data.Tags) > 0 {
		fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(data.Tags, ", "))
	}

	fmt.Fprintf(&b, "\n## Description\n%s\n", data.Description)
	fmt.Fprintf(&b, "\n## Input\n%s\n", data.InputFormat)
	fmt.Fprintf(&b, "\n## Output\n%s\n", data.OutputFormat)

	if len(data.Constraints) > 0 {
		b.WriteString("\n## Constraints\n")
		for _, c := range data.Constraints {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	for i, tc := range data.SampleTests {
		fmt.Fprintf(&b, "\n## Sample %d\nInput:\n```\n%s\n```\nOutput:\n```\n%s\n```\n", i+1, tc.Input, tc.Output)
		if tc.Explanation != "" {
			fmt.Fprintf(&b, "%s\n", tc.Explanation)
		}
	}

	return b.String()
}
