package ai

import (
	"strings"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
)

const titlePrefix = "title:"

// ParsedSummary is a model response split into its title and body
type ParsedSummary struct {
	Title   string
	Summary string
	// HasTitle is false when the placeholder title was used
	HasTitle bool
}

// ParseTitleAndSummary splits a summary response. When the first line starts
// with "Title:" (any case) it becomes the title and the remaining lines, trimmed,
// become the summary. Otherwise the placeholder title for jobID is used and the
// whole response is the summary.
func ParseTitleAndSummary(response, jobID string) ParsedSummary {
	first, rest, _ := strings.Cut(response, "\n")
	if strings.HasPrefix(strings.ToLower(first), titlePrefix) {
		return ParsedSummary{
			Title:    strings.TrimSpace(first[len(titlePrefix):]),
			Summary:  strings.TrimSpace(rest),
			HasTitle: true,
		}
	}
	return ParsedSummary{
		Title:   entities.PlaceholderTitle(jobID),
		Summary: response,
	}
}

// SummarySections is the fixed set of section headers the summary prompt asks for
var SummarySections = []string{"Key Discussion Points", "Decisions Made", "Action Items"}

// Sections returns the body of each fixed section present in a summary.
// Sections the model left out are absent from the map.
func Sections(summary string) map[string]string {
	sections := make(map[string]string)
	var current string
	var body strings.Builder
	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(body.String())
		}
		body.Reset()
	}
	for _, line := range strings.Split(summary, "\n") {
		if name, ok := sectionHeader(line); ok {
			flush()
			current = name
			// "**Decisions Made:** None." keeps inline content
			if _, after, found := strings.Cut(line, ":**"); found {
				body.WriteString(strings.TrimSpace(after))
				body.WriteString("\n")
			}
			continue
		}
		if current != "" {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	flush()
	return sections
}

func sectionHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimLeft(trimmed, "0123456789.-# ")
	for _, name := range SummarySections {
		if strings.HasPrefix(trimmed, "**"+name) {
			return name, true
		}
	}
	return "", false
}
