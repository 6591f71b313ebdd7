package content

import (
	"log/slog"
	"regexp"

	"github.com/correctbuddy789/SEO-ContentGenerator/internal/model"
)

var delimiterPattern = regexp.MustCompile(`\s*\|\|\|\s*`)

const snippetLen = 100

// ParseLines tokenizes each raw response line into a Record. Title and
// post body are mandatory; up to five trailing comments are optional and
// default to empty strings. Malformed lines are dropped with a warning
// and never affect their neighbors.
func ParseLines(lines []string, debug bool) model.ResultTable {
	table := model.ResultTable{}
	for _, line := range lines {
		parts := splitFields(line)

		if debug {
			slog.Debug("split line", "fields", len(parts), "parts", parts)
		}

		if len(parts) < 2 {
			slog.Warn("too few fields in line, skipping", "fields", len(parts), "snippet", snippet(line))
			continue
		}

		rec := model.Record{
			Title:    Normalize(parts[0]),
			PostBody: Normalize(parts[1]),
		}
		for i := 0; i < model.NumComments && i+2 < len(parts); i++ {
			rec.Comments[i] = Normalize(parts[i+2])
		}
		table = append(table, rec)
	}
	return table
}

// splitFields splits one line on the delimiter token, tolerating
// surrounding whitespace, and drops empty fragments.
func splitFields(line string) []string {
	var parts []string
	for _, p := range delimiterPattern.Split(line, -1) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func snippet(line string) string {
	if len(line) <= snippetLen {
		return line
	}
	return line[:snippetLen] + "..."
}
