package content

import (
	"log/slog"
	"regexp"
	"strings"
)

// MaxKeywords caps the keyword list for one generation run.
const MaxKeywords = 30

var keywordSep = regexp.MustCompile(`[,\n]`)

// SplitKeywords turns raw comma- or newline-separated operator input into
// an ordered keyword list, dropping empty entries.
func SplitKeywords(input string) []string {
	var keywords []string
	for _, k := range keywordSep.Split(input, -1) {
		k = strings.TrimSpace(k)
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// CapKeywords truncates the list to the first MaxKeywords entries.
func CapKeywords(keywords []string) []string {
	if len(keywords) > MaxKeywords {
		slog.Warn("keyword list truncated", "max", MaxKeywords, "dropped", len(keywords)-MaxKeywords)
		return keywords[:MaxKeywords]
	}
	return keywords
}
