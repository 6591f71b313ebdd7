package content

import (
	"fmt"
	"strings"
)

// Delimiter is the literal token separating the seven fields within one
// response line.
const Delimiter = "|||"

const promptHeader = `Context: You are generating content for a new internal Intrafeed at %s.

ABSOLUTE OUTPUT FORMAT REQUIREMENTS:
- Output MUST be plain text.
- For EACH keyword, create ONE SEPARATE line of output.
- EACH line MUST contain the following fields, separated by '|||': Title, Post Body, Comment 1, Comment 2, Comment 3, Comment 4, Comment 5
- NO headers, explanations, or newlines WITHIN a field.

Directives:
- Reddit style posts.
- Some typos/informal language.
- Add %s details.
- Vary comment lengths. Aim for 500-700 characters for comments.
- Few emojis.
- Based on reviews, but rephrase.
- Factual or questions.
- Specific but no false info.
- Anonymous posts.
- DETAILED and ELABORATE comments.

INSTRUCTION LOOP:
`

// BuildPrompt renders the instruction prompt for one keyword batch. The
// company name and keywords are interpolated literally; a value containing
// the delimiter token will desynchronize field counts downstream.
func BuildPrompt(companyName string, batch []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(promptHeader, companyName, companyName))
	for i, keyword := range batch {
		sb.WriteString(fmt.Sprintf("\n--- Keyword %d: %s ---\n", i+1, keyword))
		sb.WriteString(fmt.Sprintf("Generate ONE line for '%s': Title|||Post Body|||Comment 1|||Comment 2|||Comment 3|||Comment 4|||Comment 5\n", keyword))
	}
	return sb.String()
}
