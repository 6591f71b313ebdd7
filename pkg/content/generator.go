package content

import (
	"context"
	"log/slog"
	"strings"

	"github.com/correctbuddy789/SEO-ContentGenerator/pkg/llm"
)

// DefaultBatchSize matches the original three-keywords-per-call setup.
// Batch size 1 (one keyword per call) is equally valid.
const DefaultBatchSize = 3

// Generator drives the prompt/completion loop, one batch at a time.
type Generator struct {
	client    llm.CompletionClient
	batchSize int
	debug     bool
}

func NewGenerator(client llm.CompletionClient, batchSize int, debug bool) *Generator {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Generator{client: client, batchSize: batchSize, debug: debug}
}

// Batches partitions keywords into ordered contiguous groups of at most
// size entries, covering the list with no overlap.
func Batches(keywords []string, size int) [][]string {
	var batches [][]string
	for i := 0; i < len(keywords); i += size {
		end := i + size
		if end > len(keywords) {
			end = len(keywords)
		}
		batches = append(batches, keywords[i:end])
	}
	return batches
}

// Generate builds and sends one prompt per batch, sequentially, and
// returns every non-empty trimmed response line in production order. A
// failed batch contributes zero lines; the run continues with the rest.
func (g *Generator) Generate(ctx context.Context, companyName string, keywords []string) []string {
	keywords = CapKeywords(keywords)

	var lines []string
	for _, batch := range Batches(keywords, g.batchSize) {
		prompt := BuildPrompt(companyName, batch)

		raw, err := g.client.Complete(ctx, prompt)
		if err != nil {
			slog.Error("completion failed for batch, skipping", "keywords", batch, "error", err)
			continue
		}

		if g.debug {
			slog.Debug("raw batch completion", "keywords", batch, "response", raw)
		}

		for _, line := range strings.Split(raw, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}
