package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/correctbuddy789/SEO-ContentGenerator/internal/model"
	"github.com/correctbuddy789/SEO-ContentGenerator/pkg/content"
	"github.com/correctbuddy789/SEO-ContentGenerator/pkg/llm"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	company := flag.String("company", "", "company name to seed posts with")
	keywordInput := flag.String("keywords", "", "comma- or newline-separated keywords (max 30)")
	batchSize := flag.Int("batch", content.DefaultBatchSize, "keywords per completion call")
	provider := flag.String("provider", llm.ProviderPerplexity, "llm provider: perplexity, openai, or anthropic")
	modelName := flag.String("model", "", "model id (provider default when empty)")
	output := flag.String("o", "", "output CSV path (stdout when empty)")
	debug := flag.Bool("debug", false, "log raw model responses")
	flag.Parse()

	keywords := content.SplitKeywords(*keywordInput)
	if *company == "" || len(keywords) == 0 {
		log.Fatal("both -company and -keywords are required")
	}

	apiKey := os.Getenv(llm.APIKeyEnv(*provider))
	if apiKey == "" {
		log.Fatalf("%s environment variable is not set", llm.APIKeyEnv(*provider))
	}

	client, err := llm.NewClient(llm.Settings{
		Provider: *provider,
		Model:    *modelName,
		APIKey:   apiKey,
	})
	if err != nil {
		log.Fatalf("error building llm client: %v", err)
	}

	generator := content.NewGenerator(client, *batchSize, *debug)

	slog.Info("generating content", "company", *company, "keywords", len(keywords), "batch_size", *batchSize)

	lines := generator.Generate(context.Background(), *company, keywords)
	table := content.ParseLines(lines, *debug)

	if len(table) == 0 {
		log.Fatal("no content generated successfully; check API key and keywords")
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("error creating output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	if err := model.WriteCSV(out, table); err != nil {
		log.Fatalf("error writing csv: %v", err)
	}

	slog.Info("content generated", "posts", len(table))
}
