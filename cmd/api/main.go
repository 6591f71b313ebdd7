package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/correctbuddy789/SEO-ContentGenerator/internal/handler"
	"github.com/correctbuddy789/SEO-ContentGenerator/pkg/content"
	"github.com/correctbuddy789/SEO-ContentGenerator/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	provider := os.Getenv("LLM_PROVIDER")
	modelName := os.Getenv("LLM_MODEL")

	factory := func(apiKey string, batchSize int, debug bool) (handler.ContentGenerator, error) {
		client, err := llm.NewClient(llm.Settings{
			Provider: provider,
			Model:    modelName,
			APIKey:   apiKey,
		})
		if err != nil {
			return nil, err
		}
		return content.NewGenerator(client, batchSize, debug), nil
	}

	generateHandler := handler.NewGenerateHandler(factory, os.Getenv(llm.APIKeyEnv(provider)))

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-API-Key"},
	}))

	r.POST("/generate", generateHandler.Generate)
	r.GET("/health", generateHandler.GetHealth)

	err := r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
