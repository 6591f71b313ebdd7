package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/correctbuddy789/SEO-ContentGenerator/internal/model"
	"github.com/correctbuddy789/SEO-ContentGenerator/pkg/content"
)

const csvFilename = "intrafeed_content.csv"

// ContentGenerator is what the handler needs from the pipeline.
type ContentGenerator interface {
	Generate(ctx context.Context, companyName string, keywords []string) []string
}

// GeneratorFactory builds one generator per request so the operator's API
// key is never retained by the core.
type GeneratorFactory func(apiKey string, batchSize int, debug bool) (ContentGenerator, error)

type GenerateHandler struct {
	newGenerator GeneratorFactory
	fallbackKey  string
}

func NewGenerateHandler(factory GeneratorFactory, fallbackKey string) *GenerateHandler {
	return &GenerateHandler{newGenerator: factory, fallbackKey: fallbackKey}
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.CompanyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company name is required"})
		return
	}

	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = content.SplitKeywords(req.KeywordText)
	}
	if len(keywords) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one keyword is required"})
		return
	}

	apiKey := c.GetHeader("X-API-Key")
	if apiKey == "" {
		apiKey = h.fallbackKey
	}
	if apiKey == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
		return
	}

	batchSize := req.BatchSize
	if batchSize <= 0 {
		batchSize = content.DefaultBatchSize
	}

	generator, err := h.newGenerator(apiKey, batchSize, req.Debug)
	if err != nil {
		slog.Error("error building generator", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Generator configuration error"})
		return
	}

	lines := generator.Generate(c.Request.Context(), req.CompanyName, keywords)
	table := content.ParseLines(lines, req.Debug)

	if len(table) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "No content generated. Check API key and keywords."})
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Disposition", `attachment; filename="`+csvFilename+`"`)
		c.Header("Content-Type", "text/csv")
		if err := model.WriteCSV(c.Writer, table); err != nil {
			slog.Error("error writing csv", "error", err)
		}
		return
	}

	c.JSON(http.StatusOK, toGenerateResponse(table))
}

func (h *GenerateHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func toGenerateResponse(table model.ResultTable) GenerateResponse {
	posts := make([]PostResponse, len(table))
	for i, r := range table {
		r := r // per-iteration copy; Comments[:] below must not alias the reused loop variable under go <1.22
		posts[i] = PostResponse{
			Title:    r.Title,
			PostBody: r.PostBody,
			Comments: r.Comments[:],
		}
	}
	return GenerateResponse{Posts: posts, Total: len(posts)}
}
