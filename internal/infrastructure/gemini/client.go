package gemini

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/crowd-detector/internal/config"
	"github.com/crowd-detector/internal/domain/repository"
)

type client struct {
	genai  *genai.Client
	model  string
	logger *zap.Logger
}

// NewVisionClient создает новый клиент для Gemini API
func NewVisionClient(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (repository.VisionModel, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	genaiClient, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &client{
		genai:  genaiClient,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Generate отправляет промпт и изображение в Gemini, возвращает сырой текст ответа
func (c *client) Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	c.logger.Debug("Calling Gemini generateContent",
		zap.String("model", c.model),
		zap.String("mime_type", mimeType),
		zap.Int("image_bytes", len(image)))

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		c.logger.Error("Gemini API call failed", zap.Error(err))
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	// Text() returns "" when the model produced no text parts
	text := resp.Text()

	c.logger.Debug("Gemini generateContent successful",
		zap.Int("response_chars", len(text)))

	return text, nil
}
