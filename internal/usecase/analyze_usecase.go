package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/crowd-detector/internal/domain"
	"github.com/crowd-detector/internal/domain/repository"
	"github.com/crowd-detector/internal/pkg/errors"
	"github.com/crowd-detector/internal/usecase/dto"
)

const defaultMIMEType = "image/jpeg"

const systemPrompt = `
You are a safety-first multimodal vision assistant. Analyze the provided image and return ONLY a JSON object (no surrounding explanation or markdown).

Required fields:
 - people_count: integer (estimated number of people visible in the image)
 - crowd_score: integer 1-10 (1 = empty, 10 = extremely crowded)
 - crowd_label: string ("Low", "Medium", or "High")
 - confidence: float 0-100 (how confident you are about the count & score)
 - rationale: short string (1-2 sentences) explaining how you derived the result

Additional fields for departure board detection:
 - screen_detected: boolean (true if any screen, monitor, display board, or information board is visible in the image)
 - departure_type: string (one of: "flight", "train", "bus", "subway", "ferry", or "none" if no departure board detected)
 - departure_info: array of objects (only if screen_detected is true). Each object should contain:
   * flight_number or train_number or route_number: string (the identifier)
   * destination: string (destination city/station name)
   * departure_time: string (scheduled departure time if visible)
   * status: string (e.g., "On Time", "Delayed", "Boarding", "Gate", "Platform", etc.)
   * gate or platform: string (if visible on the board)

   If multiple departures are visible, include all of them in the array. If only partial information is visible, include what you can read.

If uncertain, set confidence lower and approximate the people_count as best as possible.
If no screen/board is detected, set screen_detected to false, departure_type to "none", and departure_info to an empty array.

Return the JSON object and nothing else.
`

// AnalyzeUseCase - use case анализа изображения: валидация загрузки,
// вызов модели зрения, извлечение и нормализация JSON из её ответа
type AnalyzeUseCase struct {
	visionModel    repository.VisionModel
	logger         *zap.Logger
	maxUploadBytes int64
}

// NewAnalyzeUseCase - создание нового AnalyzeUseCase
func NewAnalyzeUseCase(
	visionModel repository.VisionModel,
	logger *zap.Logger,
	maxUploadBytes int64,
) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		visionModel:    visionModel,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// Analyze - анализ одного изображения. Поток строго линейный:
// валидация -> запрос к модели -> извлечение JSON -> нормализация.
// Ошибки не ретраятся; наружу уходят только фиксированные AppError.
func (uc *AnalyzeUseCase) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*domain.AnalysisResult, error) {
	if len(req.Content) == 0 {
		return nil, errors.ErrEmptyFile
	}
	if int64(len(req.Content)) > uc.maxUploadBytes {
		return nil, errors.FileTooLarge(uc.maxUploadBytes)
	}

	mimeType := req.ContentType
	if mimeType == "" {
		mimeType = defaultMIMEType
	}

	rawText, err := uc.visionModel.Generate(ctx, strings.TrimSpace(systemPrompt), req.Content, mimeType)
	if err != nil {
		uc.logger.Error("Vision model request failed",
			zap.Error(err),
			zap.String("user_id", req.UserID),
			zap.Int("image_bytes", len(req.Content)))
		return nil, errors.ErrVisionModel
	}

	parsed, err := extractFirstJSON(rawText)
	if err != nil {
		uc.logger.Error("Failed to parse JSON from model response",
			zap.Error(err),
			zap.Int("raw_text_chars", len(rawText)))
		return nil, errors.ErrModelOutputInvalid
	}

	result, err := normalizeAnalysis(parsed)
	if err != nil {
		uc.logger.Error("Failed to normalize model JSON", zap.Error(err))
		return nil, errors.ErrNormalization
	}

	return result, nil
}
