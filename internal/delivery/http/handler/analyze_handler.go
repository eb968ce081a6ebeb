package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/crowd-detector/internal/pkg/errors"
	"github.com/crowd-detector/internal/pkg/utils"
	"github.com/crowd-detector/internal/pkg/validator"
	"github.com/crowd-detector/internal/usecase"
	"github.com/crowd-detector/internal/usecase/dto"
)

// AnalyzeHandler - обработчик запросов на анализ изображений
type AnalyzeHandler struct {
	analyzeUC *usecase.AnalyzeUseCase
	logger    *zap.Logger
}

// NewAnalyzeHandler - создание нового AnalyzeHandler
func NewAnalyzeHandler(analyzeUC *usecase.AnalyzeUseCase, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzeUC: analyzeUC,
		logger:    logger,
	}
}

// AnalyzeImage godoc
// @Summary Анализ изображения толпы
// @Description Принимает одно изображение (multipart/form-data) и возвращает структурированную оценку плотности толпы, а также содержимое табло отправлений, если оно обнаружено на снимке
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Изображение (до 5 MiB)"
// @Param user_id query string false "Идентификатор вызывающего (для будущего аудита)"
// @Success 200 {object} domain.AnalysisResult
// @Failure 400 {object} utils.ErrorResponse "Пустой файл или отсутствует поле file"
// @Failure 413 {object} utils.ErrorResponse "Файл превышает лимит размера"
// @Failure 500 {object} utils.ErrorResponse "Ошибка подготовки изображения или нормализации ответа"
// @Failure 502 {object} utils.ErrorResponse "Ошибка модели зрения или неразбираемый ответ"
// @Router /analyze-image [post]
func (h *AnalyzeHandler) AnalyzeImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, errors.ErrMissingFile)
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		return utils.SendError(c, errors.ErrImagePreparation)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", zap.Error(err))
		return utils.SendError(c, errors.ErrImagePreparation)
	}

	req := dto.AnalyzeRequest{
		Content:     content,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		UserID:      c.Query("user_id"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.analyzeUC.Analyze(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	// Ответ - сериализованный AnalysisResult без обёртки
	return c.JSON(result)
}
