package errors

import (
	"fmt"
	"net/http"
)

var (
	ErrEmptyFile = New(
		"EMPTY_FILE",
		"Empty file",
		http.StatusBadRequest,
	)

	ErrMissingFile = New(
		"MISSING_FILE",
		"Multipart field 'file' is required",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrImagePreparation = New(
		"IMAGE_PREPARATION_FAILED",
		"Failed to prepare image for analysis",
		http.StatusInternalServerError,
	)

	ErrNormalization = New(
		"NORMALIZATION_FAILED",
		"Failed to normalize model response",
		http.StatusInternalServerError,
	)

	ErrVisionModel = New(
		"VISION_MODEL_FAILED",
		"Vision model request failed",
		http.StatusBadGateway,
	)

	ErrModelOutputInvalid = New(
		"MODEL_OUTPUT_INVALID",
		"Model returned unexpected output format",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// FileTooLarge - ошибка превышения лимита размера файла (лимит настраиваемый)
func FileTooLarge(maxBytes int64) *AppError {
	return New(
		"FILE_TOO_LARGE",
		fmt.Sprintf("File too large. Max %d bytes allowed.", maxBytes),
		http.StatusRequestEntityTooLarge,
	)
}
