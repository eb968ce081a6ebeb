package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crowd-detector/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendError - отправка ошибки клиенту. Наружу уходят только фиксированные
// сообщения AppError; детали остаются в серверных логах.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
