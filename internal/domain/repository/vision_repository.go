package repository

import "context"

// VisionModel - внешняя мультимодальная модель зрения.
// Принимает текстовый промпт и изображение, возвращает свободный текст ответа
// (пустая строка, если модель не вернула текста).
type VisionModel interface {
	Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}
