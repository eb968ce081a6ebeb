package dto

// AnalyzeRequest - запрос на анализ изображения
type AnalyzeRequest struct {
	Content     []byte `json:"-"`
	ContentType string `json:"content_type" validate:"omitempty,max=255"`
	UserID      string `json:"user_id" validate:"omitempty,max=64"` // принимается для будущего аудита, дальше не используется
}
