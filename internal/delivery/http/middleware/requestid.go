package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsRequestID - ключ request id в fiber.Ctx.Locals
const LocalsRequestID = "request_id"

// RequestID - middleware, присваивающий каждому запросу идентификатор
// (X-Request-ID входящего запроса переиспользуется, иначе генерируется uuid)
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsRequestID, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}
