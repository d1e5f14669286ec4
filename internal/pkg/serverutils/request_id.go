package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIdKey = "request_id"

// RequestIdMiddleware stamps every request with a correlation id, exposed in
// the response header and in locals for log enrichment.
func RequestIdMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx.Locals(requestIdKey, id)
		ctx.Set("X-Request-Id", id)
		return ctx.Next()
	}
}

func RequestId(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(requestIdKey).(string); ok {
		return id
	}
	return ""
}
