package serverutils

import (
	"errors"

	"invoicing-be/internal/pkg/apperror"
	"invoicing-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates the service error kinds into HTTP
// statuses in one place so controllers just return errors upward.
//
// ValidationError and IntegrityError are client faults (400). NotFoundError
// is 404. Anything else is an internal failure: logged with the request id
// and masked in the response body.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *apperror.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(NewErrorResponse(validationErr.Message))
		}

		var integrityErr *apperror.IntegrityError
		if errors.As(err, &integrityErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(NewErrorResponse(integrityErr.Error()))
		}

		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.Status(fiber.StatusNotFound).JSON(NewErrorResponse(notFoundErr.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(NewErrorResponse(fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"error":      err.Error(),
			"path":       ctx.Path(),
			"method":     ctx.Method(),
			"request_id": RequestId(ctx),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(NewErrorResponse("internal server error"))
	}
}
