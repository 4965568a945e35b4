package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const genericErrorMessage = "Internal server error"

// ErrorHandlerMiddleware renders any error returned by a handler as an
// ErrorResponse. Only fiber.Error messages are shown to the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, genericErrorMessage))
	}
}
