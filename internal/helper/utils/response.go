package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nivaro/account_service/internal/apperr"
)

func ResponseError(ctx *fiber.Ctx, err error) error {
	e := apperr.From(err)
	return ctx.Status(e.Status).JSON(fiber.Map{
		"message":    e.Message,
		"name":       e.Name,
		"statusCode": e.Status,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(data)
}
