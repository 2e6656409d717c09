package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nivaro/account_service/internal/apperr"
	"github.com/nivaro/account_service/internal/dto"
	"github.com/nivaro/account_service/internal/helper"
	"github.com/nivaro/account_service/internal/helper/utils"
)

// AuthMiddleware accepts the access token from the access_token cookie
// or the Authorization header and stores the caller identity in Locals.
func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		claims, err := auth.VerifyAccessToken(tokenStr)
		if err != nil {
			return utils.ResponseError(ctx, apperr.ErrUnauthorized)
		}

		ctx.Locals("authUser", dto.AuthUser{
			ID:    claims.Subject,
			Email: claims.Email,
		})
		return ctx.Next()
	}
}

// CurrentUser reads the identity AuthMiddleware stored on the request.
func CurrentUser(ctx *fiber.Ctx) (dto.AuthUser, error) {
	user, ok := ctx.Locals("authUser").(dto.AuthUser)
	if !ok || user.ID == "" {
		return dto.AuthUser{}, apperr.ErrUnauthorized
	}
	return user, nil
}
