package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nivaro/account_service/internal/api/rest/middleware"
	"github.com/nivaro/account_service/internal/apperr"
	"github.com/nivaro/account_service/internal/dto"
	"github.com/nivaro/account_service/internal/helper"
	respond "github.com/nivaro/account_service/internal/helper/utils"
	"github.com/nivaro/account_service/internal/services"
	"github.com/nivaro/account_service/pkg/utils"
)

type AccountHandler struct {
	svc services.AccountService
}

func NewAccountHandler(svc services.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

func (h *AccountHandler) SetupRoutes(app *fiber.App, auth helper.Auth) {
	authGroup := app.Group("/auth")
	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)

	user := app.Group("/user")
	user.Post("/forgot-password", h.ForgotPassword)
	user.Post("/update-password", h.UpdatePassword)

	guarded := user.Use(middleware.AuthMiddleware(auth))
	guarded.Get("/me", h.Me)
	guarded.Patch("/", h.UpdateAccount)
	guarded.Post("/start-email-verification", h.StartEmailVerification)
	guarded.Post("/finish-email-verification", h.FinishEmailVerification)
}

func (h *AccountHandler) Register(ctx *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := ctx.BodyParser(&body); err != nil {
		return respond.ResponseError(ctx, apperr.ErrInvalidArguments)
	}
	if !utils.WithinLen(body.Name, 3, 30) ||
		!utils.IsEmail(body.Email) ||
		!utils.WithinLen(body.Password, 8, 30) {
		return respond.ResponseError(ctx, apperr.ErrInvalidArguments)
	}

	result, err := h.svc.Register(body)
	if err != nil {
		return respond.ResponseError(ctx, err)
	}
	return respond.ResponseSuccess(ctx, fiber.StatusOK, result)
}

func (h *AccountHandler) Login(ctx *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := ctx.BodyParser(&body); err != nil {
		return respond.ResponseError(ctx, apperr.ErrInvalidArguments)
	}

	result, err := h.svc.Login(body)
	if err != nil {
		return respond.ResponseError(ctx, err)
	}
	return respond.ResponseSuccess(ctx, fiber.StatusOK, result)
}

func (h *AccountHandler) Me(ctx *fiber.Ctx) error {
	current, err := middleware.CurrentUser(ctx)
	if err != nil {
		return respond.ResponseError(ctx, err)
	}

	account, err := h.svc.GetAccount(current.ID)
	if err != nil {
		return respond.ResponseError(ctx, err)
	}
	return respond.ResponseSuccess(ctx, fiber.StatusOK, account)
}

func (h *AccountHandler) UpdateAccount(ctx *fiber.Ctx) error {
	current, err := middleware.CurrentUser(ctx)
	if err != nil {
		return respond.ResponseError(ctx, err)
	}

	var body dto.UpdateAccountRequest
	if err := ctx.BodyParser(&body); err != nil || !utils.WithinLen(body.Name, 3, 30) {
		return respond.ResponseError(ctx, apperr.ErrInvalidArguments)
	}

	if err := h.svc.UpdateName(current.ID, body.Name); err != nil {
		return respond.ResponseError(ctx, err)
	}

	account, err := h.svc.GetAccount(current.ID)
	if err != nil {
		return respond.ResponseError(ctx, err)
	}
	return respond.ResponseSuccess(ctx, fiber.StatusOK, account)
}

func (h *AccountHandler) StartEmailVerification(ctx *fiber.Ctx) error {
	current, err := middleware.CurrentUser(ctx)
	if err != nil {
		return respond.ResponseError(ctx, err)
	}

	var body dto.StartEmailVerificationRequest
	if err := ctx.BodyParser(&body); err != nil || !utils.IsEmail(body.Email) {
		return respond.ResponseError(ctx, apperr.ErrInvalidArguments)
	}

	token, err := h.svc.StartEmailVerification(current.ID, body.Email)
	if err != nil {
		return respond.ResponseError(ctx, err)
	}
	return respond.ResponseSuccess(ctx, fiber.StatusOK, dto.VerificationTokenResponse{
		VerificationToken: token,
	})
}

func (h *AccountHandler) FinishEmailVerification(ctx *fiber.Ctx) error {
	current, err := middleware.CurrentUser(ctx)
	if err != nil {
		return respond.ResponseError(ctx, err)
	}

	var body dto.FinishEmailVerificationRequest
	if err := ctx.BodyParser(&body); err != nil ||
		!utils.IsJWT(body.VerificationToken) ||
		!utils.IsOtp(body.Otp) {
		return respond.ResponseError(ctx, apperr.ErrInvalidArguments)
	}

	if err := h.svc.FinishEmailVerification(current.ID, body.VerificationToken, body.Otp); err != nil {
		return respond.ResponseError(ctx, err)
	}
	return respond.ResponseSuccess(ctx, fiber.StatusOK, dto.VerifiedResponse{IsVerified: true})
}

func (h *AccountHandler) ForgotPassword(ctx *fiber.Ctx) error {
	var body dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&body); err != nil || !utils.IsEmail(body.Email) {
		return respond.ResponseError(ctx, apperr.ErrInvalidArguments)
	}

	token, err := h.svc.ForgotPassword(body.Email)
	if err != nil {
		return respond.ResponseError(ctx, err)
	}
	return respond.ResponseSuccess(ctx, fiber.StatusOK, dto.VerificationTokenResponse{
		VerificationToken: token,
	})
}

func (h *AccountHandler) UpdatePassword(ctx *fiber.Ctx) error {
	var body dto.UpdatePasswordRequest
	if err := ctx.BodyParser(&body); err != nil ||
		!utils.IsJWT(body.VerificationToken) ||
		!utils.IsOtp(body.Otp) ||
		!utils.WithinLen(body.Password, 8, 30) {
		return respond.ResponseError(ctx, apperr.ErrInvalidArguments)
	}

	if err := h.svc.UpdatePassword(body.VerificationToken, body.Otp, body.Password); err != nil {
		return respond.ResponseError(ctx, err)
	}
	return respond.ResponseSuccess(ctx, fiber.StatusOK, dto.PasswordChangedResponse{IsChanged: true})
}
