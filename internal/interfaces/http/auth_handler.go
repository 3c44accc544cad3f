package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion/internal/application/dto"
	"github.com/jhoicas/facturacion/internal/domain"
	"github.com/jhoicas/facturacion/pkg/logger"
)

// credentialService es el contrato que necesita el handler; lo implementa *auth.AuthUseCase.
type credentialService interface {
	Register(ctx context.Context, in dto.RegisterRequest) error
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

// AuthHandler maneja registro y login.
type AuthHandler struct {
	svc credentialService
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(svc credentialService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

// Register godoc
// @Summary      Registrar empresa
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, password"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	err := h.svc.Register(c.UserContext(), in)
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Error: domain.ErrDuplicateName.Error()})
	default:
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Str("op", "register").Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Error: "error interno del servidor al registrar"})
	}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "name, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	out, err := h.svc.Login(c.UserContext(), in)
	switch {
	case err == nil:
		return c.JSON(out)
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Error: domain.ErrInvalidCredentials.Error()})
	default:
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Str("op", "login").Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Error: "error interno del servidor"})
	}
}
