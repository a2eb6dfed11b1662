package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andrewserrazina/friendly-paws-backend/internal/api/dto"
	"github.com/andrewserrazina/friendly-paws-backend/internal/service"
	apperrors "github.com/andrewserrazina/friendly-paws-backend/pkg/util"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	account, err := h.auth.Register(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.RegisterResponse{
		Message:  "account registered successfully",
		Username: account.Username,
	})
}

// Login handles POST /login. Credentials arrive form-encoded per the
// OAuth2 password-grant convention.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	token, _, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
