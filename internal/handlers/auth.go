package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/dto"
	apierrors "github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/errors"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Signup registers a new account and returns a bearer token for it.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	token, user, err := h.authService.Signup(services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    dto.ToUserDTO(*user),
		Message: "Account created successfully",
	})
}

// Signin authenticates an existing account and returns a bearer token.
func (h *AuthHandler) Signin(c *gin.Context) {
	type SigninRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	token, user, err := h.authService.Signin(services.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    dto.ToUserDTO(*user),
		Message: "Signin successful",
	})
}

// Logout acknowledges logout. Tokens are stateless, so there is no
// server-side session to clear; expiry is the only way a token stops working.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Successfully logged out",
	})
}

func (h *AuthHandler) respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWeakPassword):
		apierrors.BadRequest(c, "Password must be at least 8 characters")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequest(c, "Email already registered")
	case errors.Is(err, services.ErrNoSuchAccount):
		apierrors.Unauthorized(c, "No account found with this email. Please sign up first.")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid email or password")
	default:
		h.logger.Error("auth request failed", zap.Error(err))
		apierrors.InternalError(c, "")
	}
}
