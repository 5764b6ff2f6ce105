package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/suri-ai/suri-backend/internal/dto"
	"github.com/suri-ai/suri-backend/internal/repository"
	"github.com/suri-ai/suri-backend/internal/service"
)

type AuthController struct {
	authSvc service.AuthService
}

func NewAuthController(authSvc service.AuthService) *AuthController {
	return &AuthController{authSvc: authSvc}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new account with the identity provider
// @Tags Authentication
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Identity provider error"
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind RegisterRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := ctrl.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email already registered"})
			return
		}
		log.Error().Err(err).Msg("Failed to register user")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in with email and password
// @Description Issues a session token for a known email. The password is not verified against the identity provider; use the ID token flow for real credential checks.
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email address"
// @Param password formData string true "Password (not verified)"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid form data"
// @Failure 401 {object} dto.ErrorResponse "Unknown email"
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := ctrl.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Incorrect email or password"})
			return
		}
		log.Error().Err(err).Msg("Login failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, token)
}

// LoginWithIDToken godoc
// @Summary Log in with a provider ID token
// @Description Verifies a Firebase ID token obtained by the client SDK and exchanges it for a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param credentials body dto.IDTokenLoginRequest true "Provider ID token"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid ID token"
// @Router /auth/login/idtoken [post]
func (ctrl *AuthController) LoginWithIDToken(c *gin.Context) {
	var req dto.IDTokenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := ctrl.authSvc.LoginWithIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, repository.ErrUserNotFound) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Could not validate credentials"})
			return
		}
		log.Error().Err(err).Msg("ID token login failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, token)
}
