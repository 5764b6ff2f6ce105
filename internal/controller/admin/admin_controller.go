package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/suri-ai/suri-backend/internal/dto"
	"github.com/suri-ai/suri-backend/internal/repository"
	"github.com/suri-ai/suri-backend/internal/service"
)

type AdminController struct {
	adminSvc service.AdminService
}

func NewAdminController(adminSvc service.AdminService) *AdminController {
	return &AdminController{adminSvc: adminSvc}
}

// ListUsers godoc
// @Summary (Admin) List all users
// @Description Returns every identity-provider user as a public view
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 500 {object} dto.ErrorResponse "Identity provider error"
// @Router /admin/users [get]
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctrl.adminSvc.ListUsers(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserDetail godoc
// @Summary (Admin) Get user detail
// @Description Composite view: identity record, latest input, latest plan summary and recent feedback
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.AdminUserDetail
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Provider or store error"
// @Router /admin/users/{id} [get]
func (ctrl *AdminController) GetUserDetail(c *gin.Context) {
	userID := c.Param("id")

	detail, err := ctrl.adminSvc.GetUserDetail(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		log.Error().Err(err).Str("userID", userID).Msg("Failed to assemble user detail")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}
