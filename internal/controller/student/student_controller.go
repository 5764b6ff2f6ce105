package student

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/suri-ai/suri-backend/internal/dto"
	"github.com/suri-ai/suri-backend/internal/middleware"
	"github.com/suri-ai/suri-backend/internal/repository"
	"github.com/suri-ai/suri-backend/internal/service"
)

type StudentController struct {
	studentSvc service.StudentService
}

func NewStudentController(studentSvc service.StudentService) *StudentController {
	return &StudentController{studentSvc: studentSvc}
}

// SubmitInput godoc
// @Summary Submit goals and struggles
// @Description Stores a new student input document for the authenticated user
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body dto.StudentInputRequest true "Goals and struggles"
// @Success 200 {object} dto.StudentInputResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /student/input [post]
func (ctrl *StudentController) SubmitInput(c *gin.Context) {
	var req dto.StudentInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StudentInputRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.studentSvc.SubmitInput(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to save student input")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GeneratePlan godoc
// @Summary Generate a learning plan
// @Description Runs the plan generator for the authenticated user and stores the result. Each call creates a new plan.
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PlanResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Generator or store error"
// @Router /student/plan [post]
func (ctrl *StudentController) GeneratePlan(c *gin.Context) {
	resp, err := ctrl.studentSvc.GeneratePlan(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate plan")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPlan godoc
// @Summary Get the latest learning plan
// @Description Returns the newest plan for the authenticated user
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PlanResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "No plan exists yet"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /student/plan [get]
func (ctrl *StudentController) GetPlan(c *gin.Context) {
	resp, err := ctrl.studentSvc.GetLatestPlan(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Plan not found for user"})
			return
		}
		log.Error().Err(err).Msg("Failed to fetch plan")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitFeedback godoc
// @Summary Submit feedback on a plan
// @Description Stores a rating (1-5) and optional comments for an existing plan
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feedback body dto.FeedbackRequest true "Feedback data"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or rating out of range"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Referenced plan does not exist"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /student/feedback [post]
func (ctrl *StudentController) SubmitFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind FeedbackRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.studentSvc.SubmitFeedback(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Plan with ID " + req.PlanID + " not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to save feedback")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
