package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/suri-ai/suri-backend/internal/dto"
	"github.com/suri-ai/suri-backend/internal/model"
	"github.com/suri-ai/suri-backend/internal/repository"
)

// StudentService handles the authenticated student flows: submitting goals,
// generating and fetching plans, and leaving feedback.
type StudentService interface {
	SubmitInput(ctx context.Context, userID string, req dto.StudentInputRequest) (*dto.StudentInputResponse, error)
	GeneratePlan(ctx context.Context, userID string) (*dto.PlanResponse, error)
	GetLatestPlan(ctx context.Context, userID string) (*dto.PlanResponse, error)
	SubmitFeedback(ctx context.Context, userID string, req dto.FeedbackRequest) (*dto.FeedbackResponse, error)
}

type studentService struct {
	inputs    repository.InputRepository
	plans     repository.PlanRepository
	feedback  repository.FeedbackRepository
	generator PlanGenerator
}

func NewStudentService(
	inputs repository.InputRepository,
	plans repository.PlanRepository,
	feedback repository.FeedbackRepository,
	generator PlanGenerator,
) StudentService {
	return &studentService{inputs: inputs, plans: plans, feedback: feedback, generator: generator}
}

func (s *studentService) SubmitInput(ctx context.Context, userID string, req dto.StudentInputRequest) (*dto.StudentInputResponse, error) {
	input := &model.StudentInput{
		UserID:    userID,
		Goals:     req.Goals,
		Struggles: req.Struggles,
	}
	if err := s.inputs.Create(ctx, input); err != nil {
		return nil, err
	}
	log.Info().Str("userID", userID).Str("inputID", input.ID).Msg("Student input saved")

	var resp dto.StudentInputResponse
	if err := copier.Copy(&resp, input); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

// GeneratePlan runs the plan generator for the caller and stores the result.
// Every call creates a new plan document; there is no dedup.
func (s *studentService) GeneratePlan(ctx context.Context, userID string) (*dto.PlanResponse, error) {
	latestInput, err := s.inputs.LatestForUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrInputNotFound) {
		return nil, err
	}

	plan, err := s.generator.Generate(ctx, userID, latestInput)
	if err != nil {
		return nil, fmt.Errorf("plan generation failed: %w", err)
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	log.Info().Str("userID", userID).Str("planID", plan.ID).Msg("Plan generated and saved")

	return planResponse(plan)
}

func (s *studentService) GetLatestPlan(ctx context.Context, userID string) (*dto.PlanResponse, error) {
	plan, err := s.plans.LatestForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return planResponse(plan)
}

// SubmitFeedback verifies the referenced plan exists before inserting; a
// feedback row must never point at a missing plan.
func (s *studentService) SubmitFeedback(ctx context.Context, userID string, req dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	exists, err := s.plans.Exists(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrPlanNotFound
	}

	fb := &model.Feedback{
		UserID:   userID,
		PlanID:   req.PlanID,
		Rating:   req.Rating,
		Comments: req.Comments,
	}
	if err := s.feedback.Create(ctx, fb); err != nil {
		return nil, err
	}
	log.Info().Str("userID", userID).Str("planID", fb.PlanID).Str("feedbackID", fb.ID).Msg("Feedback saved")

	var resp dto.FeedbackResponse
	if err := copier.Copy(&resp, fb); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func planResponse(plan *model.Plan) (*dto.PlanResponse, error) {
	var resp dto.PlanResponse
	if err := copier.Copy(&resp, plan); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
