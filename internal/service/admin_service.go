package service

import (
	"context"
	"errors"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/suri-ai/suri-backend/internal/dto"
	"github.com/suri-ai/suri-backend/internal/repository"
)

// Plan statuses shown on the admin dashboard.
const (
	planStatusActive       = "Active"
	planStatusPendingInput = "Pending Input"
)

const feedbackHistoryLimit = 5

// AdminService assembles the admin views over the identity provider and the
// three document collections.
type AdminService interface {
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUserDetail(ctx context.Context, userID string) (*dto.AdminUserDetail, error)
}

type adminService struct {
	users    repository.UserRepository
	inputs   repository.InputRepository
	plans    repository.PlanRepository
	feedback repository.FeedbackRepository
}

func NewAdminService(
	users repository.UserRepository,
	inputs repository.InputRepository,
	plans repository.PlanRepository,
	feedback repository.FeedbackRepository,
) AdminService {
	return &adminService{users: users, inputs: inputs, plans: plans, feedback: feedback}
}

func (s *adminService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name})
	}
	return out, nil
}

// GetUserDetail performs four sequential reads: identity record, latest input,
// latest plan, recent feedback. Only the identity lookup maps to 404; the
// document reads treat absence as an empty section, and any other failure
// aborts the whole assembly.
func (s *adminService) GetUserDetail(ctx context.Context, userID string) (*dto.AdminUserDetail, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail := &dto.AdminUserDetail{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Role:             user.Role,
		RegistrationDate: user.CreatedAt,
		EmailVerified:    user.EmailVerified,
		Goals:            []string{},
		PlanStatus:       planStatusPendingInput,
		FeedbackHistory:  []dto.FeedbackResponse{},
	}

	input, err := s.inputs.LatestForUser(ctx, userID)
	switch {
	case err == nil:
		detail.Goals = input.Goals
		detail.Struggles = input.Struggles
	case !errors.Is(err, repository.ErrInputNotFound):
		return nil, err
	}

	plan, err := s.plans.LatestForUser(ctx, userID)
	switch {
	case err == nil:
		detail.LatestPlan = &dto.PlanSummary{ID: plan.ID, Week: plan.Week, Theme: plan.Theme}
		detail.PlanStatus = planStatusActive
	case !errors.Is(err, repository.ErrPlanNotFound):
		return nil, err
	}

	history, err := s.feedback.TopForUser(ctx, userID, feedbackHistoryLimit)
	if err != nil {
		return nil, err
	}
	for _, fb := range history {
		var row dto.FeedbackResponse
		if err := copier.Copy(&row, &fb); err != nil {
			log.Error().Err(err).Str("feedbackID", fb.ID).Msg("Failed to copy feedback row for admin detail")
			continue
		}
		detail.FeedbackHistory = append(detail.FeedbackHistory, row)
	}

	return detail, nil
}
