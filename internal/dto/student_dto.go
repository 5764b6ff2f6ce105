package dto

import (
	"time"

	"github.com/suri-ai/suri-backend/internal/model"
)

type StudentInputRequest struct {
	Goals     []string `json:"goals" binding:"required,min=1"`
	Struggles string   `json:"struggles"`
}

type StudentInputResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Goals     []string  `json:"goals"`
	Struggles string    `json:"struggles"`
	CreatedAt time.Time `json:"created_at"`
}

type PlanResponse struct {
	ID         string               `json:"id"`
	UserID     string               `json:"user_id"`
	Week       int                  `json:"week"`
	Theme      string               `json:"theme"`
	Goals      []string             `json:"goals"`
	Activities []model.PlanActivity `json:"activities"`
	FocusAreas []string             `json:"focusAreas"`
	CreatedAt  time.Time            `json:"created_at"`
}

// FeedbackRequest rates a specific plan. Rating bounds are enforced here so an
// out-of-range rating never reaches the store.
type FeedbackRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comments string `json:"comments"`
	PlanID   string `json:"plan_id" binding:"required"`
}

type FeedbackResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PlanID    string    `json:"plan_id"`
	Rating    int       `json:"rating"`
	Comments  string    `json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
