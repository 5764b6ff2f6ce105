package dto

import "time"

// PlanSummary is the short plan view shown on the admin dashboard.
type PlanSummary struct {
	ID    string `json:"id"`
	Week  int    `json:"week"`
	Theme string `json:"theme"`
}

// AdminUserDetail is the composite view assembled from the identity record,
// the latest input, the latest plan and recent feedback.
type AdminUserDetail struct {
	ID               string             `json:"id"`
	Email            string             `json:"email"`
	Name             string             `json:"name"`
	Role             string             `json:"role,omitempty"`
	RegistrationDate time.Time          `json:"registrationDate"`
	EmailVerified    bool               `json:"emailVerified"`
	Goals            []string           `json:"goals"`
	Struggles        string             `json:"struggles"`
	LatestPlan       *PlanSummary       `json:"latestPlan"`
	PlanStatus       string             `json:"planStatus"`
	FeedbackHistory  []FeedbackResponse `json:"feedbackHistory"`
}
