package model

import "time"

// StudentInput is one submission of goals and struggles. Inputs are append-only;
// the newest document by created_at is the student's current input.
type StudentInput struct {
	ID        string    `firestore:"-" json:"id"`
	UserID    string    `firestore:"user_id" json:"user_id"`
	Goals     []string  `firestore:"goals" json:"goals"`
	Struggles string    `firestore:"struggles" json:"struggles"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
}

type PlanActivity struct {
	Type     string `firestore:"type" json:"type"`
	Title    string `firestore:"title" json:"title"`
	Duration string `firestore:"duration" json:"duration"`
}

// Plan is one generated weekly learning plan. Plans are append-only; the newest
// document by created_at is the student's current plan.
type Plan struct {
	ID         string         `firestore:"-" json:"id"`
	UserID     string         `firestore:"user_id" json:"user_id"`
	Week       int            `firestore:"week" json:"week"`
	Theme      string         `firestore:"theme" json:"theme"`
	Goals      []string       `firestore:"goals" json:"goals"`
	Activities []PlanActivity `firestore:"activities" json:"activities"`
	FocusAreas []string       `firestore:"focusAreas" json:"focusAreas"`
	CreatedAt  time.Time      `firestore:"created_at" json:"created_at"`
}

// Feedback is a student's rating of a specific plan.
type Feedback struct {
	ID        string    `firestore:"-" json:"id"`
	UserID    string    `firestore:"user_id" json:"user_id"`
	PlanID    string    `firestore:"plan_id" json:"plan_id"`
	Rating    int       `firestore:"rating" json:"rating"`
	Comments  string    `firestore:"comments,omitempty" json:"comments,omitempty"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
}
