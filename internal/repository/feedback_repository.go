package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/suri-ai/suri-backend/internal/model"
)

const feedbackCollection = "student_feedback"

// FeedbackRepository is the gateway to the student_feedback collection.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *model.Feedback) error
	TopForUser(ctx context.Context, userID string, n int) ([]model.Feedback, error)
}

type feedbackRepository struct {
	client *firestore.Client
}

func NewFeedbackRepository(client *firestore.Client) FeedbackRepository {
	return &feedbackRepository{client: client}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *model.Feedback) error {
	fb.CreatedAt = time.Now().UTC()
	ref, _, err := r.client.Collection(feedbackCollection).Add(ctx, fb)
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	fb.ID = ref.ID
	return nil
}

// TopForUser returns up to n feedback rows for the user, newest first.
func (r *feedbackRepository) TopForUser(ctx context.Context, userID string, n int) ([]model.Feedback, error) {
	it := r.client.Collection(feedbackCollection).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc).
		Limit(n).
		Documents(ctx)
	defer it.Stop()

	var rows []model.Feedback
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query feedback: %w", err)
		}
		var fb model.Feedback
		if err := doc.DataTo(&fb); err != nil {
			return nil, fmt.Errorf("failed to decode feedback %s: %w", doc.Ref.ID, err)
		}
		fb.ID = doc.Ref.ID
		rows = append(rows, fb)
	}
	return rows, nil
}
