package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/suri-ai/suri-backend/internal/model"
)

const inputsCollection = "student_inputs"

// InputRepository is the gateway to the student_inputs collection.
type InputRepository interface {
	Create(ctx context.Context, input *model.StudentInput) error
	LatestForUser(ctx context.Context, userID string) (*model.StudentInput, error)
}

type inputRepository struct {
	client *firestore.Client
}

func NewInputRepository(client *firestore.Client) InputRepository {
	return &inputRepository{client: client}
}

// Create stamps the creation time and stores the document, filling in the
// store-assigned ID on the way out.
func (r *inputRepository) Create(ctx context.Context, input *model.StudentInput) error {
	input.CreatedAt = time.Now().UTC()
	ref, _, err := r.client.Collection(inputsCollection).Add(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to save student input: %w", err)
	}
	input.ID = ref.ID
	return nil
}

func (r *inputRepository) LatestForUser(ctx context.Context, userID string) (*model.StudentInput, error) {
	it := r.client.Collection(inputsCollection).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, ErrInputNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query student inputs: %w", err)
	}

	var input model.StudentInput
	if err := doc.DataTo(&input); err != nil {
		return nil, fmt.Errorf("failed to decode student input %s: %w", doc.Ref.ID, err)
	}
	input.ID = doc.Ref.ID
	return &input, nil
}
