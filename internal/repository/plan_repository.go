package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/suri-ai/suri-backend/internal/model"
)

const plansCollection = "student_plans"

// PlanRepository is the gateway to the student_plans collection.
type PlanRepository interface {
	Create(ctx context.Context, plan *model.Plan) error
	LatestForUser(ctx context.Context, userID string) (*model.Plan, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type planRepository struct {
	client *firestore.Client
}

func NewPlanRepository(client *firestore.Client) PlanRepository {
	return &planRepository{client: client}
}

func (r *planRepository) Create(ctx context.Context, plan *model.Plan) error {
	plan.CreatedAt = time.Now().UTC()
	ref, _, err := r.client.Collection(plansCollection).Add(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	plan.ID = ref.ID
	return nil
}

func (r *planRepository) LatestForUser(ctx context.Context, userID string) (*model.Plan, error) {
	it := r.client.Collection(plansCollection).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}

	var plan model.Plan
	if err := doc.DataTo(&plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan %s: %w", doc.Ref.ID, err)
	}
	plan.ID = doc.Ref.ID
	return &plan, nil
}

func (r *planRepository) Exists(ctx context.Context, id string) (bool, error) {
	snap, err := r.client.Collection(plansCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up plan %s: %w", id, err)
	}
	return snap.Exists(), nil
}
