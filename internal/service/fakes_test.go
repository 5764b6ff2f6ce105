package service

import (
	"context"
	"fmt"
	"time"

	"github.com/suri-ai/suri-backend/internal/model"
	"github.com/suri-ai/suri-backend/internal/repository"
)

// In-memory fakes for the repository interfaces. Constructor injection exists
// so these can stand in for the hosted services.

type fakeUserRepo struct {
	users  []*model.User
	nextID int
	err    error
}

func (f *fakeUserRepo) Create(_ context.Context, email, _, name string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user := &model.User{
		ID:        fmt.Sprintf("uid-%d", f.nextID),
		Email:     email,
		Name:      name,
		Role:      model.RoleStudent,
		CreatedAt: time.Now().UTC(),
	}
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, uid string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == uid {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, uid, role string) error {
	for _, u := range f.users {
		if u.ID == uid {
			u.Role = role
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (f *fakeUserRepo) VerifyIDToken(_ context.Context, idToken string) (string, error) {
	// Fake convention: a token "idtoken:<uid>" is valid for that uid.
	var uid string
	if _, err := fmt.Sscanf(idToken, "idtoken:%s", &uid); err != nil {
		return "", fmt.Errorf("invalid ID token")
	}
	return uid, nil
}

type fakeInputRepo struct {
	inputs []*model.StudentInput
	err    error
}

func (f *fakeInputRepo) Create(_ context.Context, input *model.StudentInput) error {
	if f.err != nil {
		return f.err
	}
	input.ID = fmt.Sprintf("input-%d", len(f.inputs)+1)
	input.CreatedAt = time.Now().UTC()
	f.inputs = append(f.inputs, input)
	return nil
}

func (f *fakeInputRepo) LatestForUser(_ context.Context, userID string) (*model.StudentInput, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := len(f.inputs) - 1; i >= 0; i-- {
		if f.inputs[i].UserID == userID {
			return f.inputs[i], nil
		}
	}
	return nil, repository.ErrInputNotFound
}

type fakePlanRepo struct {
	plans []*model.Plan
	err   error
}

func (f *fakePlanRepo) Create(_ context.Context, plan *model.Plan) error {
	if f.err != nil {
		return f.err
	}
	plan.ID = fmt.Sprintf("plan-%d", len(f.plans)+1)
	plan.CreatedAt = time.Now().UTC()
	f.plans = append(f.plans, plan)
	return nil
}

func (f *fakePlanRepo) LatestForUser(_ context.Context, userID string) (*model.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := len(f.plans) - 1; i >= 0; i-- {
		if f.plans[i].UserID == userID {
			return f.plans[i], nil
		}
	}
	return nil, repository.ErrPlanNotFound
}

func (f *fakePlanRepo) Exists(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, p := range f.plans {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeFeedbackRepo struct {
	rows []*model.Feedback
	err  error
}

func (f *fakeFeedbackRepo) Create(_ context.Context, fb *model.Feedback) error {
	if f.err != nil {
		return f.err
	}
	fb.ID = fmt.Sprintf("feedback-%d", len(f.rows)+1)
	fb.CreatedAt = time.Now().UTC()
	f.rows = append(f.rows, fb)
	return nil
}

func (f *fakeFeedbackRepo) TopForUser(_ context.Context, userID string, n int) ([]model.Feedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Feedback
	for i := len(f.rows) - 1; i >= 0 && len(out) < n; i-- {
		if f.rows[i].UserID == userID {
			out = append(out, *f.rows[i])
		}
	}
	return out, nil
}
