package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suri-ai/suri-backend/config"
	"github.com/suri-ai/suri-backend/internal/dto"
	"github.com/suri-ai/suri-backend/internal/middleware"
	"github.com/suri-ai/suri-backend/internal/model"
	"github.com/suri-ai/suri-backend/internal/repository"
	"github.com/suri-ai/suri-backend/internal/service"
)

type fakeAdminService struct {
	users   []dto.UserResponse
	details map[string]*dto.AdminUserDetail
}

func (f *fakeAdminService) ListUsers(_ context.Context) ([]dto.UserResponse, error) {
	return f.users, nil
}

func (f *fakeAdminService) GetUserDetail(_ context.Context, userID string) (*dto.AdminUserDetail, error) {
	detail, ok := f.details[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return detail, nil
}

type adminRouterFixture struct {
	router *gin.Engine
	tokens service.TokenService
}

func newAdminRouter(svc service.AdminService) *adminRouterFixture {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.AccessTokenMinutes = 30
	tokens := service.NewTokenService(cfg)

	ctrl := NewAdminController(svc)
	r := gin.New()
	group := r.Group("/admin", middleware.Authenticate(tokens), middleware.RequireAdmin())
	group.GET("/users", ctrl.ListUsers)
	group.GET("/users/:id", ctrl.GetUserDetail)

	return &adminRouterFixture{router: r, tokens: tokens}
}

func (f *adminRouterFixture) get(t *testing.T, path, role string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if role != "" {
		token, err := f.tokens.Issue("uid-caller", "caller@example.com", role, time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	f := newAdminRouter(&fakeAdminService{})

	w := f.get(t, "/admin/users", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.get(t, "/admin/users", model.RoleStudent)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListUsers(t *testing.T) {
	svc := &fakeAdminService{
		users: []dto.UserResponse{
			{ID: "uid-1", Email: "a@example.com", Name: "Alice"},
			{ID: "uid-2", Email: "b@example.com", Name: "Bob"},
		},
	}
	f := newAdminRouter(svc)

	w := f.get(t, "/admin/users", model.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)

	var list []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "a@example.com", list[0].Email)
}

func TestGetUserDetail(t *testing.T) {
	svc := &fakeAdminService{
		details: map[string]*dto.AdminUserDetail{
			"uid-1": {
				ID:         "uid-1",
				Email:      "a@example.com",
				Name:       "Alice",
				Goals:      []string{"read a novel"},
				PlanStatus: "Active",
				LatestPlan: &dto.PlanSummary{ID: "plan-1", Week: 1, Theme: "Basics"},
			},
		},
	}
	f := newAdminRouter(svc)

	w := f.get(t, "/admin/users/uid-1", model.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)

	var detail dto.AdminUserDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Alice", detail.Name)
	require.NotNil(t, detail.LatestPlan)
	assert.Equal(t, "plan-1", detail.LatestPlan.ID)
}

func TestGetUserDetailUnknownUserIs404(t *testing.T) {
	f := newAdminRouter(&fakeAdminService{details: map[string]*dto.AdminUserDetail{}})

	w := f.get(t, "/admin/users/no-such-uid", model.RoleAdmin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
