package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/handler/handlertest"
	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/pkg/errors"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) one(args mock.Arguments) (*model.User, error) {
	v, _ := args.Get(0).(*model.User)
	return v, args.Error(1)
}

func (m *mockService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	return m.one(m.Called(ctx, req))
}

func (m *mockService) Get(ctx context.Context, id string) (*model.User, error) {
	return m.one(m.Called(ctx, id))
}

func (m *mockService) List(ctx context.Context, page model.Page) ([]*model.User, error) {
	args := m.Called(ctx, page)
	v, _ := args.Get(0).([]*model.User)
	return v, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id string, patch model.UserPatch) (*model.User, error) {
	return m.one(m.Called(ctx, id, patch))
}

func (m *mockService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func setupTest() (*gin.Engine, *mockService) {
	svc := new(mockService)
	return handlertest.NewRouter(handlertest.Doctor, NewHandler(svc).RegisterRoutes), svc
}

func TestCreateUserHidesPasswordHash(t *testing.T) {
	r, svc := setupTest()
	svc.On("Create", mock.Anything, model.CreateUserRequest{
		Name: "Dr. Who", Email: "who@example.com", Role: model.RoleDoctor, Password: "password123",
	}).Return(&model.User{ID: "usr-1", Email: "who@example.com", PasswordHash: "$2a$secret"}, nil)

	w := handlertest.Do(t, r, http.MethodPost, "/api/users", map[string]string{
		"name":     "Dr. Who",
		"email":    "who@example.com",
		"role":     "doctor",
		"password": "password123",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "secret")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestCreateUserConflict(t *testing.T) {
	r, svc := setupTest()
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.Conflict("Email already registered", nil))

	w := handlertest.Do(t, r, http.MethodPost, "/api/users", map[string]string{
		"name":     "Dr. Who",
		"email":    "who@example.com",
		"role":     "doctor",
		"password": "password123",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already registered", handlertest.Decode(t, w).Message)
}

func TestListUsersForbidden(t *testing.T) {
	r, svc := setupTest()
	svc.On("List", mock.Anything, model.DefaultPage()).Return(nil, errors.Forbidden(nil))

	w := handlertest.Do(t, r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not enough permissions", handlertest.Decode(t, w).Message)
}

func TestUpdateUserShortPassword(t *testing.T) {
	r, svc := setupTest()

	w := handlertest.Do(t, r, http.MethodPut, "/api/users/usr-1", `{"password":"short"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
