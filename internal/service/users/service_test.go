package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-GymBookingService/internal/service/users/models"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]*domain.User)
	return u, args.Error(1)
}

func (m *mockRepo) Search(ctx context.Context, q string, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, q, limit)
	u, _ := args.Get(0).([]*domain.User)
	return u, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_HashesPasswordAndBuildsProfile(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil &&
			u.Email == "ana@example.com" &&
			u.Status == domain.UserActive &&
			u.IsScholarshipHolder()
	})).Return(&domain.User{
		ID: 5, Name: "Ana", Email: "ana@example.com", Status: domain.UserActive,
		Profile: domain.StudentProfile{Enrollment: "2020001", ScholarshipHolder: true},
	}, nil)

	svc := NewService(repo, BcryptHasher{Cost: bcrypt.MinCost}, nopLogger{})
	resp, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Name:     "Ana",
		Email:    " Ana@Example.com ",
		CPF:      "12345678901",
		Password: "secret1",
		ProfileRequest: models.ProfileRequest{
			Role:              "student",
			Enrollment:        "2020001",
			ScholarshipHolder: true,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "student", resp.Role)
	assert.True(t, resp.ScholarshipHolder)
	repo.AssertExpectations(t)
}

func TestCreate_Duplicate(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, userRepo.ErrUserAlreadyExists)

	svc := NewService(repo, BcryptHasher{Cost: bcrypt.MinCost}, nopLogger{})
	_, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Name: "Ana", Email: "ana@example.com", CPF: "12345678901", Password: "secret1",
		ProfileRequest: models.ProfileRequest{Role: "admin"},
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestToggleStatus(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5, Status: domain.UserActive, Profile: domain.AdminProfile{}}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.UserInactive).Return(nil)

	svc := NewService(repo, BcryptHasher{}, nopLogger{})
	resp, err := svc.ToggleStatus(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "inactive", resp.Status)
	repo.AssertExpectations(t)
}

func TestSearch(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Search", mock.Anything, "an", domain.UserSearchLimit).Return([]*domain.User{{ID: 1, Name: "Ana"}}, nil)
	svc := NewService(repo, BcryptHasher{}, nopLogger{})

	resp, err := svc.Search(context.Background(), " an ")
	require.NoError(t, err)
	assert.Len(t, resp.Users, 1)

	_, err = svc.Search(context.Background(), "a")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_InUse(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Delete", mock.Anything, int64(5)).Return(userRepo.ErrUserInUse)
	svc := NewService(repo, BcryptHasher{}, nopLogger{})

	assert.ErrorIs(t, svc.Delete(context.Background(), 5), ErrUserInUse)
}
