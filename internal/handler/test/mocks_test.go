package test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"realtyshopee/internal/models"
	"realtyshopee/internal/repository"
	"realtyshopee/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, name, email, password string) error {
	args := m.Called(ctx, name, email, password)
	return args.Error(0)
}

func (m *MockAuthService) Signin(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email, temporaryPassword, newPassword string) error {
	args := m.Called(ctx, email, temporaryPassword, newPassword)
	return args.Error(0)
}

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Add(ctx context.Context, username string, fields models.PropertyDocument, images []string) (primitive.ObjectID, error) {
	args := m.Called(ctx, username, fields, images)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockPropertyService) List(ctx context.Context) ([]models.PropertyDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PropertyDocument), args.Error(1)
}

func (m *MockPropertyService) Get(ctx context.Context, id string) (models.PropertyDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.PropertyDocument), args.Error(1)
}

func (m *MockPropertyService) GetImage(ctx context.Context, id string, index int) ([]byte, error) {
	args := m.Called(ctx, id, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) Create(ctx context.Context, req service.CreateBlogRequest) (primitive.ObjectID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockBlogService) List(ctx context.Context) ([]models.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogService) Get(ctx context.Context, idOrSlug string) (*models.Blog, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogService) Update(ctx context.Context, id string, req repository.UpdateBlogRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockBlogService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockQueryService struct {
	mock.Mock
}

func (m *MockQueryService) Submit(ctx context.Context, fields map[string]interface{}) error {
	args := m.Called(ctx, fields)
	return args.Error(0)
}
