package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"realtyshopee/internal/database"
	"realtyshopee/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, email, hash string) error
	AppendProperty(ctx context.Context, username string, propertyID primitive.ObjectID) error
}

type PropertyRepository interface {
	Insert(ctx context.Context, doc models.PropertyDocument) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]models.PropertyDocument, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.PropertyDocument, error)
}

type BlogRepository interface {
	Insert(ctx context.Context, blog *models.Blog) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	GetByTitle(ctx context.Context, title string) (*models.Blog, error)
	Update(ctx context.Context, id primitive.ObjectID, req UpdateBlogRequest) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type QueryRepository interface {
	Insert(ctx context.Context, doc map[string]interface{}) error
}

type Repository struct {
	User     UserRepository
	Property PropertyRepository
	Blog     BlogRepository
	Query    QueryRepository
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db.Collection(database.UsersCollection)),
		Property: NewPropertyRepository(db.Collection(database.PropertiesCollection)),
		Blog:     NewBlogRepository(db.Collection(database.BlogsCollection)),
		Query:    NewQueryRepository(db.Collection(database.QueryFormsCollection)),
	}
}
