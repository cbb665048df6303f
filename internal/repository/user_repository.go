package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"realtyshopee/internal/models"
)

type userRepository struct {
	col *mongo.Collection
}

func NewUserRepository(col *mongo.Collection) UserRepository {
	return &userRepository{col: col}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	if user.Properties == nil {
		user.Properties = []primitive.ObjectID{}
	}

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"password": hash}},
	)
	if err != nil {
		return fmt.Errorf("update password for %s: %w", email, err)
	}

	if result.MatchedCount == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) AppendProperty(ctx context.Context, username string, propertyID primitive.ObjectID) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"name": username},
		bson.M{"$push": bson.M{"properties": propertyID}},
	)
	if err != nil {
		return fmt.Errorf("append property %s to user %s: %w", propertyID.Hex(), username, err)
	}

	if result.MatchedCount == 0 {
		return models.ErrUserNotFound
	}

	return nil
}
