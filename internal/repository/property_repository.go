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

type propertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(col *mongo.Collection) PropertyRepository {
	return &propertyRepository{col: col}
}

func (r *propertyRepository) Insert(ctx context.Context, doc models.PropertyDocument) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert property: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert property: unexpected inserted id %v", result.InsertedID)
	}

	return id, nil
}

func (r *propertyRepository) GetAll(ctx context.Context) ([]models.PropertyDocument, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := []models.PropertyDocument{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}

	return properties, nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.PropertyDocument, error) {
	var doc models.PropertyDocument

	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("find property %s: %w", id.Hex(), err)
	}

	return doc, nil
}
