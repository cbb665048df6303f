package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type queryRepository struct {
	col *mongo.Collection
}

func NewQueryRepository(col *mongo.Collection) QueryRepository {
	return &queryRepository{col: col}
}

func (r *queryRepository) Insert(ctx context.Context, doc map[string]interface{}) error {
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert query form: %w", err)
	}

	return nil
}
