package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"realtyshopee/internal/models"
)

type blogRepository struct {
	col *mongo.Collection
}

// UpdateBlogRequest carries the fields a blog update may replace.
// descriptionImages is intentionally absent: updates never touch it.
type UpdateBlogRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	FeatureImage string   `json:"featureImage"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	Username     string   `json:"username"`
}

func NewBlogRepository(col *mongo.Collection) BlogRepository {
	return &blogRepository{col: col}
}

func (r *blogRepository) Insert(ctx context.Context, blog *models.Blog) (primitive.ObjectID, error) {
	blog.ID = primitive.NewObjectID()
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	if blog.DescriptionImages == nil {
		blog.DescriptionImages = []string{}
	}

	if _, err := r.col.InsertOne(ctx, blog); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert blog %q: %w", blog.Title, err)
	}

	return blog.ID, nil
}

func (r *blogRepository) GetAll(ctx context.Context) ([]models.Blog, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	defer cursor.Close(ctx)

	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}

	return blogs, nil
}

func (r *blogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var blog models.Blog

	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("find blog %s: %w", id.Hex(), err)
	}

	return &blog, nil
}

// GetByTitle matches the full title case-insensitively. With duplicate
// titles the store picks the first match; duplicates are a data-quality
// issue, not handled here.
func (r *blogRepository) GetByTitle(ctx context.Context, title string) (*models.Blog, error) {
	var blog models.Blog

	filter := bson.M{"title": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(title) + "$",
		Options: "i",
	}}

	err := r.col.FindOne(ctx, filter).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("find blog by title %q: %w", title, err)
	}

	return &blog, nil
}

func (r *blogRepository) Update(ctx context.Context, id primitive.ObjectID, req UpdateBlogRequest) error {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	update := bson.M{"$set": bson.M{
		"title":        req.Title,
		"description":  req.Description,
		"featureImage": req.FeatureImage,
		"category":     req.Category,
		"tags":         tags,
		"username":     req.Username,
		"updatedAt":    time.Now(),
	}}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update blog %s: %w", id.Hex(), err)
	}

	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete blog %s: %w", id.Hex(), err)
	}

	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}

	return nil
}
