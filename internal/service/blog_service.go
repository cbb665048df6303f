package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"realtyshopee/internal/models"
	"realtyshopee/internal/repository"
)

type CreateBlogRequest struct {
	Title             string
	Description       string
	FeatureImage      string
	DescriptionImages []string
	Category          string
	Tags              []string
	Username          string
}

type BlogService interface {
	Create(ctx context.Context, req CreateBlogRequest) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.Blog, error)
	Get(ctx context.Context, idOrSlug string) (*models.Blog, error)
	Update(ctx context.Context, id string, req repository.UpdateBlogRequest) error
	Delete(ctx context.Context, id string) error
}

type blogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

// NormalizeTags accepts tags either as an already-split list or as a
// comma-separated string and returns a trimmed list.
func NormalizeTags(value interface{}) []string {
	switch tags := value.(type) {
	case []string:
		return trimTags(tags)
	case []interface{}:
		out := make([]string, 0, len(tags))
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				out = append(out, s)
			}
		}
		return trimTags(out)
	case string:
		if tags == "" {
			return []string{}
		}
		return trimTags(strings.Split(tags, ","))
	}
	return []string{}
}

func trimTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// ParseDescriptionImages parses the JSON-encoded string that form clients
// submit for descriptionImages.
func ParseDescriptionImages(value string) ([]string, error) {
	if value == "" {
		return []string{}, nil
	}

	var images []string
	if err := json.Unmarshal([]byte(value), &images); err != nil {
		return nil, models.ErrInvalidPayload
	}

	return images, nil
}

func (s *blogService) Create(ctx context.Context, req CreateBlogRequest) (primitive.ObjectID, error) {
	blog := &models.Blog{
		Title:             req.Title,
		Description:       req.Description,
		FeatureImage:      req.FeatureImage,
		DescriptionImages: req.DescriptionImages,
		Category:          req.Category,
		Tags:              req.Tags,
		Username:          req.Username,
		CreatedAt:         time.Now(),
	}

	return s.blogRepo.Insert(ctx, blog)
}

func (s *blogService) List(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepo.GetAll(ctx)
}

// Get fetches a blog by object id when the path segment parses as one, and
// otherwise treats it as a title slug: hyphens stand in for spaces and the
// match is case-insensitive over the full title.
func (s *blogService) Get(ctx context.Context, idOrSlug string) (*models.Blog, error) {
	if oid, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
		return s.blogRepo.GetByID(ctx, oid)
	}

	title := strings.ReplaceAll(idOrSlug, "-", " ")
	return s.blogRepo.GetByTitle(ctx, title)
}

func (s *blogService) Update(ctx context.Context, id string, req repository.UpdateBlogRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}

	return s.blogRepo.Update(ctx, oid, req)
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}

	return s.blogRepo.Delete(ctx, oid)
}
