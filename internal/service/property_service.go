package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"realtyshopee/internal/models"
	"realtyshopee/internal/repository"
)

type PropertyService interface {
	Add(ctx context.Context, username string, fields models.PropertyDocument, images []string) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.PropertyDocument, error)
	Get(ctx context.Context, id string) (models.PropertyDocument, error)
	GetImage(ctx context.Context, id string, index int) ([]byte, error)
}

type propertyService struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository, userRepo repository.UserRepository) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// Add inserts the property and then links its id onto the submitting user.
// The two writes are independent: when the link fails the property stays in
// the store unreferenced, and success is reported from the insert alone.
func (s *propertyService) Add(ctx context.Context, username string, fields models.PropertyDocument, images []string) (primitive.ObjectID, error) {
	doc := make(models.PropertyDocument, len(fields)+2)
	for key, value := range fields {
		doc[key] = value
	}
	if images == nil {
		images = []string{}
	}
	doc["username"] = username
	doc["propertyimages"] = images

	id, err := s.propertyRepo.Insert(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if err := s.userRepo.AppendProperty(ctx, username, id); err != nil {
		log.Printf("property %s: linking to user %q failed: %v", id.Hex(), username, err)
	}

	return id, nil
}

func (s *propertyService) List(ctx context.Context) ([]models.PropertyDocument, error) {
	return s.propertyRepo.GetAll(ctx)
}

func (s *propertyService) Get(ctx context.Context, id string) (models.PropertyDocument, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	return s.propertyRepo.GetByID(ctx, oid)
}

// GetImage decodes the stored base64 payload at the given index, stripping a
// data-URI prefix when present.
func (s *propertyService) GetImage(ctx context.Context, id string, index int) ([]byte, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	images := doc.Images()
	if index < 0 || index >= len(images) {
		return nil, models.ErrImageNotFound
	}

	raw := images[index]
	if i := strings.Index(raw, ";base64,"); i >= 0 {
		raw = raw[i+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode image %d of property %s: %w", index, id, err)
	}

	return data, nil
}
