package service

import (
	"context"
	"log"
	"time"

	"realtyshopee/internal/repository"
)

// Inquiry timestamps are rendered in India Standard Time with an explicit
// offset, e.g. 2024-05-01T18:30:00+05:30.
const queryTimeLayout = "2006-01-02T15:04:05-07:00"

type QueryService interface {
	Submit(ctx context.Context, fields map[string]interface{}) error
}

type queryService struct {
	queryRepo repository.QueryRepository
	location  *time.Location
	now       func() time.Time
}

func NewQueryService(queryRepo repository.QueryRepository) QueryService {
	location, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Printf("load Asia/Kolkata failed, using fixed offset: %v", err)
		location = time.FixedZone("IST", 5*3600+30*60)
	}

	return &queryService{
		queryRepo: queryRepo,
		location:  location,
		now:       time.Now,
	}
}

func (s *queryService) Submit(ctx context.Context, fields map[string]interface{}) error {
	doc := make(map[string]interface{}, len(fields)+1)
	for key, value := range fields {
		doc[key] = value
	}
	doc["createdAt"] = s.now().In(s.location).Format(queryTimeLayout)

	return s.queryRepo.Insert(ctx, doc)
}
