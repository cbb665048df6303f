package service

import (
	"realtyshopee/internal/config"
	"realtyshopee/internal/mailer"
	"realtyshopee/internal/repository"
)

type Service struct {
	Auth     AuthService
	Property PropertyService
	Blog     BlogService
	Query    QueryService
}

func NewService(rep *repository.Repository, mail mailer.Mailer, cfg *config.Config) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, mail, cfg),
		Property: NewPropertyService(rep.Property, rep.User),
		Blog:     NewBlogService(rep.Blog),
		Query:    NewQueryService(rep.Query),
	}
}
