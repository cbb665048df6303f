package handlers

import (
	"github.com/go-playground/validator/v10"

	"realtyshopee/internal/config"
	"realtyshopee/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	PropertyService service.PropertyService
	BlogService     service.BlogService
	QueryService    service.QueryService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(services *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:     services.Auth,
		PropertyService: services.Property,
		BlogService:     services.Blog,
		QueryService:    services.Query,
		Cfg:             cfg,
		Validate:        validator.New(),
	}
}
