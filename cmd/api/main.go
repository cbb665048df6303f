package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"realtyshopee/cmd/app"
	"realtyshopee/internal/config"
	handlers "realtyshopee/internal/handler"
	"realtyshopee/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.MongoURL == "" {
		log.Fatal("MONGODB_URL is not set")
	}

	db, _, services := app.App(cfg)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.CloseDB(ctx); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	handler := handlers.NewHandlers(services, cfg)

	r := mux.NewRouter()

	// setting up routes
	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	r.HandleFunc("/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/signin", handler.Signin).Methods(http.MethodPost)
	r.HandleFunc("/forgot-password", handler.ForgotPassword).Methods(http.MethodPost)
	r.HandleFunc("/reset-password", handler.ResetPassword).Methods(http.MethodPost)

	// both property paths are kept for client compatibility
	r.HandleFunc("/property/add", handler.AddProperty).Methods(http.MethodPost)
	r.HandleFunc("/add-property", handler.AddProperty).Methods(http.MethodPost)
	r.HandleFunc("/resale", handler.GetProperties).Methods(http.MethodGet)
	r.HandleFunc("/resale/{id}", handler.GetProperty).Methods(http.MethodGet)
	r.HandleFunc("/resale/{id}/{imageIndex}", handler.GetPropertyImage).Methods(http.MethodGet)

	r.HandleFunc("/add-blogs", handler.CreateBlog).Methods(http.MethodPost)
	r.HandleFunc("/blogs", handler.CreateBlog).Methods(http.MethodPost)
	r.HandleFunc("/blogs", handler.GetBlogs).Methods(http.MethodGet)
	r.HandleFunc("/blogs/{id}", handler.GetBlog).Methods(http.MethodGet)
	r.HandleFunc("/blogs/{id}", handler.UpdateBlog).Methods(http.MethodPut)
	r.HandleFunc("/blogs/{id}", handler.DeleteBlog).Methods(http.MethodDelete)

	r.HandleFunc("/query-form", handler.SubmitQuery).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware(cfg.AllowedOrigins),
		middleware.BodyLimitMiddleware(cfg.MaxBodySize),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server running on http://localhost%s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
