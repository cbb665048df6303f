package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"realtyshopee/internal/models"
	"realtyshopee/internal/repository"
	"realtyshopee/internal/service"
)

// blogForm is the common shape of create and update payloads. Tags may be a
// list or a comma-separated string; descriptionImages always arrives as a
// JSON-encoded string.
type blogForm struct {
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	FeatureImage      string      `json:"featureImage"`
	DescriptionImages string      `json:"descriptionImages"`
	Category          string      `json:"category"`
	Tags              interface{} `json:"tags"`
	Username          string      `json:"username"`
}

// parseBlogForm reads a blog payload from a JSON body or form fields
// (the web client posts multipart forms without files).
func parseBlogForm(r *http.Request) (*blogForm, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var form blogForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return nil, err
		}
		return &form, nil
	}

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, err
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, err
	}

	return &blogForm{
		Title:             r.FormValue("title"),
		Description:       r.FormValue("description"),
		FeatureImage:      r.FormValue("featureImage"),
		DescriptionImages: r.FormValue("descriptionImages"),
		Category:          r.FormValue("category"),
		Tags:              r.FormValue("tags"),
		Username:          r.FormValue("username"),
	}, nil
}

func (h *Handlers) CreateBlog(w http.ResponseWriter, r *http.Request) {
	form, err := parseBlogForm(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	images, err := service.ParseDescriptionImages(form.DescriptionImages)
	if err != nil {
		writeError(w, "Invalid descriptionImages payload", http.StatusBadRequest)
		return
	}

	_, err = h.BlogService.Create(r.Context(), service.CreateBlogRequest{
		Title:             form.Title,
		Description:       form.Description,
		FeatureImage:      form.FeatureImage,
		DescriptionImages: images,
		Category:          form.Category,
		Tags:              service.NormalizeTags(form.Tags),
		Username:          form.Username,
	})
	if err != nil {
		log.Printf("create blog %q: %v", form.Title, err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, MessageResponse{Message: "Blog created successfully"}, http.StatusCreated)
}

func (h *Handlers) GetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.BlogService.List(r.Context())
	if err != nil {
		log.Printf("list blogs: %v", err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, blogs, http.StatusOK)
}

// GetBlog serves both lookups on /blogs/{id}: a 24-hex segment is an object
// id, anything else is a title slug.
func (h *Handlers) GetBlog(w http.ResponseWriter, r *http.Request) {
	idOrSlug := mux.Vars(r)["id"]

	blog, err := h.BlogService.Get(r.Context(), idOrSlug)
	switch {
	case errors.Is(err, models.ErrNotFound):
		writeError(w, "Blog not found", http.StatusNotFound)
	case err != nil:
		log.Printf("get blog %q: %v", idOrSlug, err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
	default:
		writeJSON(w, blog, http.StatusOK)
	}
}

func (h *Handlers) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, err := parseBlogForm(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err = h.BlogService.Update(r.Context(), id, repository.UpdateBlogRequest{
		Title:        form.Title,
		Description:  form.Description,
		FeatureImage: form.FeatureImage,
		Category:     form.Category,
		Tags:         service.NormalizeTags(form.Tags),
		Username:     form.Username,
	})
	switch {
	case errors.Is(err, models.ErrInvalidID), errors.Is(err, models.ErrNotFound):
		writeError(w, "Blog not found", http.StatusNotFound)
	case err != nil:
		log.Printf("update blog %s: %v", id, err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
	default:
		writeJSON(w, MessageResponse{Message: "Blog updated successfully"}, http.StatusOK)
	}
}

func (h *Handlers) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.BlogService.Delete(r.Context(), id)
	switch {
	case errors.Is(err, models.ErrInvalidID), errors.Is(err, models.ErrNotFound):
		writeError(w, "Blog not found", http.StatusNotFound)
	case err != nil:
		log.Printf("delete blog %s: %v", id, err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
	default:
		writeJSON(w, MessageResponse{Message: "Blog deleted successfully"}, http.StatusOK)
	}
}
