package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"realtyshopee/internal/models"
)

type AddPropertyResponse struct {
	Message    string `json:"message"`
	PropertyID string `json:"propertyId"`
}

type PropertiesResponse struct {
	Properties []models.PropertyDocument `json:"properties"`
}

type PropertyResponse struct {
	Property models.PropertyDocument `json:"property"`
}

// AddProperty accepts either a JSON body or a multipart form. Multipart file
// parts named propertyimages are base64 encoded; string values under the
// same key are taken as already-encoded payloads.
func (h *Handlers) AddProperty(w http.ResponseWriter, r *http.Request) {
	fields := models.PropertyDocument{}
	var images []string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeError(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		for key, values := range r.MultipartForm.Value {
			if key == "propertyimages" {
				images = append(images, values...)
				continue
			}
			if len(values) == 1 {
				fields[key] = values[0]
			} else {
				fields[key] = values
			}
		}

		for _, header := range r.MultipartForm.File["propertyimages"] {
			file, err := header.Open()
			if err != nil {
				writeError(w, "Invalid request body", http.StatusBadRequest)
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				writeError(w, "Invalid request body", http.StatusBadRequest)
				return
			}
			images = append(images, base64.StdEncoding.EncodeToString(data))
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			writeError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if raw, ok := fields["propertyimages"]; ok {
			images = models.PropertyDocument{"propertyimages": raw}.Images()
			delete(fields, "propertyimages")
		}
	}

	username, _ := fields["username"].(string)
	delete(fields, "username")

	propertyID, err := h.PropertyService.Add(r.Context(), username, fields, images)
	if err != nil {
		log.Printf("add property for %q: %v", username, err)
		writeError(w, "Failed to add property", http.StatusInternalServerError)
		return
	}

	writeJSON(w, AddPropertyResponse{
		Message:    "Property added successfully",
		PropertyID: propertyID.Hex(),
	}, http.StatusOK)
}

func (h *Handlers) GetProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.PropertyService.List(r.Context())
	if err != nil {
		log.Printf("list properties: %v", err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, PropertiesResponse{Properties: properties}, http.StatusOK)
}

func (h *Handlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	property, err := h.PropertyService.Get(r.Context(), id)
	switch {
	case errors.Is(err, models.ErrInvalidID):
		writeError(w, "Invalid property ID", http.StatusNotFound)
	case errors.Is(err, models.ErrNotFound):
		writeError(w, "Property not found", http.StatusNotFound)
	case err != nil:
		log.Printf("get property %s: %v", id, err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
	default:
		writeJSON(w, PropertyResponse{Property: property}, http.StatusOK)
	}
}

func (h *Handlers) GetPropertyImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	index, err := strconv.Atoi(vars["imageIndex"])
	if err != nil {
		writeError(w, "Image not found", http.StatusNotFound)
		return
	}

	data, err := h.PropertyService.GetImage(r.Context(), id, index)
	switch {
	case errors.Is(err, models.ErrInvalidID):
		writeError(w, "Invalid property ID", http.StatusNotFound)
	case errors.Is(err, models.ErrNotFound):
		writeError(w, "Property not found", http.StatusNotFound)
	case errors.Is(err, models.ErrImageNotFound):
		writeError(w, "Image not found", http.StatusNotFound)
	case err != nil:
		log.Printf("get image %d of property %s: %v", index, id, err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
	default:
		// Content type is fixed regardless of the stored format.
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
