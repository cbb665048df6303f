package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"realtyshopee/internal/models"
)

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email             string `json:"email" validate:"required,email"`
	TemporaryPassword string `json:"temporaryPassword" validate:"required"`
	NewPassword       string `json:"newPassword" validate:"required"`
}

// UserResponse is the projection returned on signin. The password hash is
// never part of a response body.
type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SigninResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "Invalid signup data", http.StatusBadRequest)
		return
	}

	err := h.AuthService.Signup(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, models.ErrUserExists):
		writeError(w, "User already exists", http.StatusBadRequest)
	case err != nil:
		log.Printf("signup %s: %v", req.Email, err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
	default:
		writeJSON(w, MessageResponse{Message: "User created successfully"}, http.StatusCreated)
	}
}

func (h *Handlers) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "Invalid signin data", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Signin(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		writeError(w, "User not found", http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, "Invalid credentials", http.StatusBadRequest)
	case err != nil:
		log.Printf("signin %s: %v", req.Email, err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
	default:
		writeJSON(w, SigninResponse{
			Message: "Login successful",
			User:    UserResponse{Name: user.Name, Email: user.Email},
		}, http.StatusOK)
	}
}

func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "Invalid email", http.StatusBadRequest)
		return
	}

	err := h.AuthService.ForgotPassword(r.Context(), req.Email)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		writeError(w, "User not found", http.StatusBadRequest)
	case errors.Is(err, models.ErrMailDelivery):
		writeError(w, "An error occurred while sending the email.", http.StatusInternalServerError)
	case err != nil:
		log.Printf("forgot-password %s: %v", req.Email, err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
	default:
		writeJSON(w, MessageResponse{Message: "Temporary password sent to your email."}, http.StatusOK)
	}
}

func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "Invalid reset data", http.StatusBadRequest)
		return
	}

	err := h.AuthService.ResetPassword(r.Context(), req.Email, req.TemporaryPassword, req.NewPassword)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		writeError(w, "User not found", http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidTempPassword):
		writeError(w, "Invalid temporary password", http.StatusBadRequest)
	case err != nil:
		log.Printf("reset-password %s: %v", req.Email, err)
		writeError(w, "An error occurred. Please try again.", http.StatusInternalServerError)
	default:
		writeJSON(w, MessageResponse{Message: "Password reset successful"}, http.StatusOK)
	}
}
