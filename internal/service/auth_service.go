package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"realtyshopee/internal/config"
	"realtyshopee/internal/credentials"
	"realtyshopee/internal/mailer"
	"realtyshopee/internal/models"
	"realtyshopee/internal/repository"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) error
	Signin(ctx context.Context, email, password string) (*models.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, temporaryPassword, newPassword string) error
}

type authService struct {
	userRepo repository.UserRepository
	mail     mailer.Mailer
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, mail mailer.Mailer, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		mail:     mail,
		cfg:      cfg,
	}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) error {
	// Uniqueness is lookup-before-insert, not a store constraint; two
	// concurrent signups with the same email can race past this check.
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return models.ErrUserExists
	}

	hash, err := credentials.Hash(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Properties:   []primitive.ObjectID{},
	}

	return s.userRepo.Create(ctx, user)
}

func (s *authService) Signin(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !credentials.Verify(password, user.PasswordHash) {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return err
	}

	temporaryPassword, err := credentials.GenerateTemporaryPassword()
	if err != nil {
		return err
	}

	hash, err := credentials.Hash(temporaryPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, email, hash); err != nil {
		return err
	}

	// The stored hash is already replaced at this point. A failed send is
	// not rolled back; the account is then only reachable through a second
	// forgot-password request.
	body := fmt.Sprintf("Your temporary password is: %s. "+
		"Please use this password to login and reset your password immediately.", temporaryPassword)

	if err := s.mail.Send(email, "Password Reset", body); err != nil {
		log.Printf("forgot-password: sending mail to %s failed: %v", email, err)
		return models.ErrMailDelivery
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, email, temporaryPassword, newPassword string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !credentials.Verify(temporaryPassword, user.PasswordHash) {
		return models.ErrInvalidTempPassword
	}

	hash, err := credentials.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePasswordHash(ctx, email, hash)
}
