// Package auth provides registration, login and token issuance.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/service/user"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Service handles credential verification and JWT issuance.
type Service struct {
	users  repository.UserRepository
	vas    repository.VirtualAccountRepository
	cfg    config.Jwt
	logger *slog.Logger
}

// New creates an auth Service.
func New(
	users repository.UserRepository,
	vas repository.VirtualAccountRepository,
	cfg config.Jwt,
	logger *slog.Logger,
) *Service {
	return &Service{users: users, vas: vas, cfg: cfg, logger: logger}
}

// Register creates a user and auto-provisions a default USD virtual account.
func (s *Service) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Create(ctx, email, string(hash))
	if err != nil {
		return nil, err
	}
	va := user.ProvisionDetails(currencyUSD)
	if err := s.vas.Create(ctx, u.ID, &va); err != nil {
		// The account can still be requested later from the dashboard.
		s.logger.Error("auth: default virtual account provisioning failed",
			"user_id", u.ID, "error", err)
	}
	s.logger.Info("auth: user registered", "user_id", u.ID)
	return u, nil
}

const currencyUSD = "USD"

// Login verifies credentials and returns a signed bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	record, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(record.HashedPassword), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.GenerateToken(&record.User)
}

// GenerateToken signs a JWT for u.
func (s *Service) GenerateToken(u *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":     u.Email,
		"user_id": u.ID,
		"exp":     time.Now().Add(s.cfg.Expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// UserIDFromToken extracts the authenticated user id from a parsed token.
func UserIDFromToken(token *jwt.Token) (int64, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrNotAuthenticated
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, domain.ErrNotAuthenticated
	}
	return int64(id), nil
}
