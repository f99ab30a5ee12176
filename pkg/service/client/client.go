// Package client provides CRUD business logic for invoicing counterparties.
package client

import (
	"context"
	"log/slog"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
)

// Service provides owner-scoped client CRUD.
type Service struct {
	clients repository.ClientRepository
	logger  *slog.Logger
}

// New creates a client Service.
func New(clients repository.ClientRepository, logger *slog.Logger) *Service {
	return &Service{clients: clients, logger: logger}
}

func (s *Service) Create(ctx context.Context, ownerID int64, c domain.Client) (*domain.Client, error) {
	if err := s.clients.Create(ctx, ownerID, &c); err != nil {
		return nil, err
	}
	s.logger.Info("client: created", "owner_id", ownerID, "client_id", c.ID)
	return &c, nil
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]domain.Client, error) {
	return s.clients.List(ctx, ownerID)
}

func (s *Service) Get(ctx context.Context, ownerID, id int64) (*domain.Client, error) {
	return s.clients.Get(ctx, ownerID, id)
}

func (s *Service) Update(ctx context.Context, ownerID, id int64, c domain.Client) (*domain.Client, error) {
	return s.clients.Update(ctx, ownerID, id, c)
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.clients.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.logger.Info("client: deleted", "owner_id", ownerID, "client_id", id)
	return nil
}
