package gateway

import (
	"context"
	"fmt"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
)

// ListClients returns all clients belonging to the session's user.
func (g *Gateway) ListClients(ctx context.Context) ([]domain.Client, error) {
	var out []clientSchema
	if err := g.get(ctx, "/clients/", &out, true); err != nil {
		return nil, err
	}
	clients := make([]domain.Client, 0, len(out))
	for _, c := range out {
		clients = append(clients, c.toDomain())
	}
	return clients, nil
}

// CreateClient adds a new client.
func (g *Gateway) CreateClient(ctx context.Context, input ClientInput) (*domain.Client, error) {
	if err := g.validate.Struct(input); err != nil {
		return nil, err
	}
	var out clientSchema
	if err := g.post(ctx, "/clients/", input, &out, true); err != nil {
		return nil, err
	}
	c := out.toDomain()
	return &c, nil
}

// GetClient fetches one client by id.
func (g *Gateway) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	var out clientSchema
	if err := g.get(ctx, fmt.Sprintf("/clients/%d", id), &out, true); err != nil {
		return nil, err
	}
	c := out.toDomain()
	return &c, nil
}

// UpdateClient replaces a client's fields.
func (g *Gateway) UpdateClient(ctx context.Context, id int64, input ClientInput) (*domain.Client, error) {
	if err := g.validate.Struct(input); err != nil {
		return nil, err
	}
	var out clientSchema
	if err := g.do(ctx, "PUT", fmt.Sprintf("/clients/%d", id), input, &out, true); err != nil {
		return nil, err
	}
	c := out.toDomain()
	return &c, nil
}

// DeleteClient removes a client.
func (g *Gateway) DeleteClient(ctx context.Context, id int64) error {
	return g.do(ctx, "DELETE", fmt.Sprintf("/clients/%d", id), nil, nil, true)
}
