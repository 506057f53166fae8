package gatewayz

import (
	"context"

	"github.com/gatewayz/gatewayz-go/pkg/types"
)

// Health checks the backend health endpoint. It needs no credential.
func (c *Client) Health(ctx context.Context) (*types.Health, error) {
	var health types.Health
	if err := c.get(ctx, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
