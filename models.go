package gatewayz

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gatewayz/gatewayz-go/pkg/types"
)

// GetModels returns the model catalog. A JSON null body yields a nil slice.
func (c *Client) GetModels(ctx context.Context) ([]types.Model, error) {
	var models []types.Model
	if err := c.get(ctx, "/models", nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}

// GetModelsRaw returns the /models payload without decoding it, for callers
// that must cope with payloads of unexpected shape.
//
//	raw, err := client.GetModelsRaw(ctx)
//	src := catalog.FromPayload(raw)
//	if err != nil {
//	    src = catalog.Unavailable(err)
//	}
func (c *Client) GetModelsRaw(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, &request{method: http.MethodGet, path: "/models"})
}

// GetModelProviders returns the provider listing as raw JSON.
func (c *Client) GetModelProviders(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, &request{method: http.MethodGet, path: "/models/providers"})
}
