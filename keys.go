package gatewayz

import (
	"context"
	"net/url"
	"strings"

	pkgerrors "github.com/gatewayz/gatewayz-go/pkg/errors"
	"github.com/gatewayz/gatewayz-go/pkg/types"
)

// ListAPIKeys lists the API keys of the authenticated user.
func (c *Client) ListAPIKeys(ctx context.Context) (*types.APIKeyList, error) {
	var list types.APIKeyList
	if err := c.get(ctx, "/user/api-keys", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateAPIKey creates a new API key. The secret is only returned here.
func (c *Client) CreateAPIKey(ctx context.Context, req *types.CreateAPIKeyRequest) (*types.CreateAPIKeyResponse, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, pkgerrors.Required("key_name")
	}
	var result types.CreateAPIKeyResponse
	if err := c.post(ctx, "/user/api-keys", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteAPIKey deletes the API key with the given id.
func (c *Client) DeleteAPIKey(ctx context.Context, id string) (types.Document, error) {
	if strings.TrimSpace(id) == "" {
		return nil, pkgerrors.Required("id")
	}
	var result types.Document
	if err := c.delete(ctx, "/user/api-keys/"+url.PathEscape(id), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAPIKeyUsage returns per-key usage statistics.
func (c *Client) GetAPIKeyUsage(ctx context.Context) (types.Document, error) {
	var result types.Document
	if err := c.get(ctx, "/user/api-keys/usage", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
