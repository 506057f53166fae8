package gatewayz

import (
	"context"

	pkgerrors "github.com/gatewayz/gatewayz-go/pkg/errors"
	"github.com/gatewayz/gatewayz-go/pkg/types"
)

// GetUserBalance returns the credit balance of the authenticated user.
func (c *Client) GetUserBalance(ctx context.Context) (*types.Balance, error) {
	var balance types.Balance
	if err := c.get(ctx, "/user/balance", nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// GetUserProfile returns the profile of the authenticated user.
func (c *Client) GetUserProfile(ctx context.Context) (*types.UserProfile, error) {
	var profile types.UserProfile
	if err := c.get(ctx, "/user/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateUserProfile applies update and returns the server's response.
func (c *Client) UpdateUserProfile(ctx context.Context, update *types.ProfileUpdate) (types.Document, error) {
	if update == nil {
		return nil, pkgerrors.Required("update")
	}
	var result types.Document
	if err := c.put(ctx, "/user/profile", update, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetUserMonitor returns usage monitoring data for the authenticated user.
func (c *Client) GetUserMonitor(ctx context.Context) (types.Document, error) {
	var result types.Document
	if err := c.get(ctx, "/user/monitor", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetUserLimits returns the rate limits of the authenticated user.
func (c *Client) GetUserLimits(ctx context.Context) (types.Document, error) {
	var result types.Document
	if err := c.get(ctx, "/user/limit", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
