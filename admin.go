package gatewayz

import (
	"context"
	"strings"

	pkgerrors "github.com/gatewayz/gatewayz-go/pkg/errors"
	"github.com/gatewayz/gatewayz-go/pkg/types"
)

// AddCredits grants credits to a user. Requires an admin credential.
func (c *Client) AddCredits(ctx context.Context, userID string, amount float64) (types.Document, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.Required("userId")
	}
	var result types.Document
	body := &types.AddCreditsRequest{UserID: userID, Amount: amount}
	if err := c.post(ctx, "/admin/add_credits", body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetSystemMonitor returns gateway-wide monitoring data. Requires an admin
// credential.
func (c *Client) GetSystemMonitor(ctx context.Context) (types.Document, error) {
	var result types.Document
	if err := c.get(ctx, "/admin/monitor", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
