package gatewayz

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/gatewayz/gatewayz-go/pkg/errors"
	"github.com/gatewayz/gatewayz-go/pkg/types"
)

// ChatCompletion sends a chat completion request through the gateway.
//
//	resp, err := client.ChatCompletion(ctx, &types.ChatCompletionRequest{
//	    Model: "openai/gpt-4o-mini",
//	    Messages: []types.ChatMessage{
//	        {Role: types.RoleUser, Content: "Hello"},
//	    },
//	})
//	fmt.Println(resp.Content())
func (c *Client) ChatCompletion(ctx context.Context, req *types.ChatCompletionRequest) (*types.ChatCompletionResponse, error) {
	if err := validateChatRequest(req); err != nil {
		return nil, err
	}
	var resp types.ChatCompletionResponse
	if err := c.post(ctx, "/v1/chat/completions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func validateChatRequest(req *types.ChatCompletionRequest) error {
	if req == nil {
		return pkgerrors.Required("request")
	}
	if strings.TrimSpace(req.Model) == "" {
		return pkgerrors.Required("model")
	}
	if len(req.Messages) == 0 {
		return &ValidationError{Field: "messages", Message: "at least one message is required"}
	}
	for i, m := range req.Messages {
		if m.Role == "" {
			return pkgerrors.Required(fmt.Sprintf("messages[%d].role", i))
		}
	}
	return nil
}
