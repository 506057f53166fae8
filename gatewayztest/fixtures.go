package gatewayztest

import "github.com/gatewayz/gatewayz-go/pkg/types"

// SampleModels returns a small /models payload covering several providers
// and categories.
func SampleModels() []types.Model {
	return []types.Model{
		{
			ID:            "openai/gpt-4o",
			Name:          "GPT-4o",
			ContextLength: 128_000,
			Pricing:       &types.Pricing{Prompt: "0.005", Completion: "0.015"},
			Architecture:  types.Architecture{Modality: "text+image->text"},
		},
		{
			ID:            "anthropic/claude-3.5-sonnet",
			Name:          "Claude 3.5 Sonnet",
			ContextLength: 200_000,
			Pricing:       &types.Pricing{Prompt: "0.003", Completion: "0.015"},
		},
		{
			ID:            "google/gemini-1.5-pro",
			Name:          "Gemini 1.5 Pro",
			ContextLength: 2_000_000,
			Pricing:       &types.Pricing{Prompt: "0.00125", Completion: "0.005"},
		},
		{
			ID:            "deepseek/deepseek-coder",
			Name:          "DeepSeek Coder",
			ContextLength: 16_000,
			Pricing:       &types.Pricing{Prompt: "0.00014", Completion: "0.00028"},
		},
	}
}

// SampleBalance returns a /user/balance payload.
func SampleBalance() types.Balance {
	return types.Balance{APIKey: "gw_live_****cdef", Credits: 42.5, UserID: 7, Status: "active"}
}

// SampleProfile returns a /user/profile payload.
func SampleProfile() types.UserProfile {
	return types.UserProfile{UserID: 7, Username: "ada", Email: "ada@example.com", Credits: 42.5}
}
