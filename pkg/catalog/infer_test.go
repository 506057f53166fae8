package catalog

import (
	"testing"

	"github.com/gatewayz/gatewayz-go/pkg/types"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"Qwen2.5 Coder 32B", CategoryCode},
		{"Vision-Pro-Image-1", CategoryVision},
		{"Stable Image XL", CategoryVision},
		{"Multimodal Large", CategoryMultimodal},
		{"Whisper Speech", CategoryAudio},
		{"Audio Transcriber", CategoryAudio},
		{"Text Embedding 3", CategoryEmbedding},
		{"Deep Research Agent", CategoryDomain},
		{"GPT-4o", CategoryLanguage},
		{"", CategoryLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferCategory(tt.name); got != tt.want {
				t.Errorf("InferCategory(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestInferProvider(t *testing.T) {
	tests := []struct {
		id   string
		want Provider
	}{
		{"openai/gpt-4o", ProviderOpenAI},
		{"google/gemini-pro", ProviderGoogle},
		{"x/gemini-clone", ProviderGoogle},
		{"anthropic/claude-3.5-sonnet", ProviderAnthropic},
		{"meta-llama/llama-3.1-70b", ProviderMeta},
		{"mistralai/mistral-large", ProviderMistral},
		{"qwen/qwen-2", ProviderOther},
		{"OpenAI/GPT-4", ProviderOpenAI},
	}

	for _, tt := range tests {
		if got := InferProvider(tt.id); got != tt.want {
			t.Errorf("InferProvider(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestOrganizationOf(t *testing.T) {
	tests := map[string]string{
		"anthropic/claude-3": "anthropic",
		"standalone":         "standalone",
		"/leading":           "Unknown",
		"":                   "Unknown",
	}
	for id, want := range tests {
		if got := OrganizationOf(id); got != want {
			t.Errorf("OrganizationOf(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		contextLength int
		want          float64
	}{
		{2_000_000, 20},
		{1_000_001, 20},
		{1_000_000, 15},
		{128_000, 15},
		{100_000, 10},
		{32_000, 10},
		{10_000, 5},
		{5_000, 5},
		{0, 5},
	}
	for _, tt := range tests {
		if got := EstimateTokens(tt.contextLength); got != tt.want {
			t.Errorf("EstimateTokens(%d) = %v, want %v", tt.contextLength, got, tt.want)
		}
	}
}

func TestEstimateValue(t *testing.T) {
	tests := []struct {
		name    string
		pricing *types.Pricing
		want    string
	}{
		{"nil pricing", nil, Value10M},
		{"expensive", &types.Pricing{Prompt: "0.015", Completion: "0.075"}, Value1B},
		{"mid", &types.Pricing{Prompt: "0.003", Completion: "0.015"}, Value500M},
		{"cheaper", &types.Pricing{Prompt: "0.001", Completion: "0.002"}, Value500M},
		{"budget", &types.Pricing{Prompt: "0.0002", Completion: "0.0004"}, Value100M},
		{"free", &types.Pricing{Prompt: "0", Completion: "0"}, Value10M},
		{"malformed", &types.Pricing{Prompt: "n/a", Completion: "0.03"}, Value1B},
		{"all malformed", &types.Pricing{Prompt: "x", Completion: "y"}, Value10M},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateValue(tt.pricing); got != tt.want {
				t.Errorf("EstimateValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrendIsStable(t *testing.T) {
	c1, p1 := trend("openai/gpt-4o")
	c2, p2 := trend("openai/gpt-4o")
	if c1 != c2 || p1 != p2 {
		t.Fatalf("trend not stable: (%v, %d) vs (%v, %d)", c1, p1, c2, p2)
	}

	for _, id := range []string{"", "a", "anthropic/claude-3-opus", "meta-llama/llama-3-8b"} {
		change, pos := trend(id)
		if change < -10 || change >= 10 {
			t.Errorf("trend(%q) change = %v, out of range", id, change)
		}
		if pos < -3 || pos > 2 {
			t.Errorf("trend(%q) position = %d, out of range", id, pos)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("code models"); !ok || c != CategoryCode {
		t.Errorf("ParseCategory(code models) = %q, %v", c, ok)
	}
	if c, ok := ParseCategory("all"); !ok || c != CategoryAll {
		t.Errorf("ParseCategory(all) = %q, %v", c, ok)
	}
	if c, ok := ParseCategory("nope"); ok || c != CategoryAll {
		t.Errorf("ParseCategory(nope) = %q, %v", c, ok)
	}
}
