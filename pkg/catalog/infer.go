package catalog

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/gatewayz/gatewayz-go/pkg/types"
)

type categoryRule struct {
	terms    []string
	category Category
}

// categoryRules are checked in order; the first match wins. "image" appears
// under both Vision and Multimodal, so it always resolves to Vision.
var categoryRules = []categoryRule{
	{[]string{"coder", "code"}, CategoryCode},
	{[]string{"vision", "image"}, CategoryVision},
	{[]string{"multimodal", "image"}, CategoryMultimodal},
	{[]string{"audio", "speech"}, CategoryAudio},
	{[]string{"embedding"}, CategoryEmbedding},
	{[]string{"research", "agent"}, CategoryDomain},
}

type providerRule struct {
	terms    []string
	provider Provider
}

var providerRules = []providerRule{
	{[]string{"openai"}, ProviderOpenAI},
	{[]string{"google", "gemini"}, ProviderGoogle},
	{[]string{"anthropic", "claude"}, ProviderAnthropic},
	{[]string{"meta", "llama"}, ProviderMeta},
	{[]string{"mistral"}, ProviderMistral},
}

func containsAny(s string, terms []string) bool {
	return lo.ContainsBy(terms, func(term string) bool {
		return strings.Contains(s, term)
	})
}

// InferCategory derives the category from a model's display name.
func InferCategory(name string) Category {
	name = strings.ToLower(name)
	for _, rule := range categoryRules {
		if containsAny(name, rule.terms) {
			return rule.category
		}
	}
	return CategoryLanguage
}

// InferProvider derives the provider from a composite model id such as
// "anthropic/claude-3.5-sonnet".
func InferProvider(id string) Provider {
	id = strings.ToLower(id)
	for _, rule := range providerRules {
		if containsAny(id, rule.terms) {
			return rule.provider
		}
	}
	return ProviderOther
}

// OrganizationOf returns the first path segment of a model id.
func OrganizationOf(id string) string {
	org, _, _ := strings.Cut(id, "/")
	if org == "" {
		return "Unknown"
	}
	return org
}

// EstimateTokens maps context length to a token-volume proxy in billions.
func EstimateTokens(contextLength int) float64 {
	switch {
	case contextLength > 1_000_000:
		return 20.0
	case contextLength > 100_000:
		return 15.0
	case contextLength > 10_000:
		return 10.0
	default:
		return 5.0
	}
}

// Value buckets returned by EstimateValue.
const (
	Value1B   = "$1B+"
	Value500M = "$500M+"
	Value100M = "$100M+"
	Value10M  = "$10M+"
)

// EstimateValue buckets the average of prompt and completion price.
// Missing or malformed prices count as zero.
func EstimateValue(p *types.Pricing) string {
	var prompt, completion float64
	if p != nil {
		prompt = parsePrice(p.Prompt)
		completion = parsePrice(p.Completion)
	}
	avg := (prompt + completion) / 2

	switch {
	case avg > 0.01:
		return Value1B
	case avg > 0.001:
		return Value500M
	case avg > 0.0001:
		return Value100M
	default:
		return Value10M
	}
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// trend derives a stable change percentage in [-10, 10) and a position
// change in [-3, 2] from the model id.
func trend(id string) (change float64, position int) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	sum := h.Sum64()

	change = float64(sum%2000)/100 - 10
	position = int((sum>>32)%6) - 3
	return change, position
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
