package catalog

// Category is the dashboard grouping of a model.
type Category string

// Model categories.
const (
	CategoryLanguage   Category = "Language"
	CategoryCode       Category = "Code Models"
	CategoryVision     Category = "Vision"
	CategoryMultimodal Category = "Multimodal"
	CategoryAudio      Category = "Audio & Speech Models"
	CategoryEmbedding  Category = "Embedding Models"
	CategoryDomain     Category = "Domain-Specific"

	// CategoryAll matches every category in FilterCategory.
	CategoryAll Category = "All"
)

// Categories lists every concrete category in display order.
var Categories = []Category{
	CategoryLanguage,
	CategoryCode,
	CategoryVision,
	CategoryMultimodal,
	CategoryAudio,
	CategoryEmbedding,
	CategoryDomain,
}

// ParseCategory matches s case-insensitively against the category names.
// It returns CategoryAll and false for unknown input.
func ParseCategory(s string) (Category, bool) {
	for _, c := range append([]Category{CategoryAll}, Categories...) {
		if equalFold(string(c), s) {
			return c, true
		}
	}
	return CategoryAll, false
}

// Provider is the vendor family inferred from a model id.
type Provider string

// Providers.
const (
	ProviderOpenAI    Provider = "OpenAI"
	ProviderGoogle    Provider = "Google"
	ProviderAnthropic Provider = "Anthropic"
	ProviderMeta      Provider = "Meta"
	ProviderMistral   Provider = "Mistral"
	ProviderOther     Provider = "Other"
)

// ModelRecord is one reconciled ranking row.
type ModelRecord struct {
	Name           string   `json:"name"`
	Organization   string   `json:"organization"`
	Category       Category `json:"category"`
	Provider       Provider `json:"provider"`
	Tokens         float64  `json:"tokens"` // billions
	Value          string   `json:"value"`
	Change         float64  `json:"change"` // percent
	PositionChange int      `json:"positionChange"`
}

// AppRecord is one row of the top-apps table.
type AppRecord struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Tokens      float64 `json:"tokens"` // billions, monthly
	Change      float64 `json:"change"` // percent
}
