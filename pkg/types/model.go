package types

// Model is a raw model record from GET /models.
type Model struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Description         string       `json:"description,omitempty"`
	Created             int64        `json:"created,omitempty"`
	ContextLength       int          `json:"context_length,omitempty"`
	Pricing             *Pricing     `json:"pricing,omitempty"`
	Architecture        Architecture `json:"architecture,omitempty"`
	TopProvider         TopProvider  `json:"top_provider,omitempty"`
	SupportedParameters []string     `json:"supported_parameters,omitempty"`
}

// Pricing holds per-token prices as decimal strings, as the API sends them.
type Pricing struct {
	Prompt     string `json:"prompt,omitempty"`
	Completion string `json:"completion,omitempty"`
	Request    string `json:"request,omitempty"`
	Image      string `json:"image,omitempty"`
}

// Architecture describes model modality.
type Architecture struct {
	Modality     string `json:"modality,omitempty"`
	Tokenizer    string `json:"tokenizer,omitempty"`
	InstructType string `json:"instruct_type,omitempty"`
}

// TopProvider describes the serving provider chosen by the gateway.
type TopProvider struct {
	ContextLength       int  `json:"context_length,omitempty"`
	MaxCompletionTokens int  `json:"max_completion_tokens,omitempty"`
	IsModerated         bool `json:"is_moderated,omitempty"`
}
