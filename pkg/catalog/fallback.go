package catalog

import "slices"

// fallbackModels is the reference ranking shown when live data is absent.
var fallbackModels = []ModelRecord{
	{Name: "GPT-4o", Organization: "openai", Category: CategoryMultimodal, Provider: ProviderOpenAI, Tokens: 182.4, Value: Value1B, Change: 4.2, PositionChange: 0},
	{Name: "Claude 3.5 Sonnet", Organization: "anthropic", Category: CategoryLanguage, Provider: ProviderAnthropic, Tokens: 164.9, Value: Value1B, Change: 7.9, PositionChange: 1},
	{Name: "Gemini 1.5 Pro", Organization: "google", Category: CategoryMultimodal, Provider: ProviderGoogle, Tokens: 141.3, Value: Value500M, Change: -1.8, PositionChange: -1},
	{Name: "Llama 3.1 405B Instruct", Organization: "meta-llama", Category: CategoryLanguage, Provider: ProviderMeta, Tokens: 98.7, Value: Value500M, Change: 2.6, PositionChange: 0},
	{Name: "GPT-4o mini", Organization: "openai", Category: CategoryLanguage, Provider: ProviderOpenAI, Tokens: 91.2, Value: Value100M, Change: 11.4, PositionChange: 2},
	{Name: "DeepSeek Coder V2", Organization: "deepseek", Category: CategoryCode, Provider: ProviderOther, Tokens: 66.5, Value: Value100M, Change: 5.1, PositionChange: 1},
	{Name: "Mistral Large 2", Organization: "mistralai", Category: CategoryLanguage, Provider: ProviderMistral, Tokens: 52.8, Value: Value100M, Change: -3.4, PositionChange: -2},
	{Name: "Claude 3 Haiku", Organization: "anthropic", Category: CategoryLanguage, Provider: ProviderAnthropic, Tokens: 47.1, Value: Value100M, Change: -0.7, PositionChange: 0},
	{Name: "Qwen2 VL 72B Vision", Organization: "qwen", Category: CategoryVision, Provider: ProviderOther, Tokens: 31.6, Value: Value10M, Change: 9.3, PositionChange: 3},
	{Name: "Codestral", Organization: "mistralai", Category: CategoryCode, Provider: ProviderMistral, Tokens: 28.9, Value: Value10M, Change: 1.2, PositionChange: 0},
	{Name: "Whisper Large v3 Speech", Organization: "openai", Category: CategoryAudio, Provider: ProviderOpenAI, Tokens: 17.4, Value: Value10M, Change: -2.2, PositionChange: -1},
	{Name: "Text Embedding 3 Large", Organization: "openai", Category: CategoryEmbedding, Provider: ProviderOpenAI, Tokens: 14.8, Value: Value10M, Change: 0.9, PositionChange: 0},
	{Name: "Perplexity Sonar Research", Organization: "perplexity", Category: CategoryDomain, Provider: ProviderOther, Tokens: 9.6, Value: Value10M, Change: 6.5, PositionChange: 2},
	{Name: "Gemini Flash 1.5", Organization: "google", Category: CategoryLanguage, Provider: ProviderGoogle, Tokens: 8.3, Value: Value10M, Change: -4.8, PositionChange: -3},
}

// fallbackApps is the reference top-apps table (monthly token volume).
var fallbackApps = []AppRecord{
	{Name: "Cline", Description: "Autonomous coding agent in the IDE", Tokens: 96.2, Change: 12.1},
	{Name: "Roo Code", Description: "AI dev team inside the editor", Tokens: 71.5, Change: 18.4},
	{Name: "SillyTavern", Description: "Character chat frontend", Tokens: 54.0, Change: -2.3},
	{Name: "Open WebUI", Description: "Self-hosted chat interface", Tokens: 38.7, Change: 4.6},
	{Name: "Aider", Description: "Pair programming in the terminal", Tokens: 29.9, Change: 7.2},
	{Name: "LibreChat", Description: "Multi-provider chat UI", Tokens: 21.3, Change: -0.8},
	{Name: "Continue", Description: "Open-source code assistant", Tokens: 17.6, Change: 3.3},
	{Name: "Kilo Code", Description: "Agentic coding extension", Tokens: 12.4, Change: 25.0},
	{Name: "Chatbox", Description: "Desktop client for LLMs", Tokens: 8.1, Change: -5.4},
	{Name: "Novelcrafter", Description: "Writing assistant for authors", Tokens: 4.9, Change: 1.7},
}

// Fallback returns a copy of the reference model ranking.
func Fallback() []ModelRecord {
	return slices.Clone(fallbackModels)
}

// FallbackApps returns a copy of the reference top-apps table.
func FallbackApps() []AppRecord {
	return slices.Clone(fallbackApps)
}
