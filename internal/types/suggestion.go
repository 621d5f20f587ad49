package types

// Suggestion is the single food/drink item returned by the generative backend.
type Suggestion struct {
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason"`
}

// SuggestionOptions tune the system instruction sent alongside the prompt.
type SuggestionOptions struct {
	Lang          string
	DiversityMode bool
}

// BiasResult pairs the human-readable bias lines with their machine tags.
type BiasResult struct {
	Lines []string `json:"lines"`
	Tags  []string `json:"tags"`
}

// PromptResponse is the body of GET /api/prompt.
type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// SuggestionResponse is the body of GET /api/suggestion.
type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason"`
	ImageURL   string `json:"image_url"`
}

// Response is the generic error envelope written by api.ErrorResponse.
type Response struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
