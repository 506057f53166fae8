package types

// Document is a JSON object whose fields the SDK passes through untouched.
type Document map[string]any

// Balance is the response of GET /user/balance.
type Balance struct {
	APIKey  string  `json:"api_key,omitempty"`
	Credits float64 `json:"credits"`
	UserID  int64   `json:"user_id,omitempty"`
	Status  string  `json:"status,omitempty"`
}

// UserProfile is the response of GET /user/profile.
type UserProfile struct {
	UserID    int64   `json:"user_id,omitempty"`
	Username  string  `json:"username,omitempty"`
	Email     string  `json:"email,omitempty"`
	Credits   float64 `json:"credits,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// ProfileUpdate is the body of PUT /user/profile. Empty fields are omitted.
type ProfileUpdate struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Preferences any    `json:"preferences,omitempty"`
	Settings    any    `json:"settings,omitempty"`
}

// AddCreditsRequest is the body of POST /admin/add_credits.
type AddCreditsRequest struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}
