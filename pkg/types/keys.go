package types

// APIKey describes one API key owned by the user.
type APIKey struct {
	ID          int64    `json:"id"`
	Name        string   `json:"key_name,omitempty"`
	Key         string   `json:"api_key,omitempty"`
	Environment string   `json:"environment_tag,omitempty"`
	Scopes      []string `json:"scope_permissions,omitempty"`
	IsActive    bool     `json:"is_active"`
	IsPrimary   bool     `json:"is_primary,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	ExpiresAt   string   `json:"expiration_date,omitempty"`
	Requests    int64    `json:"requests_used,omitempty"`
}

// APIKeyList is the response of GET /user/api-keys.
type APIKeyList struct {
	Keys       []APIKey `json:"keys"`
	TotalCount int      `json:"total_keys,omitempty"`
}

// CreateAPIKeyRequest is the body of POST /user/api-keys.
type CreateAPIKeyRequest struct {
	Name           string   `json:"key_name"`
	Environment    string   `json:"environment_tag,omitempty"`
	Scopes         []string `json:"scope_permissions,omitempty"`
	ExpirationDays int      `json:"expiration_days,omitempty"`
	MaxRequests    int      `json:"max_requests,omitempty"`
}

// CreateAPIKeyResponse is the response of POST /user/api-keys.
type CreateAPIKeyResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	APIKey  string `json:"api_key"`
	KeyName string `json:"key_name,omitempty"`
}
