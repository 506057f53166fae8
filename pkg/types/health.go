package types

// Health is the response of GET /health.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
	Database  string `json:"database,omitempty"`
}

// IsHealthy reports whether the backend declared itself healthy.
func (h *Health) IsHealthy() bool {
	return h != nil && (h.Status == "healthy" || h.Status == "ok")
}
