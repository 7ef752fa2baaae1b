package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp"`
	DB             string `json:"db"`
	CatalogVersion string `json:"catalog_version"`
	RemoteEnabled  bool   `json:"remote_enabled"`
}

// AcceptedResponse acknowledges a request whose effect arrives asynchronously.
type AcceptedResponse struct {
	Accepted bool `json:"accepted"`
}
