package models

type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// QueryResponse carries at most one of Note (simulator mode) or Error
// (upstream failure) next to the answer.
type QueryResponse struct {
	Answer string `json:"answer"`
	Note   string `json:"note,omitempty"`
	Error  string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Model       string `json:"model"`
	Mode        string `json:"mode"`
	Environment string `json:"environment"`
}

type InfoResponse struct {
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Status     string `json:"status"`
	APIVersion string `json:"api_version"`
}
