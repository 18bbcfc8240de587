package http

type ValidateResponse struct {
	Validation string `json:"validation"`
}

type GenerateConfigResponse struct {
	YAML     string   `json:"yaml"`
	Warnings []string `json:"warnings,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
