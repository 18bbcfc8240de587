package domain

import "strings"

const (
	DefaultInstanceType = "t3.medium"
	DefaultReplicas     = 2
	DefaultCPULimit     = "500m"
	DefaultMemoryLimit  = "512Mi"
)

// DeploymentRequest describes the deployment a caller wants validated or
// turned into manifests. It lives for a single request.
type DeploymentRequest struct {
	ServiceName  string `json:"service_name" binding:"required"`
	Environment  string `json:"environment" binding:"required"`
	InstanceType string `json:"instance_type"`
	Replicas     int    `json:"replicas"`
	CPULimit     string `json:"cpu_limit"`
	MemoryLimit  string `json:"memory_limit"`
}

// NewDeploymentRequest returns a request carrying the default sizing. Decoding
// a body into it leaves omitted fields at their defaults.
func NewDeploymentRequest() DeploymentRequest {
	return DeploymentRequest{
		InstanceType: DefaultInstanceType,
		Replicas:     DefaultReplicas,
		CPULimit:     DefaultCPULimit,
		MemoryLimit:  DefaultMemoryLimit,
	}
}

// IsProduction reports whether the environment names a production tier.
func (r DeploymentRequest) IsProduction() bool {
	switch strings.ToLower(strings.TrimSpace(r.Environment)) {
	case "production", "prod":
		return true
	}
	return false
}

// ValidationResult is the JSON shape the model is asked to answer with.
type ValidationResult struct {
	Valid       bool     `json:"valid"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
	Warnings    []string `json:"warnings"`
}

// ValidationReply carries the model's text verbatim. Result is set only when
// the text decoded into the expected shape.
type ValidationReply struct {
	Raw    string
	Result *ValidationResult
}

// ManifestBundle is the cleaned YAML stream (a Deployment and a Service) plus
// any deviations noticed while inspecting it.
type ManifestBundle struct {
	YAML     string
	Warnings []string
}
