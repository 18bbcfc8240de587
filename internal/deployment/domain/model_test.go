package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeploymentRequest_DefaultsSurviveDecode(t *testing.T) {
	req := NewDeploymentRequest()
	require.NoError(t, json.Unmarshal([]byte(`{"service_name": "foo", "environment": "dev"}`), &req))

	assert.Equal(t, "foo", req.ServiceName)
	assert.Equal(t, "dev", req.Environment)
	assert.Equal(t, "t3.medium", req.InstanceType)
	assert.Equal(t, 2, req.Replicas)
	assert.Equal(t, "500m", req.CPULimit)
	assert.Equal(t, "512Mi", req.MemoryLimit)
}

func TestNewDeploymentRequest_ExplicitValuesWin(t *testing.T) {
	req := NewDeploymentRequest()
	body := `{"service_name":"payments","environment":"production","replicas":5,"cpu_limit":"1000m","memory_limit":"1Gi","instance_type":"m5.large"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, 5, req.Replicas)
	assert.Equal(t, "1000m", req.CPULimit)
	assert.Equal(t, "1Gi", req.MemoryLimit)
	assert.Equal(t, "m5.large", req.InstanceType)
}

func TestDeploymentRequest_IsProduction(t *testing.T) {
	for env, want := range map[string]bool{
		"production": true,
		"Production": true,
		"prod":       true,
		" prod ":     true,
		"staging":    false,
		"dev":        false,
		"":           false,
	} {
		req := DeploymentRequest{Environment: env}
		assert.Equal(t, want, req.IsProduction(), "environment %q", env)
	}
}
