package bootstrap

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/config"
	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/service"
	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/llm"
)

// NewAIClient builds the process-wide AI provider client.
func NewAIClient(cfg config.AnthropicConfig) *llm.Client {
	return llm.NewClient(llm.Options{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		APIVersion: cfg.Version,
		Timeout:    cfg.Timeout,
	})
}

// BuildApp wires the AI client, the advisor and the router from cfg.
func BuildApp(cfg *config.Config) *gin.Engine {
	SetGinMode(cfg.App.Environment)

	advisor := service.NewDeploymentAdvisor(NewAIClient(cfg.Anthropic), service.Options{
		ValidateMaxTokens: cfg.Anthropic.ValidateMaxTokens,
		GenerateMaxTokens: cfg.Anthropic.GenerateMaxTokens,
		CheckManifests:    cfg.App.ManifestChecks,
	})

	return BuildRouter(RouterDeps{
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
		CORS:        cfg.CORS,
		Advisor:     advisor,
	})
}
