package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/domain"
	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/service"
)

// Advisor is implemented by service.DeploymentAdvisor.
type Advisor interface {
	Validate(ctx context.Context, req domain.DeploymentRequest) (*domain.ValidationReply, error)
	GenerateConfig(ctx context.Context, req domain.DeploymentRequest) (*domain.ManifestBundle, error)
}

type Handler struct {
	advisor Advisor
}

func New(advisor Advisor) *Handler {
	return &Handler{advisor: advisor}
}

// Validate handles POST /validate
func (h *Handler) Validate(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	reply, err := h.advisor.Validate(c.Request.Context(), req)
	if err != nil {
		service.NewLogger(c.Request.Context()).LogError("validate", err, "service_name", req.ServiceName)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "validation failed"})
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{Validation: reply.Raw})
}

// GenerateConfig handles POST /generate-config
func (h *Handler) GenerateConfig(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	bundle, err := h.advisor.GenerateConfig(c.Request.Context(), req)
	if err != nil {
		service.NewLogger(c.Request.Context()).LogError("generate_config", err, "service_name", req.ServiceName)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "config generation failed"})
		return
	}

	c.JSON(http.StatusOK, GenerateConfigResponse{YAML: bundle.YAML, Warnings: bundle.Warnings})
}

// bindRequest decodes the body over the default sizing so omitted fields
// keep their defaults. It writes the 400 itself when binding fails.
func bindRequest(c *gin.Context) (domain.DeploymentRequest, bool) {
	req := domain.NewDeploymentRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return req, false
	}
	return req, true
}
