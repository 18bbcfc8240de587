package http

import "github.com/gin-gonic/gin"

// Register registers the deployment routes
func (h *Handler) Register(rg gin.IRouter) {
	rg.POST("/validate", h.Validate)
	rg.POST("/generate-config", h.GenerateConfig)
}
