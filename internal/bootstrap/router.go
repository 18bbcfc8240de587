package bootstrap

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/config"
	httpapi "github.com/GoSim-25-26J-441/k8s-platform-portal/internal/api/http"
	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/api/http/middleware"
	deploymenthttp "github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORS        config.CORSConfig
	Advisor     deploymenthttp.Advisor
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(CORSMiddleware(dep.CORS))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	deploymenthttp.New(dep.Advisor).Register(api)

	return r
}
