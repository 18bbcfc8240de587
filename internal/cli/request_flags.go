package cli

import (
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/domain"
)

// addRequestFlags binds the DeploymentRequest fields to flags on cmd, with
// the same defaults the HTTP API applies.
func addRequestFlags(cmd *cobra.Command, req *domain.DeploymentRequest) {
	*req = domain.NewDeploymentRequest()

	f := cmd.Flags()
	f.StringVar(&req.ServiceName, "service-name", "", "service name (required)")
	f.StringVar(&req.Environment, "environment", "", "target environment, also used as namespace (required)")
	f.StringVar(&req.InstanceType, "instance-type", req.InstanceType, "node instance type")
	f.IntVar(&req.Replicas, "replicas", req.Replicas, "replica count")
	f.StringVar(&req.CPULimit, "cpu-limit", req.CPULimit, "container CPU limit")
	f.StringVar(&req.MemoryLimit, "memory-limit", req.MemoryLimit, "container memory limit")

	_ = cmd.MarkFlagRequired("service-name")
	_ = cmd.MarkFlagRequired("environment")
}
