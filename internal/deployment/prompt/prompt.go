package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/domain"
	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/manifest"
)

type Kind string

const (
	KindValidate       Kind = "validate"
	KindGenerateConfig Kind = "generate"
)

// Render fills the template for kind with req. Request fields only ever
// appear inside the JSON block, encoded, so they cannot close the block or
// pose as instructions.
func Render(kind Kind, req domain.DeploymentRequest) (string, error) {
	var tmpl string
	switch kind {
	case KindValidate:
		tmpl = PromptValidate
	case KindGenerateConfig:
		tmpl = PromptGenerateConfig
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownPrompt, kind)
	}

	body, err := requestJSON(req)
	if err != nil {
		return "", err
	}

	r := strings.NewReplacer(
		requestPlaceholder, body,
		cpuRequestPlaceholder, hint(manifest.CPURequest, req.CPULimit),
		memoryRequestPlaceholder, hint(manifest.MemoryRequest, req.MemoryLimit),
	)
	return r.Replace(tmpl), nil
}

func requestJSON(req domain.DeploymentRequest) (string, error) {
	b, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}
	return string(b), nil
}

// hint spells out the derived request value when the limit parses as a
// Kubernetes quantity.
func hint(derive func(string) (resource.Quantity, error), limit string) string {
	q, err := derive(limit)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" (limit %s, request %s)", limit, q.String())
}
