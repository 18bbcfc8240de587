package manifest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/domain"
)

const (
	ServicePort = 8080
	HealthPath  = "/health"
)

// SplitDocuments breaks a YAML stream into its non-empty documents.
func SplitDocuments(text string) ([][]byte, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))

	var docs [][]byte
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if isEmptyDocument(&node) {
			continue
		}

		b, err := yaml.Marshal(&node)
		if err != nil {
			return nil, err
		}
		docs = append(docs, b)
	}
	return docs, nil
}

func isEmptyDocument(node *yaml.Node) bool {
	if len(node.Content) == 0 {
		return true
	}
	inner := node.Content[0]
	return inner.Kind == yaml.ScalarNode && inner.Tag == "!!null"
}

// Inspect compares a generated bundle with the request it was generated for
// and lists every deviation from what the model was asked to produce. It
// never fails: unparseable input is reported as a warning.
func Inspect(text string, req domain.DeploymentRequest) []string {
	docs, err := SplitDocuments(text)
	if err != nil {
		return []string{fmt.Sprintf("manifest is not valid YAML: %v", err)}
	}

	var (
		warnings    []string
		deployments int
		services    int
	)
	if len(docs) != 2 {
		warnings = append(warnings, fmt.Sprintf("expected 2 documents, got %d", len(docs)))
	}

	for i, doc := range docs {
		var tm metav1.TypeMeta
		if err := sigsyaml.Unmarshal(doc, &tm); err != nil {
			warnings = append(warnings, fmt.Sprintf("document %d: %v", i+1, err))
			continue
		}

		switch tm.Kind {
		case "Deployment":
			deployments++
			var d appsv1.Deployment
			if err := sigsyaml.Unmarshal(doc, &d); err != nil {
				warnings = append(warnings, fmt.Sprintf("document %d: cannot decode Deployment: %v", i+1, err))
				continue
			}
			warnings = append(warnings, checkDeployment(&d, req)...)
		case "Service":
			services++
			var s corev1.Service
			if err := sigsyaml.Unmarshal(doc, &s); err != nil {
				warnings = append(warnings, fmt.Sprintf("document %d: cannot decode Service: %v", i+1, err))
				continue
			}
			warnings = append(warnings, checkService(&s, req)...)
		default:
			warnings = append(warnings, fmt.Sprintf("document %d: unexpected kind %q", i+1, tm.Kind))
		}
	}

	if deployments == 0 {
		warnings = append(warnings, "no Deployment document found")
	}
	if services == 0 {
		warnings = append(warnings, "no Service document found")
	}
	return warnings
}

func checkDeployment(d *appsv1.Deployment, req domain.DeploymentRequest) []string {
	var w []string
	warnf := func(format string, args ...any) {
		w = append(w, "deployment: "+fmt.Sprintf(format, args...))
	}

	if d.Namespace != req.Environment {
		warnf("namespace %q does not match environment %q", d.Namespace, req.Environment)
	}
	if d.Spec.Replicas == nil {
		warnf("replicas not set, expected %d", req.Replicas)
	} else if int(*d.Spec.Replicas) != req.Replicas {
		warnf("replicas %d, expected %d", *d.Spec.Replicas, req.Replicas)
	}

	labels := d.Spec.Template.Labels
	if labels["app"] != req.ServiceName {
		warnf("pod label app=%q, expected %q", labels["app"], req.ServiceName)
	}
	if labels["env"] != req.Environment {
		warnf("pod label env=%q, expected %q", labels["env"], req.Environment)
	}

	pod := d.Spec.Template.Spec
	if len(pod.Containers) == 0 {
		warnf("no containers defined")
	}
	for _, c := range pod.Containers {
		for _, msg := range checkContainer(c, req) {
			warnf("container %q: %s", c.Name, msg)
		}
	}

	if req.IsProduction() && (pod.Affinity == nil || pod.Affinity.PodAntiAffinity == nil) {
		warnf("production deployment has no pod anti-affinity")
	}
	return w
}

func checkContainer(c corev1.Container, req domain.DeploymentRequest) []string {
	var w []string

	w = append(w, compareQuantity("cpu limit", c.Resources.Limits, corev1.ResourceCPU, req.CPULimit, nil)...)
	w = append(w, compareQuantity("memory limit", c.Resources.Limits, corev1.ResourceMemory, req.MemoryLimit, nil)...)
	w = append(w, compareQuantity("cpu request", c.Resources.Requests, corev1.ResourceCPU, req.CPULimit, CPURequest)...)
	w = append(w, compareQuantity("memory request", c.Resources.Requests, corev1.ResourceMemory, req.MemoryLimit, MemoryRequest)...)

	if msg := checkProbe("readiness", c.ReadinessProbe); msg != "" {
		w = append(w, msg)
	}
	if msg := checkProbe("liveness", c.LivenessProbe); msg != "" {
		w = append(w, msg)
	}
	return w
}

// compareQuantity checks list[name] against limit, or against derive(limit)
// when derive is set. Limits that do not parse are skipped.
func compareQuantity(label string, list corev1.ResourceList, name corev1.ResourceName, limit string, derive func(string) (resource.Quantity, error)) []string {
	var (
		want resource.Quantity
		err  error
	)
	if derive != nil {
		want, err = derive(limit)
	} else {
		want, err = resource.ParseQuantity(limit)
	}
	if err != nil {
		return nil
	}

	got, ok := list[name]
	if !ok {
		return []string{fmt.Sprintf("%s not set, expected %s", label, want.String())}
	}
	if got.Cmp(want) != 0 {
		return []string{fmt.Sprintf("%s %s, expected %s", label, got.String(), want.String())}
	}
	return nil
}

func checkProbe(kind string, p *corev1.Probe) string {
	if p == nil || p.HTTPGet == nil {
		return fmt.Sprintf("%s probe is not an HTTP GET", kind)
	}
	if p.HTTPGet.Path != HealthPath || p.HTTPGet.Port.IntValue() != ServicePort {
		return fmt.Sprintf("%s probe targets %s:%s, expected %s:%d", kind, p.HTTPGet.Path, p.HTTPGet.Port.String(), HealthPath, ServicePort)
	}
	return ""
}

func checkService(s *corev1.Service, req domain.DeploymentRequest) []string {
	var w []string
	warnf := func(format string, args ...any) {
		w = append(w, "service: "+fmt.Sprintf(format, args...))
	}

	if s.Namespace != req.Environment {
		warnf("namespace %q does not match environment %q", s.Namespace, req.Environment)
	}
	if s.Spec.Type != "" && s.Spec.Type != corev1.ServiceTypeClusterIP {
		warnf("type %s, expected %s", s.Spec.Type, corev1.ServiceTypeClusterIP)
	}
	if s.Spec.Selector["app"] != req.ServiceName {
		warnf("selector app=%q, expected %q", s.Spec.Selector["app"], req.ServiceName)
	}

	exposed := false
	for _, p := range s.Spec.Ports {
		if p.Port == ServicePort {
			exposed = true
			break
		}
	}
	if !exposed {
		warnf("port %d is not exposed", ServicePort)
	}
	return w
}
