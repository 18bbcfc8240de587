package manifest

import (
	"fmt"

	"k8s.io/apimachinery/pkg/api/resource"
)

// CPURequest is half of the given CPU limit.
func CPURequest(limit string) (resource.Quantity, error) {
	q, err := resource.ParseQuantity(limit)
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("parse cpu limit %q: %w", limit, err)
	}
	return *resource.NewMilliQuantity(q.MilliValue()/2, resource.DecimalSI), nil
}

// MemoryRequest is three quarters of the given memory limit, kept in the
// limit's unit family (Mi/Gi stay binary, M/G stay decimal).
func MemoryRequest(limit string) (resource.Quantity, error) {
	q, err := resource.ParseQuantity(limit)
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("parse memory limit %q: %w", limit, err)
	}
	return *resource.NewQuantity(q.Value()*3/4, q.Format), nil
}
