// Package status holds lock-free game telemetry.
// Writers cache metric pointers once and store through atomics; readers take a snapshot.
package status

import "sync/atomic"

// Registry is the central telemetry facade
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a plain map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		out[key] = ptr.Load()
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	r.Strings.Range(func(key string, ptr *AtomicString) {
		out[key] = ptr.Load()
	})
	return out
}
