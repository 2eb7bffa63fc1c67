package service

import "time"

// MetricsRecorder receives the operational counters of the optimizer core.
type MetricsRecorder interface {
	GeocodeResolved(tier string)
	RoutingRequest(provider string, err error)
	OptimizeObserved(stops int, elapsed time.Duration)
}

// NoopMetrics discards every observation.
type NoopMetrics struct{}

func (NoopMetrics) GeocodeResolved(string) {}

func (NoopMetrics) RoutingRequest(string, error) {}

func (NoopMetrics) OptimizeObserved(int, time.Duration) {}
