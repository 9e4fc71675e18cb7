// Package metrics exposes Prometheus instrumentation for the conversation
// pipeline.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// PipelineMetrics exposes counters/histograms for detection and generation.
type PipelineMetrics struct {
	detectionFallbacks   prometheus.Counter
	generationFailures   prometheus.Counter
	enhancementFallbacks prometheus.Counter
	turnLatency          prometheus.Histogram
}

func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	m := &PipelineMetrics{
		detectionFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "codemix",
			Subsystem: "detection",
			Name:      "fallback_total",
			Help:      "Detection calls that fell back to the default record",
		}),
		generationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "codemix",
			Subsystem: "conversation",
			Name:      "generation_failure_total",
			Help:      "Reply generations that returned the fixed fallback text",
		}),
		enhancementFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "codemix",
			Subsystem: "speech",
			Name:      "enhancement_fallback_total",
			Help:      "Enhancement passes that returned the original phrase",
		}),
		turnLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "codemix",
			Subsystem: "conversation",
			Name:      "turn_latency_seconds",
			Help:      "Wall-clock latency of one conversation turn",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.detectionFallbacks, m.generationFailures, m.enhancementFallbacks, m.turnLatency)
	return m
}

func (m *PipelineMetrics) ObserveDetectionFallback() {
	if m == nil {
		return
	}
	m.detectionFallbacks.Inc()
}

func (m *PipelineMetrics) ObserveGenerationFailure() {
	if m == nil {
		return
	}
	m.generationFailures.Inc()
}

func (m *PipelineMetrics) ObserveEnhancementFallback() {
	if m == nil {
		return
	}
	m.enhancementFallbacks.Inc()
}

func (m *PipelineMetrics) ObserveTurnLatency(seconds float64) {
	if m == nil {
		return
	}
	m.turnLatency.Observe(seconds)
}
