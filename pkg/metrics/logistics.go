package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the route analysis HTTP handler
	AnalyzeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "logistics_analyze_latency_seconds",
		Help:    "Latency of the route analysis endpoint",
		Buckets: prometheus.DefBuckets,
	})

	AnalyzeTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logistics_analyze_requests_total",
		Help: "Total route analyses served",
	})

	ExplanationFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logistics_explanation_fallback_total",
		Help: "How many times the deterministic report replaced the external generator",
	})

	DispatchTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logistics_dispatch_orders_total",
		Help: "Total dispatch orders accepted",
	})
)

func Init() {
	prometheus.MustRegister(
		AnalyzeDuration,
		AnalyzeTotal,
		ExplanationFallbackTotal,
		DispatchTotal,
	)
}
