package metrics

import (
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus returns a registry with build info, go runtime (gc, memory and scheduler) and
// process collectors, the process ones under namespace, plus any extra collectors (e.g. db pool stats).
func SetupPrometheus(namespace string, extra ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(
				collectors.MetricsGC,
				collectors.MetricsMemory,
				collectors.GoRuntimeMetricsRule{Matcher: regexp.MustCompile(`^/sched/goroutines:goroutines$`)},
			),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			Namespace: namespace,
		}),
	)
	for _, c := range extra {
		promRegistry.MustRegister(c)
	}

	return promRegistry
}
