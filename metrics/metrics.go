// Package metrics holds the Prometheus collectors updated by algorithms.Run.
//
// Collectors register with the default registry on import, so a binary that
// serves promhttp.Handler() exposes them without further wiring.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "lvlgraph"

// Outcome label values for AlgorithmRunsTotal.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	AlgorithmRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "algorithm_runs_total",
		Help:      "Total number of algorithm runs by method and outcome",
	}, []string{"method", "status"})

	AlgorithmDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "algorithm_duration_seconds",
		Help:      "Wall time of a single algorithm run",
		Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 12),
	}, []string{"method"})

	TreeWeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "tree_weight",
		Help:      "Total edge weight of the last tree built by each method",
	}, []string{"method"})

	TreeEdges = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "tree_edges",
		Help:      "Number of edges in the last tree built by each method",
	}, []string{"method"})
)

// Snapshot gathers every lvlgraph_* series from g and flattens it into
// `name{k="v",...}` → value. Histograms contribute their _count and _sum.
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		name := mf.GetName()
		if !strings.HasPrefix(name, Namespace+"_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			sort.Strings(pairs)
			labels := ""
			if len(pairs) > 0 {
				labels = "{" + strings.Join(pairs, ",") + "}"
			}

			switch {
			case m.GetCounter() != nil:
				out[name+labels] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[name+labels] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[name+"_count"+labels] = float64(m.GetHistogram().GetSampleCount())
				out[name+"_sum"+labels] = m.GetHistogram().GetSampleSum()
			}
		}
	}

	return out, nil
}
