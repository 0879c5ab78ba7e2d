package metrics

import (
	"server/internal/domain/slotcfg"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks validation outcomes and the projected generation spend.
type Metrics struct {
	validations   *prometheus.CounterVec
	selectedShots prometheus.Histogram
	estimatedUSD  prometheus.Counter
}

// New registers the slot validation metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "slot_validations_total",
			Help: "Slot validation runs by archetype and outcome.",
		}, []string{"archetype", "outcome"}),
		selectedShots: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "slot_selected_shots",
			Help:    "Images selected for generation per valid submission.",
			Buckets: prometheus.LinearBuckets(0, 1, 12),
		}),
		estimatedUSD: factory.NewCounter(prometheus.CounterOpts{
			Name: "slot_estimated_cost_usd_total",
			Help: "Cumulative estimated generation cost of valid submissions.",
		}),
	}
}

// Observe records one validation result.
func (m *Metrics) Observe(archetype string, res *slotcfg.ValidationResult) {
	if m == nil || res == nil {
		return
	}
	outcome := "invalid"
	if res.IsValid {
		outcome = "valid"
	}
	m.validations.WithLabelValues(archetype, outcome).Inc()
	if res.IsValid {
		m.selectedShots.Observe(float64(len(res.Summary.SelectedForGeneration)))
		m.estimatedUSD.Add(res.Summary.CostEstimate.EstimatedCostUSD)
	}
}
