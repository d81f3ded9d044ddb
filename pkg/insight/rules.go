package insight

import (
	"strings"

	"mycolog/entities"
)

const (
	// SignalLowYield fires when the mean flush yield falls below the
	// configured floor. Wording is part of the API contract.
	SignalLowYield = "Yield is trending below historical norms for this batch. Early-stage optimization may improve final output."
	// SignalHumiditySwing fires when humidity readings wander too far from
	// the target on average. Wording is part of the API contract.
	SignalHumiditySwing = "Humidity fluctuations are higher than normal and may be contributing to yield inconsistency."
)

// Report is the insight endpoint payload. Summary is always the signals
// joined by a single space, empty when nothing fired.
type Report struct {
	Summary string   `json:"summary"`
	Signals []string `json:"signals"`
}

// BatchMetrics are the per-batch aggregates behind both the insight rules
// and the comparison endpoint. Each batch's metrics come only from its own
// rows.
type BatchMetrics struct {
	Flushes               int     `json:"flushes"`
	TotalYieldKg          float64 `json:"total_yield_kg"`
	MeanFlushYieldKg      float64 `json:"mean_flush_yield_kg"`
	Observations          int     `json:"observations"`
	MeanHumidityPercent   float64 `json:"mean_humidity_percent"`
	MeanHumidityDeviation float64 `json:"mean_humidity_deviation"`
}

func Aggregate(obs []entities.Observation, harvests []entities.Harvest, t Thresholds) BatchMetrics {
	m := BatchMetrics{Flushes: len(harvests), Observations: len(obs)}
	for _, h := range harvests {
		m.TotalYieldKg += h.FlushYieldKg
	}
	if m.Flushes > 0 {
		m.MeanFlushYieldKg = m.TotalYieldKg / float64(m.Flushes)
	}
	if m.Observations > 0 {
		var sum, dev float64
		for _, o := range obs {
			sum += o.RelativeHumidityPercent
			d := o.RelativeHumidityPercent - t.HumidityTargetPercent
			if d < 0 {
				d = -d
			}
			dev += d
		}
		m.MeanHumidityPercent = sum / float64(m.Observations)
		m.MeanHumidityDeviation = dev / float64(m.Observations)
	}
	return m
}

// Evaluate applies the heuristic rules in a fixed order. Each rule appends
// at most one signal; a rule with no data to judge is skipped, never
// evaluated as "false".
func Evaluate(obs []entities.Observation, harvests []entities.Harvest, t Thresholds) Report {
	m := Aggregate(obs, harvests, t)
	signals := []string{}

	// rule 1: yield trend (skipped with zero harvests)
	if m.Flushes > 0 && m.MeanFlushYieldKg < t.YieldFloorKg {
		signals = append(signals, SignalLowYield)
	}

	// rule 2: humidity deviation (skipped with zero observations — the mean
	// is undefined there, not zero)
	if m.Observations > 0 && m.MeanHumidityDeviation > t.HumidityDeviationLimit {
		signals = append(signals, SignalHumiditySwing)
	}

	return Report{Summary: strings.Join(signals, " "), Signals: signals}
}
