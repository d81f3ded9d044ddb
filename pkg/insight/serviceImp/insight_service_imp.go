package serviceImp

import (
	"fmt"
	"sort"

	batchrepo "mycolog/pkg/batch/repository"
	harvestrepo "mycolog/pkg/harvest/repository"
	"mycolog/pkg/insight"
	obsrepo "mycolog/pkg/observation/repository"
)

type InsightSvc struct {
	batches  batchrepo.BatchRepository
	obs      obsrepo.ObservationRepository
	harvests harvestrepo.HarvestRepository
	t        insight.Thresholds
}

func New(b batchrepo.BatchRepository, o obsrepo.ObservationRepository, h harvestrepo.HarvestRepository, t insight.Thresholds) *InsightSvc {
	return &InsightSvc{batches: b, obs: o, harvests: h, t: t}
}

// ForBatch loads a batch's own observations (oldest first) and harvests and
// runs the rules over them.
func (s *InsightSvc) ForBatch(batchID uint) (*insight.Report, error) {
	if _, err := s.batches.FindByID(batchID); err != nil {
		return nil, err
	}
	obs, err := s.obs.ByDateAsc(batchID)
	if err != nil {
		return nil, err
	}
	harvests, err := s.harvests.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	rep := insight.Evaluate(obs, harvests, s.t)
	return &rep, nil
}

// ComparisonRow pairs one batch with its aggregates.
type ComparisonRow struct {
	BatchID       uint   `json:"batch_id"`
	SubstrateType string `json:"substrate_type"`
	insight.BatchMetrics
}

// Compare computes per-batch aggregates, each from that batch's own rows
// only, and ranks them by mean flush yield (best first, ties by batch id).
func (s *InsightSvc) Compare(batchIDs []uint) ([]ComparisonRow, error) {
	rows := make([]ComparisonRow, 0, len(batchIDs))
	for _, id := range batchIDs {
		b, err := s.batches.FindByID(id)
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", id, err)
		}
		obs, err := s.obs.ByDateAsc(id)
		if err != nil {
			return nil, err
		}
		harvests, err := s.harvests.ListByBatch(id)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ComparisonRow{
			BatchID:       id,
			SubstrateType: b.SubstrateType,
			BatchMetrics:  insight.Aggregate(obs, harvests, s.t),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].MeanFlushYieldKg != rows[j].MeanFlushYieldKg {
			return rows[i].MeanFlushYieldKg > rows[j].MeanFlushYieldKg
		}
		return rows[i].BatchID < rows[j].BatchID
	})
	return rows, nil
}
