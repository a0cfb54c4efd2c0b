package adapters

import (
	"strconv"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
	"github.com/urban-tools/congestion-atlas/pkg/models/store"
)

// SummaryTableName is the base name the analysis summary is stored under.
const SummaryTableName = "analysis_summary"

// MapSummaryToTable flattens the digest rows. Metric and relative change
// lead the header so the summary reads left to right.
func MapSummaryToTable(s domain.Summary) store.Table {
	t := store.Table{
		Name: SummaryTableName,
		Header: []string{
			"metric", "change_pct", "domain", "before_mean", "after_mean",
			"t_statistic", "p_value", "effect_size", "significant",
		},
	}
	for _, row := range s.Rows {
		t.Rows = append(t.Rows, []string{
			row.Metric,
			formatFloat(row.PercentChange),
			row.Domain,
			formatFloat(row.BeforeMean),
			formatFloat(row.AfterMean),
			formatFloat(row.TStatistic),
			formatFloat(row.PValue),
			formatFloat(row.EffectSize),
			strconv.FormatBool(row.Significant),
		})
	}
	return t
}
