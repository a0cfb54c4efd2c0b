package domain

// Comparison is the outcome of one before/after test. Fields mirror the
// columns of the exported summary table.
type Comparison struct {
	BeforeMean    float64
	AfterMean     float64
	PercentChange float64
	TStatistic    float64
	PValue        float64
	EffectSize    float64
	Significant   bool
}

// MetricResult ties a comparison to the domain and metric it scored.
type MetricResult struct {
	Domain string
	Metric string
	Comparison
}

// Assessment is one domain's full set of metric comparisons over a window.
type Assessment struct {
	Domain  string
	Window  Window
	Results []MetricResult
}

// Summary is the cross-domain digest, rows ordered by domain then by each
// domain's metric order.
type Summary struct {
	Window Window
	Rows   []MetricResult
}
