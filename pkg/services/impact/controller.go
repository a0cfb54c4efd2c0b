package impact

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
	"github.com/urban-tools/congestion-atlas/pkg/services/stats"
	"github.com/urban-tools/congestion-atlas/pkg/services/synth"
)

// Controller runs the before/after assessment over synthetic tables.
type Controller interface {
	// AssessDomain generates one domain's table and scores every metric.
	AssessDomain(ctx context.Context, domainName string, w domain.Window) (*domain.Assessment, error)
	// BuildSummary assesses every registered domain and concatenates the
	// rows in registry order.
	BuildSummary(ctx context.Context, w domain.Window) (*domain.Summary, error)
	// SupportedDomains lists the domains the registry can generate.
	SupportedDomains() []string
}

type controller struct {
	registry synth.Registry
	params   synth.Params
	alpha    float64
}

// NewController wires the generator registry to the statistics engine.
// A zero alpha falls back to stats.DefaultAlpha.
func NewController(registry synth.Registry, params synth.Params, alpha float64) Controller {
	if alpha == 0 {
		alpha = stats.DefaultAlpha
	}
	return &controller{registry: registry, params: params, alpha: alpha}
}

func (c *controller) AssessDomain(ctx context.Context, domainName string, w domain.Window) (*domain.Assessment, error) {
	gen, err := c.registry.Create(domainName, c.params)
	if err != nil {
		return nil, err
	}

	series, err := gen.Generate(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s table: %w", domainName, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("domain", domainName).
		Int("rows", series.Len()).
		Msg("synthetic table generated")

	assessment := &domain.Assessment{Domain: domainName, Window: w}
	periods := series.Periods()

	for _, metric := range series.Metrics() {
		values, err := series.Metric(metric)
		if err != nil {
			return nil, err
		}

		before, after := splitByPeriod(values, periods)
		cmp, err := stats.Compare(before, after, c.alpha)
		if err != nil {
			return nil, fmt.Errorf("failed to compare %s/%s: %w", domainName, metric, err)
		}

		assessment.Results = append(assessment.Results, domain.MetricResult{
			Domain:     domainName,
			Metric:     metric,
			Comparison: cmp,
		})
	}

	return assessment, nil
}

func (c *controller) BuildSummary(ctx context.Context, w domain.Window) (*domain.Summary, error) {
	summary := &domain.Summary{Window: w}

	for _, name := range c.registry.Domains() {
		assessment, err := c.AssessDomain(ctx, name, w)
		if err != nil {
			return nil, err
		}
		summary.Rows = append(summary.Rows, assessment.Results...)
	}

	return summary, nil
}

func (c *controller) SupportedDomains() []string {
	return c.registry.Domains()
}

// splitByPeriod partitions one metric column by the row's period label.
func splitByPeriod(values []float64, periods []domain.Period) (before, after []float64) {
	for i, v := range values {
		if periods[i] == domain.PeriodAfter {
			after = append(after, v)
		} else {
			before = append(before, v)
		}
	}
	return before, after
}
