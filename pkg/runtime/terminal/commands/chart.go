package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
	"github.com/urban-tools/congestion-atlas/pkg/services/chart"
	"github.com/urban-tools/congestion-atlas/pkg/services/synth"
)

type ChartCmd struct {
	profilePath string
	domainName  string
	metric      string
	from        string
	to          string
	seed        uint64
	out         string
	title       string
	registry    synth.Registry
}

func NewChartCmd(registry synth.Registry) *cobra.Command {
	cc := &ChartCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render one metric as a before/after time series figure",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profilePath, "profile", "", "Path to the analysis profile")
	cmd.Flags().StringVar(&cc.domainName, "domain", "", "Domain to chart (see the domains command)")
	cmd.Flags().StringVar(&cc.metric, "metric", "", "Metric column to chart")
	cmd.Flags().StringVar(&cc.from, "from", "2023-01-01", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&cc.to, "to", "2024-01-01", "Range end (YYYY-MM-DD), inclusive")
	cmd.Flags().Uint64Var(&cc.seed, "seed", 0, "Noise seed, overrides the profile")
	cmd.Flags().StringVar(&cc.out, "out", "", "Output image path, defaults to <out-dir>/<domain>_<metric>.png")
	cmd.Flags().StringVar(&cc.title, "title", "", "Figure title")

	_ = cmd.MarkFlagRequired("domain")
	_ = cmd.MarkFlagRequired("metric")

	return cmd
}

func (cc *ChartCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	window, err := domain.ParseWindow(cc.from, cc.to)
	if err != nil {
		return err
	}

	profile, err := loadProfile(cc.profilePath)
	if err != nil {
		return err
	}
	if cc.seed != 0 {
		profile.Seed = cc.seed
	}
	if cc.out == "" {
		cc.out = filepath.Join(profile.OutputDir, fmt.Sprintf("%s_%s.png", cc.domainName, cc.metric))
	}

	policyStart, err := profile.PolicyDate()
	if err != nil {
		return err
	}

	gen, err := cc.registry.Create(cc.domainName, synth.Params{
		PolicyStart: policyStart,
		Seed:        profile.Seed,
	})
	if err != nil {
		return err
	}

	series, err := gen.Generate(ctx, window)
	if err != nil {
		return fmt.Errorf("failed to generate %s table: %w", cc.domainName, err)
	}

	p, err := chart.TimeSeries(series, cc.metric, policyStart, cc.title)
	if err != nil {
		return err
	}

	if err := p.Save(chart.CanvasWidth, chart.CanvasHeight, cc.out); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}

	zerolog.Ctx(ctx).Info().Str("path", cc.out).Msg("chart saved")

	return nil
}
