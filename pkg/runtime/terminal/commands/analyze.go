package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/urban-tools/congestion-atlas/pkg/adapters"
	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
	"github.com/urban-tools/congestion-atlas/pkg/runtime/terminal/export"
	"github.com/urban-tools/congestion-atlas/pkg/services/impact"
	"github.com/urban-tools/congestion-atlas/pkg/services/synth"
	"github.com/urban-tools/congestion-atlas/pkg/store/csvfile"
)

type AnalyzeCmd struct {
	profilePath string
	from        string
	to          string
	alpha       float64
	seed        uint64
	exportDir   string
	registry    synth.Registry
	reporter    *export.Reporter
}

func NewAnalyzeCmd(registry synth.Registry, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score every metric before vs after the policy start",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.profilePath, "profile", "", "Path to the analysis profile")
	cmd.Flags().StringVar(&ac.from, "from", "2023-01-01", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ac.to, "to", "2024-01-01", "Range end (YYYY-MM-DD), inclusive")
	cmd.Flags().Float64Var(&ac.alpha, "alpha", 0, "Significance level, overrides the profile")
	cmd.Flags().Uint64Var(&ac.seed, "seed", 0, "Noise seed, overrides the profile")
	cmd.Flags().StringVar(&ac.exportDir, "export-dir", "", "Also write the summary CSV into this directory")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	window, err := domain.ParseWindow(ac.from, ac.to)
	if err != nil {
		return err
	}

	profile, err := loadProfile(ac.profilePath)
	if err != nil {
		return err
	}
	if ac.alpha != 0 {
		profile.Alpha = ac.alpha
	}
	if ac.seed != 0 {
		profile.Seed = ac.seed
	}

	policyStart, err := profile.PolicyDate()
	if err != nil {
		return err
	}

	ctrl := impact.NewController(
		ac.registry,
		synth.Params{PolicyStart: policyStart, Seed: profile.Seed},
		profile.Alpha,
	)

	summary, err := ctrl.BuildSummary(ctx, window)
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}

	if ac.exportDir != "" {
		path, err := csvfile.NewStore(ac.exportDir).Write(adapters.MapSummaryToTable(*summary))
		if err != nil {
			return err
		}
		zerolog.Ctx(ctx).Info().Str("path", path).Msg("analysis summary saved")
	}

	return ac.reporter.Handle(summary)
}
