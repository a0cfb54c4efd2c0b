package synth

import (
	"context"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
)

// Level is the mean and spread of one pollutant's daily draw.
type Level struct {
	Mean   float64
	Spread float64
}

// PollutantLevels pair the pre- and post-policy sampling parameters for
// one pollutant.
type PollutantLevels struct {
	Before Level
	After  Level
}

func (pl PollutantLevels) pick(policyActive bool) Level {
	if policyActive {
		return pl.After
	}
	return pl.Before
}

// EmissionsSettings hold the per-pollutant levels. Units follow the usual
// monitoring conventions: micrograms per cubic meter for the particulates
// and gases, parts per million for CO.
type EmissionsSettings struct {
	PM25 PollutantLevels
	PM10 PollutantLevels
	O3   PollutantLevels
	NO2  PollutantLevels
	CO   PollutantLevels
}

func DefaultEmissionsSettings() EmissionsSettings {
	return EmissionsSettings{
		PM25: PollutantLevels{
			Before: Level{Mean: 40, Spread: 10},
			After:  Level{Mean: 30, Spread: 8},
		},
		PM10: PollutantLevels{
			Before: Level{Mean: 55, Spread: 15},
			After:  Level{Mean: 45, Spread: 12},
		},
		O3: PollutantLevels{
			Before: Level{Mean: 50, Spread: 20},
			After:  Level{Mean: 40, Spread: 15},
		},
		NO2: PollutantLevels{
			Before: Level{Mean: 30, Spread: 8},
			After:  Level{Mean: 20, Spread: 6},
		},
		CO: PollutantLevels{
			Before: Level{Mean: 1.0, Spread: 0.3},
			After:  Level{Mean: 0.6, Spread: 0.2},
		},
	}
}

type emissionsGenerator struct {
	params   Params
	settings EmissionsSettings
}

// NewEmissionsGenerator builds the daily air-quality generator.
func NewEmissionsGenerator(p Params) (Generator, error) {
	return &emissionsGenerator{params: p, settings: DefaultEmissionsSettings()}, nil
}

func (g *emissionsGenerator) Domain() string {
	return domain.EmissionsSeries{}.Domain()
}

func (g *emissionsGenerator) Metrics() []string {
	return domain.EmissionsSeries{}.Metrics()
}

func (g *emissionsGenerator) Generate(_ context.Context, w domain.Window) (domain.Series, error) {
	var (
		policyStart = g.params.policyStart()
		noise       = newSampler(g.params.source())
		records     []domain.EmissionsRecord
	)

	// Concentrations cannot go negative, draws are floored at zero.
	draw := func(pl PollutantLevels, active bool) float64 {
		l := pl.pick(active)
		return clamp(noise.normal(l.Mean, l.Spread), 0)
	}

	for _, ts := range span(w, daily) {
		active := !ts.Before(policyStart)
		records = append(records, domain.EmissionsRecord{
			Date:         ts,
			PM25:         draw(g.settings.PM25, active),
			PM10:         draw(g.settings.PM10, active),
			O3:           draw(g.settings.O3, active),
			NO2:          draw(g.settings.NO2, active),
			CO:           draw(g.settings.CO, active),
			PolicyActive: active,
			Period:       domain.PeriodOf(ts, policyStart),
		})
	}

	return domain.EmissionsSeries{Records: records}, nil
}
