package synth

import (
	"context"
	"time"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
)

// RidershipSettings hold the base daily boardings per mode and the
// factors layered on top. The policy lifts transit use, winter and summer
// thin it out.
type RidershipSettings struct {
	WeekdaySubway float64
	WeekdayBus    float64
	WeekendSubway float64
	WeekendBus    float64
	SubwayLift    float64 // policy-period increase for subway
	BusLift       float64 // policy-period increase for bus
	WinterFactor  float64 // December through February
	SummerFactor  float64 // June through August
	NoiseScale    float64 // noise sigma as a share of the base count
}

func DefaultRidershipSettings() RidershipSettings {
	return RidershipSettings{
		WeekdaySubway: 5_500_000,
		WeekdayBus:    2_200_000,
		WeekendSubway: 3_500_000,
		WeekendBus:    1_500_000,
		SubwayLift:    0.10,
		BusLift:       0.08,
		WinterFactor:  0.95,
		SummerFactor:  0.90,
		NoiseScale:    0.05,
	}
}

type ridershipGenerator struct {
	params   Params
	settings RidershipSettings
}

// NewRidershipGenerator builds the daily transit boardings generator.
func NewRidershipGenerator(p Params) (Generator, error) {
	return &ridershipGenerator{params: p, settings: DefaultRidershipSettings()}, nil
}

func (g *ridershipGenerator) Domain() string {
	return domain.RidershipSeries{}.Domain()
}

func (g *ridershipGenerator) Metrics() []string {
	return domain.RidershipSeries{}.Metrics()
}

func (g *ridershipGenerator) Generate(_ context.Context, w domain.Window) (domain.Series, error) {
	var (
		policyStart = g.params.policyStart()
		noise       = newSampler(g.params.source())
		records     []domain.RidershipRecord
	)

	for _, ts := range span(w, daily) {
		active := !ts.Before(policyStart)
		subwayBase, busBase := g.baseRiders(ts, active)

		// Subway draws first, draw order is part of the seed contract.
		subway := int(clamp(noise.normal(subwayBase, subwayBase*g.settings.NoiseScale), 0))
		bus := int(clamp(noise.normal(busBase, busBase*g.settings.NoiseScale), 0))

		records = append(records, domain.RidershipRecord{
			Date:         ts,
			SubwayRiders: subway,
			BusRiders:    bus,
			TotalRiders:  subway + bus,
			DayOfWeek:    ts.Weekday(),
			Month:        ts.Month(),
			PolicyActive: active,
			Period:       domain.PeriodOf(ts, policyStart),
		})
	}

	return domain.RidershipSeries{Records: records}, nil
}

// baseRiders layers the weekend schedule, the policy lift, and the
// seasonal factor onto the base boardings.
func (g *ridershipGenerator) baseRiders(ts time.Time, policyActive bool) (subway, bus float64) {
	s := g.settings

	if isWeekend(ts.Weekday()) {
		subway, bus = s.WeekendSubway, s.WeekendBus
	} else {
		subway, bus = s.WeekdaySubway, s.WeekdayBus
	}

	if policyActive {
		subway *= 1 + s.SubwayLift
		bus *= 1 + s.BusLift
	}

	season := g.seasonalFactor(ts.Month())
	return subway * season, bus * season
}

func (g *ridershipGenerator) seasonalFactor(m time.Month) float64 {
	switch m {
	case time.December, time.January, time.February:
		return g.settings.WinterFactor
	case time.June, time.July, time.August:
		return g.settings.SummerFactor
	default:
		return 1.0
	}
}
