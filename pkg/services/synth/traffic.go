package synth

import (
	"context"
	"time"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
)

// TrafficSettings hold the structural factors behind hourly vehicle
// counts. Reductions apply from the policy start onward.
type TrafficSettings struct {
	PeakVolume       float64 // base count for 7-9h and 17-19h
	MiddayVolume     float64 // base count for 10-16h
	OffPeakVolume    float64 // base count for the remaining hours
	WeekendFactor    float64 // multiplier on Saturday and Sunday
	PeakReduction    float64 // policy effect during peak hours
	OffPeakReduction float64 // policy effect during all other hours
	NoiseScale       float64 // noise sigma as a share of the base count
}

func DefaultTrafficSettings() TrafficSettings {
	return TrafficSettings{
		PeakVolume:       1200,
		MiddayVolume:     800,
		OffPeakVolume:    400,
		WeekendFactor:    0.7,
		PeakReduction:    0.20,
		OffPeakReduction: 0.15,
		NoiseScale:       0.10,
	}
}

type trafficGenerator struct {
	params   Params
	settings TrafficSettings
}

// NewTrafficGenerator builds the hourly charging-zone traffic generator.
func NewTrafficGenerator(p Params) (Generator, error) {
	return &trafficGenerator{params: p, settings: DefaultTrafficSettings()}, nil
}

func (g *trafficGenerator) Domain() string {
	return domain.TrafficSeries{}.Domain()
}

func (g *trafficGenerator) Metrics() []string {
	return domain.TrafficSeries{}.Metrics()
}

func (g *trafficGenerator) Generate(_ context.Context, w domain.Window) (domain.Series, error) {
	var (
		policyStart = g.params.policyStart()
		noise       = newSampler(g.params.source())
		records     []domain.TrafficRecord
	)

	for _, ts := range span(w, hourly) {
		base := g.baseVolume(ts, policyStart)
		volume := clamp(noise.normal(base, base*g.settings.NoiseScale), 0)

		// Travel time and speed follow the continuous draw; the stored
		// count is truncated afterwards.
		travelTime := clamp(20+volume/100*2+noise.normal(0, 2), 5)
		speed := clamp(30-volume/100, 5)

		rec := domain.TrafficRecord{
			Timestamp:    ts,
			Volume:       int(volume),
			TravelTime:   travelTime,
			Speed:        speed,
			Hour:         ts.Hour(),
			DayOfWeek:    ts.Weekday(),
			Month:        ts.Month(),
			PolicyActive: !ts.Before(policyStart),
			Period:       domain.PeriodOf(ts, policyStart),
		}
		rec.CongestionLevel = domain.CongestionLevelOf(rec.Volume)
		records = append(records, rec)
	}

	return domain.TrafficSeries{Records: records}, nil
}

// baseVolume layers the hour-of-day profile, the weekend discount, and the
// policy reduction.
func (g *trafficGenerator) baseVolume(ts time.Time, policyStart time.Time) float64 {
	s := g.settings

	var base float64
	switch hr := ts.Hour(); {
	case isPeakHour(hr):
		base = s.PeakVolume
	case hr >= 10 && hr <= 16:
		base = s.MiddayVolume
	default:
		base = s.OffPeakVolume
	}

	if isWeekend(ts.Weekday()) {
		base *= s.WeekendFactor
	}

	if !ts.Before(policyStart) {
		if isPeakHour(ts.Hour()) {
			base *= 1 - s.PeakReduction
		} else {
			base *= 1 - s.OffPeakReduction
		}
	}
	return base
}

func isPeakHour(h int) bool {
	return (h >= 7 && h <= 9) || (h >= 17 && h <= 19)
}
