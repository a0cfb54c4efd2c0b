package synth

import (
	"context"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
)

// Params configure a generator run. The zero value is usable: the policy
// start falls back to domain.DefaultPolicyStart and a zero seed draws one
// from the clock.
type Params struct {
	PolicyStart time.Time
	Seed        uint64
}

func (p Params) policyStart() time.Time {
	if p.PolicyStart.IsZero() {
		return domain.DefaultPolicyStart
	}
	return p.PolicyStart
}

func (p Params) source() rand.Source {
	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewSource(seed)
}

// Generator produces one domain's synthetic table for a window. Calls are
// independent: the same window, seed, and policy start reproduce the same
// table.
type Generator interface {
	Domain() string
	Metrics() []string
	Generate(ctx context.Context, w domain.Window) (domain.Series, error)
}

// sampler draws observation noise for a single Generate call. Draws
// advance the underlying source, so draw order is part of the contract.
type sampler struct {
	src rand.Source
}

func newSampler(src rand.Source) *sampler {
	return &sampler{src: src}
}

// normal draws one value from N(mu, sigma).
func (s *sampler) normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

const (
	hourly = time.Hour
	daily  = 24 * time.Hour
)

// span enumerates timestamps at the given step, both window bounds
// included.
func span(w domain.Window, step time.Duration) []time.Time {
	var out []time.Time
	for ts := w.Start; !ts.After(w.End); ts = ts.Add(step) {
		out = append(out, ts)
	}
	return out
}

// clamp floors a draw; observation noise must not push a measurement below
// its physical minimum.
func clamp(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
