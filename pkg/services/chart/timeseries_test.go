package chart

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
	"github.com/urban-tools/congestion-atlas/pkg/services/synth"
)

func emissionsSeries(t *testing.T, start, end string) domain.Series {
	t.Helper()

	gen, err := synth.NewEmissionsGenerator(synth.Params{Seed: 31})
	require.NoError(t, err)

	w, err := domain.ParseWindow(start, end)
	require.NoError(t, err)

	series, err := gen.Generate(context.Background(), w)
	require.NoError(t, err)
	return series
}

func TestTimeSeries(t *testing.T) {
	series := emissionsSeries(t, "2023-05-01", "2023-07-01")

	p, err := TimeSeries(series, "pm25", domain.DefaultPolicyStart, "Daily PM2.5")
	require.NoError(t, err)

	assert.Equal(t, "Daily PM2.5", p.Title.Text)
	assert.Equal(t, "Date", p.X.Label.Text)
	assert.Equal(t, "Pm25", p.Y.Label.Text)
}

func TestTimeSeries_DefaultTitle(t *testing.T) {
	series := emissionsSeries(t, "2023-05-01", "2023-07-01")

	p, err := TimeSeries(series, "no2", domain.DefaultPolicyStart, "")
	require.NoError(t, err)

	assert.Equal(t, "No2 Before and After Congestion Pricing", p.Title.Text)
}

func TestTimeSeries_SinglePeriodWindow(t *testing.T) {
	// Entirely before the policy start, the after line is simply absent.
	series := emissionsSeries(t, "2023-01-01", "2023-01-31")

	_, err := TimeSeries(series, "pm25", domain.DefaultPolicyStart, "")
	require.NoError(t, err)
}

func TestTimeSeries_UnknownMetric(t *testing.T) {
	series := emissionsSeries(t, "2023-05-01", "2023-07-01")

	_, err := TimeSeries(series, "so2", domain.DefaultPolicyStart, "")
	assert.ErrorIs(t, err, domain.ErrUnknownMetric)
}

func TestTimeSeries_EmptySeries(t *testing.T) {
	_, err := TimeSeries(domain.EmissionsSeries{}, "pm25", domain.DefaultPolicyStart, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rows")
}

func TestTimeSeries_SavesPNG(t *testing.T) {
	series := emissionsSeries(t, "2023-05-01", "2023-07-01")

	p, err := TimeSeries(series, "pm25", domain.DefaultPolicyStart, "")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "pm25.png")
	require.NoError(t, p.Save(CanvasWidth, CanvasHeight, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestAxisLabel(t *testing.T) {
	tests := []struct {
		metric string
		want   string
	}{
		{"volume", "Volume"},
		{"travel_time", "Travel Time"},
		{"subway_riders", "Subway Riders"},
		{"pm25", "Pm25"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AxisLabel(tt.metric))
	}
}
