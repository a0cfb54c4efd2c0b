package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
)

func mustWindow(t *testing.T, start, end string) domain.Window {
	t.Helper()
	w, err := domain.ParseWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestSpan_InclusiveBounds(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		step  time.Duration
		want  int
	}{
		{"two days hourly", "2023-01-01", "2023-01-02", hourly, 25},
		{"single day hourly", "2023-01-01", "2023-01-01", hourly, 1},
		{"two days daily", "2023-01-01", "2023-01-02", daily, 2},
		{"single day daily", "2023-06-01", "2023-06-01", daily, 1},
		{"full year daily", "2023-01-01", "2023-12-31", daily, 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := span(mustWindow(t, tt.start, tt.end), tt.step)
			assert.Len(t, got, tt.want)
			assert.Equal(t, mustWindow(t, tt.start, tt.end).Start, got[0])
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, clamp(-12.3, 5))
	assert.Equal(t, 5.0, clamp(5, 5))
	assert.Equal(t, 7.5, clamp(7.5, 5))
	assert.Equal(t, 0.0, clamp(-0.01, 0))
}

func TestParams_PolicyStartFallback(t *testing.T) {
	assert.Equal(t, domain.DefaultPolicyStart, Params{}.policyStart())

	custom := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, custom, Params{PolicyStart: custom}.policyStart())
}

func TestSampler_SeededDrawsRepeat(t *testing.T) {
	first := newSampler(Params{Seed: 99}.source())
	second := newSampler(Params{Seed: 99}.source())

	for i := 0; i < 10; i++ {
		assert.Equal(t, first.normal(10, 2), second.normal(10, 2), "draw %d", i)
	}
}
