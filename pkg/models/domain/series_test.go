package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trafficFixture() TrafficSeries {
	return TrafficSeries{Records: []TrafficRecord{
		{
			Timestamp:       time.Date(2023, time.May, 31, 8, 0, 0, 0, time.UTC),
			Volume:          1180,
			TravelTime:      42.5,
			Speed:           18.2,
			CongestionLevel: CongestionHigh,
			Period:          PeriodBefore,
		},
		{
			Timestamp:       time.Date(2023, time.June, 1, 8, 0, 0, 0, time.UTC),
			Volume:          950,
			TravelTime:      38.1,
			Speed:           20.5,
			CongestionLevel: CongestionMedium,
			Period:          PeriodAfter,
		},
	}}
}

func TestTrafficSeries_Metric(t *testing.T) {
	s := trafficFixture()

	assert.Equal(t, "traffic", s.Domain())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"volume", "travel_time", "speed"}, s.Metrics())

	volume, err := s.Metric("volume")
	require.NoError(t, err)
	assert.Equal(t, []float64{1180, 950}, volume)

	speed, err := s.Metric("speed")
	require.NoError(t, err)
	assert.Equal(t, []float64{18.2, 20.5}, speed)

	_, err = s.Metric("congestion_level")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestTrafficSeries_TimestampsAndPeriods(t *testing.T) {
	s := trafficFixture()

	assert.Equal(t, []time.Time{
		time.Date(2023, time.May, 31, 8, 0, 0, 0, time.UTC),
		time.Date(2023, time.June, 1, 8, 0, 0, 0, time.UTC),
	}, s.Timestamps())
	assert.Equal(t, []Period{PeriodBefore, PeriodAfter}, s.Periods())
}

func TestEmissionsSeries_Metric(t *testing.T) {
	s := EmissionsSeries{Records: []EmissionsRecord{
		{Date: time.Date(2023, time.May, 31, 0, 0, 0, 0, time.UTC), PM25: 41.2, PM10: 56.1, O3: 49.9, NO2: 31.4, CO: 1.1, Period: PeriodBefore},
		{Date: time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), PM25: 29.8, PM10: 44.3, O3: 40.2, NO2: 19.6, CO: 0.7, Period: PeriodAfter},
	}}

	assert.Equal(t, "emissions", s.Domain())
	assert.Equal(t, []string{"pm25", "pm10", "o3", "no2", "co"}, s.Metrics())

	co, err := s.Metric("co")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.1, 0.7}, co)

	_, err = s.Metric("so2")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestRidershipSeries_Metric(t *testing.T) {
	s := RidershipSeries{Records: []RidershipRecord{
		{Date: time.Date(2023, time.May, 31, 0, 0, 0, 0, time.UTC), SubwayRiders: 5_400_000, BusRiders: 2_100_000, TotalRiders: 7_500_000, Period: PeriodBefore},
		{Date: time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), SubwayRiders: 6_000_000, BusRiders: 2_350_000, TotalRiders: 8_350_000, Period: PeriodAfter},
	}}

	assert.Equal(t, "ridership", s.Domain())
	assert.Equal(t, []string{"subway_riders", "bus_riders", "total_riders"}, s.Metrics())

	total, err := s.Metric("total_riders")
	require.NoError(t, err)
	assert.Equal(t, []float64{7_500_000, 8_350_000}, total)

	_, err = s.Metric("ferry_riders")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}
