package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownMetric reports a metric name absent from a series.
var ErrUnknownMetric = errors.New("unknown metric")

// Series is the read-side view shared by every generated table. Charting
// and scoring select numeric columns by name without caring which domain
// produced them.
type Series interface {
	// Domain names the producing domain, e.g. "traffic".
	Domain() string
	Len() int
	Timestamps() []time.Time
	Periods() []Period
	// Metrics lists the numeric column names in export order.
	Metrics() []string
	// Metric returns one numeric column. ErrUnknownMetric if absent.
	Metric(name string) ([]float64, error)
}

// TrafficRecord is one hour of simulated vehicle counts inside the
// charging zone, plus the calendar attributes derived from its timestamp.
type TrafficRecord struct {
	Timestamp       time.Time
	Volume          int
	TravelTime      float64
	Speed           float64
	CongestionLevel CongestionLevel
	Hour            int
	DayOfWeek       time.Weekday
	Month           time.Month
	PolicyActive    bool
	Period          Period
}

type TrafficSeries struct {
	Records []TrafficRecord
}

func (s TrafficSeries) Domain() string { return "traffic" }
func (s TrafficSeries) Len() int       { return len(s.Records) }

func (s TrafficSeries) Timestamps() []time.Time {
	out := make([]time.Time, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Timestamp
	}
	return out
}

func (s TrafficSeries) Periods() []Period {
	out := make([]Period, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Period
	}
	return out
}

func (s TrafficSeries) Metrics() []string {
	return []string{"volume", "travel_time", "speed"}
}

func (s TrafficSeries) Metric(name string) ([]float64, error) {
	switch name {
	case "volume":
		return collect(s.Records, func(r TrafficRecord) float64 { return float64(r.Volume) }), nil
	case "travel_time":
		return collect(s.Records, func(r TrafficRecord) float64 { return r.TravelTime }), nil
	case "speed":
		return collect(s.Records, func(r TrafficRecord) float64 { return r.Speed }), nil
	default:
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownMetric, s.Domain(), name)
	}
}

// EmissionsRecord is one day of simulated pollutant concentrations at a
// city monitoring station.
type EmissionsRecord struct {
	Date         time.Time
	PM25         float64
	PM10         float64
	O3           float64
	NO2          float64
	CO           float64
	PolicyActive bool
	Period       Period
}

type EmissionsSeries struct {
	Records []EmissionsRecord
}

func (s EmissionsSeries) Domain() string { return "emissions" }
func (s EmissionsSeries) Len() int       { return len(s.Records) }

func (s EmissionsSeries) Timestamps() []time.Time {
	out := make([]time.Time, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Date
	}
	return out
}

func (s EmissionsSeries) Periods() []Period {
	out := make([]Period, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Period
	}
	return out
}

func (s EmissionsSeries) Metrics() []string {
	return []string{"pm25", "pm10", "o3", "no2", "co"}
}

func (s EmissionsSeries) Metric(name string) ([]float64, error) {
	switch name {
	case "pm25":
		return collect(s.Records, func(r EmissionsRecord) float64 { return r.PM25 }), nil
	case "pm10":
		return collect(s.Records, func(r EmissionsRecord) float64 { return r.PM10 }), nil
	case "o3":
		return collect(s.Records, func(r EmissionsRecord) float64 { return r.O3 }), nil
	case "no2":
		return collect(s.Records, func(r EmissionsRecord) float64 { return r.NO2 }), nil
	case "co":
		return collect(s.Records, func(r EmissionsRecord) float64 { return r.CO }), nil
	default:
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownMetric, s.Domain(), name)
	}
}

// RidershipRecord is one day of simulated transit boardings by mode.
type RidershipRecord struct {
	Date         time.Time
	SubwayRiders int
	BusRiders    int
	TotalRiders  int
	DayOfWeek    time.Weekday
	Month        time.Month
	PolicyActive bool
	Period       Period
}

type RidershipSeries struct {
	Records []RidershipRecord
}

func (s RidershipSeries) Domain() string { return "ridership" }
func (s RidershipSeries) Len() int       { return len(s.Records) }

func (s RidershipSeries) Timestamps() []time.Time {
	out := make([]time.Time, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Date
	}
	return out
}

func (s RidershipSeries) Periods() []Period {
	out := make([]Period, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Period
	}
	return out
}

func (s RidershipSeries) Metrics() []string {
	return []string{"subway_riders", "bus_riders", "total_riders"}
}

func (s RidershipSeries) Metric(name string) ([]float64, error) {
	switch name {
	case "subway_riders":
		return collect(s.Records, func(r RidershipRecord) float64 { return float64(r.SubwayRiders) }), nil
	case "bus_riders":
		return collect(s.Records, func(r RidershipRecord) float64 { return float64(r.BusRiders) }), nil
	case "total_riders":
		return collect(s.Records, func(r RidershipRecord) float64 { return float64(r.TotalRiders) }), nil
	default:
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownMetric, s.Domain(), name)
	}
}

func collect[R any](records []R, pick func(R) float64) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = pick(r)
	}
	return out
}
