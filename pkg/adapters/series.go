package adapters

import (
	"fmt"
	"strconv"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
	"github.com/urban-tools/congestion-atlas/pkg/models/store"
)

// timestampLayout is used for hourly observations; daily tables keep the
// plain date form.
const timestampLayout = "2006-01-02 15:04:05"

// MapSeriesToTable flattens a generated series into its storage shape.
func MapSeriesToTable(s domain.Series) (store.Table, error) {
	switch t := s.(type) {
	case domain.TrafficSeries:
		return MapTrafficToTable(t), nil
	case domain.EmissionsSeries:
		return MapEmissionsToTable(t), nil
	case domain.RidershipSeries:
		return MapRidershipToTable(t), nil
	default:
		return store.Table{}, fmt.Errorf("no table mapping for series %q", s.Domain())
	}
}

func MapTrafficToTable(s domain.TrafficSeries) store.Table {
	t := store.Table{
		Name: s.Domain(),
		Header: []string{
			"timestamp", "volume", "travel_time", "speed", "congestion_level",
			"hour", "day_of_week", "day_name", "month", "policy_active", "period",
		},
	}
	for _, r := range s.Records {
		t.Rows = append(t.Rows, []string{
			r.Timestamp.Format(timestampLayout),
			strconv.Itoa(r.Volume),
			formatFloat(r.TravelTime),
			formatFloat(r.Speed),
			string(r.CongestionLevel),
			strconv.Itoa(r.Hour),
			strconv.Itoa(int(r.DayOfWeek)),
			r.DayOfWeek.String(),
			strconv.Itoa(int(r.Month)),
			strconv.FormatBool(r.PolicyActive),
			string(r.Period),
		})
	}
	return t
}

func MapEmissionsToTable(s domain.EmissionsSeries) store.Table {
	t := store.Table{
		Name: s.Domain(),
		Header: []string{
			"date", "pm25", "pm10", "o3", "no2", "co", "policy_active", "period",
		},
	}
	for _, r := range s.Records {
		t.Rows = append(t.Rows, []string{
			r.Date.Format(domain.DateLayout),
			formatFloat(r.PM25),
			formatFloat(r.PM10),
			formatFloat(r.O3),
			formatFloat(r.NO2),
			formatFloat(r.CO),
			strconv.FormatBool(r.PolicyActive),
			string(r.Period),
		})
	}
	return t
}

func MapRidershipToTable(s domain.RidershipSeries) store.Table {
	t := store.Table{
		Name: s.Domain(),
		Header: []string{
			"date", "subway_riders", "bus_riders", "total_riders",
			"day_of_week", "day_name", "month", "policy_active", "period",
		},
	}
	for _, r := range s.Records {
		t.Rows = append(t.Rows, []string{
			r.Date.Format(domain.DateLayout),
			strconv.Itoa(r.SubwayRiders),
			strconv.Itoa(r.BusRiders),
			strconv.Itoa(r.TotalRiders),
			strconv.Itoa(int(r.DayOfWeek)),
			r.DayOfWeek.String(),
			strconv.Itoa(int(r.Month)),
			strconv.FormatBool(r.PolicyActive),
			string(r.Period),
		})
	}
	return t
}

// formatFloat keeps the shortest decimal form that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
