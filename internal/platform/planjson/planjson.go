// Package planjson defines the JSON document form of a route plan. The same
// shape is served over HTTP, stored alongside trips and kept in the plan cache.
package planjson

import (
	"fmt"
	"time"

	"trip-log-service/internal/domain"
)

type Plan struct {
	Route Route    `json:"route"`
	Logs  []DayLog `json:"logs"`
}

type Route struct {
	// Points are [lat, lng].
	Polyline      [][]float64 `json:"polyline"`
	DistanceMiles float64     `json:"distanceMiles"`
	DurationHours float64     `json:"durationHours"`
	Stops         []Stop      `json:"stops"`
}

type Stop struct {
	Mile *float64 `json:"mile,omitempty"`
	Hour *float64 `json:"hour,omitempty"`
	Type string   `json:"type"`
}

type DayLog struct {
	Date     string    `json:"date"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	StartHour float64 `json:"startHour"`
	EndHour   float64 `json:"endHour"`
	Lane      string  `json:"lane"`
}

func FromDomain(p *domain.RoutePlan) Plan {
	polyline := make([][]float64, 0, len(p.Polyline))
	for _, c := range p.Polyline {
		polyline = append(polyline, c.LatLng())
	}

	stops := make([]Stop, 0, len(p.Stops))
	for _, s := range p.Stops {
		stops = append(stops, Stop{Mile: s.Mile, Hour: s.Hour, Type: string(s.Type)})
	}

	logs := make([]DayLog, 0, len(p.Logs))
	for _, d := range p.Logs {
		logs = append(logs, FromDayLog(d))
	}

	return Plan{
		Route: Route{
			Polyline:      polyline,
			DistanceMiles: p.DistanceMiles,
			DurationHours: p.DurationHours,
			Stops:         stops,
		},
		Logs: logs,
	}
}

func FromDayLog(d domain.DayLog) DayLog {
	return DayLog{
		Date:     d.Date.Format(time.DateOnly),
		Segments: FromSegments(d.Segments),
	}
}

func FromSegments(segments []domain.DutySegment) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, s := range segments {
		out = append(out, Segment{StartHour: s.StartHour, EndHour: s.EndHour, Lane: string(s.Lane)})
	}
	return out
}

func (p Plan) ToDomain() (*domain.RoutePlan, error) {
	polyline := make([]domain.Coordinates, 0, len(p.Route.Polyline))
	for i, pt := range p.Route.Polyline {
		if len(pt) != 2 {
			return nil, fmt.Errorf("decode plan: polyline point #%d has %d values, want 2", i+1, len(pt))
		}
		polyline = append(polyline, domain.Coordinates{Lat: pt[0], Lon: pt[1]})
	}

	stops := make([]domain.Stop, 0, len(p.Route.Stops))
	for i, s := range p.Route.Stops {
		switch domain.StopType(s.Type) {
		case domain.StopFuel:
			if s.Mile == nil {
				return nil, fmt.Errorf("decode plan: fuel stop #%d has no mile", i+1)
			}
			stops = append(stops, domain.FuelStop(*s.Mile))
		case domain.StopRest:
			if s.Hour == nil {
				return nil, fmt.Errorf("decode plan: rest stop #%d has no hour", i+1)
			}
			stops = append(stops, domain.RestStop(*s.Hour))
		default:
			return nil, fmt.Errorf("decode plan: stop #%d has unknown type %q", i+1, s.Type)
		}
	}

	logs := make([]domain.DayLog, 0, len(p.Logs))
	for _, d := range p.Logs {
		day, err := d.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
		logs = append(logs, day)
	}

	return &domain.RoutePlan{
		Polyline:      polyline,
		DistanceMiles: p.Route.DistanceMiles,
		DurationHours: p.Route.DurationHours,
		Stops:         stops,
		Logs:          logs,
	}, nil
}

func (d DayLog) ToDomain() (domain.DayLog, error) {
	date, err := time.Parse(time.DateOnly, d.Date)
	if err != nil {
		return domain.DayLog{}, fmt.Errorf("day log date %q: %w", d.Date, err)
	}

	segments, err := SegmentsToDomain(d.Segments)
	if err != nil {
		return domain.DayLog{}, fmt.Errorf("day log %s: %w", d.Date, err)
	}

	return domain.DayLog{Date: date, Segments: segments}, nil
}

func SegmentsToDomain(segments []Segment) ([]domain.DutySegment, error) {
	out := make([]domain.DutySegment, 0, len(segments))
	for i, s := range segments {
		lane := domain.Lane(s.Lane)
		switch lane {
		case domain.LaneDriving, domain.LaneOnDuty, domain.LaneOff:
		default:
			return nil, fmt.Errorf("segment #%d has unknown lane %q", i+1, s.Lane)
		}
		out = append(out, domain.DutySegment{StartHour: s.StartHour, EndHour: s.EndHour, Lane: lane})
	}
	return out, nil
}
