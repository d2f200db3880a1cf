package domain

import (
	"fmt"
	"time"
)

// Duty status of a logbook segment.
type Lane string

const (
	LaneDriving Lane = "driving"
	LaneOnDuty  Lane = "onduty"
	LaneOff     Lane = "off"
)

// Hours in one logbook day.
const DayHours = 24.0

// A half-open interval [StartHour, EndHour) within one calendar day.
type DutySegment struct {
	StartHour float64
	EndHour   float64
	Lane      Lane
}

func (s DutySegment) Hours() float64 { return s.EndHour - s.StartHour }

// One calendar day of the logbook. Date is midnight UTC.
type DayLog struct {
	Date     time.Time
	Segments []DutySegment
}

// Validate reports whether the segments partition [0, 24] without gaps or overlaps.
func (d DayLog) Validate() error {
	if len(d.Segments) == 0 {
		return fmt.Errorf("day log %s: no segments", d.Date.Format(time.DateOnly))
	}

	t := 0.0
	for i, s := range d.Segments {
		if s.StartHour != t {
			return fmt.Errorf("day log %s: segment #%d starts at %v, want %v", d.Date.Format(time.DateOnly), i+1, s.StartHour, t)
		}
		if s.EndHour <= s.StartHour {
			return fmt.Errorf("day log %s: segment #%d is empty", d.Date.Format(time.DateOnly), i+1)
		}
		t = s.EndHour
	}

	if t != DayHours {
		return fmt.Errorf("day log %s: ends at %v, want %v", d.Date.Format(time.DateOnly), t, DayHours)
	}

	return nil
}

// Sum of hours spent in the given lane.
func (d DayLog) LaneHours(lane Lane) float64 {
	total := 0.0
	for _, s := range d.Segments {
		if s.Lane == lane {
			total += s.Hours()
		}
	}
	return total
}
