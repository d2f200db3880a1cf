package services

import (
	"math"
	"time"

	"trip-log-service/internal/domain"
)

// Hours-of-service limits and planning assumptions.
const (
	MaxDrivingHoursPerDay = 11.0
	OnDutyWindowHours     = 14.0
	CycleLimitHours       = 70.0
	BreakThresholdHours   = 8.0
	BreakHours            = 0.5
	PickupHours           = 1.0
	DropoffHours          = 1.0

	AverageSpeedMPH = 55.0
	// Driving assumed when no distance could be estimated.
	FallbackDriveHours = 8.0
)

// DriveAllotment breaks down how a day's driving time was derived so each
// cap can be inspected on its own.
type DriveAllotment struct {
	// Candidate driving before the on-duty window is considered.
	RawHours float64
	// On-duty time held back for the mandatory break.
	BreakReserve float64
	// On-duty time held back for dropoff when the day can finish the trip.
	DropoffReserve float64
	// On-duty time left in the 14-hour window, capped by the cycle.
	OnDutyAvailable float64
	// OnDutyAvailable minus reserves, floored at zero.
	AvailableAfterOverhead float64
	// Driving actually scheduled for the day.
	DriveHours float64
}

// DailyDriveAllotment sizes one day's driving given where the on-duty window
// starts, the cycle hours left and the driving still to do.
func DailyDriveAllotment(windowStart, cycleHoursRemaining, remainingDriveHours float64) DriveAllotment {
	want := remainingDriveHours
	if want <= 0 {
		want = FallbackDriveHours
	}

	a := DriveAllotment{RawHours: math.Min(MaxDrivingHoursPerDay, want)}

	if a.RawHours > BreakThresholdHours {
		a.BreakReserve = BreakHours
	}
	if remainingDriveHours > 0 && a.RawHours >= remainingDriveHours {
		a.DropoffReserve = DropoffHours
	}

	a.OnDutyAvailable = math.Min(math.Max(0, OnDutyWindowHours-windowStart), cycleHoursRemaining)
	a.AvailableAfterOverhead = math.Max(0, a.OnDutyAvailable-a.BreakReserve-a.DropoffReserve)
	a.DriveHours = math.Max(0, math.Min(a.RawHours, a.AvailableAfterOverhead))

	return a
}

type dayOutcome int

const (
	dayContinue dayOutcome = iota
	dayCycleExhausted
	dayDrivingComplete
	dayZeroDistance
)

// Scheduler state carried from one day to the next. Both hour counters
// only ever decrease.
type dutyState struct {
	cycleHoursRemaining float64
	remainingDriveHours float64
	dayIndex            int
}

func newDutyState(drivingHoursTotal, cycleHoursUsed float64) dutyState {
	if math.IsNaN(cycleHoursUsed) {
		cycleHoursUsed = 0
	}
	return dutyState{
		cycleHoursRemaining: math.Max(0, CycleLimitHours-cycleHoursUsed),
		remainingDriveHours: math.Max(0, drivingHoursTotal),
	}
}

// advanceDay schedules a single day and returns its segments, the state for
// the following day and whether planning should stop.
func advanceDay(s dutyState, zeroDistance bool) ([]domain.DutySegment, dutyState, dayOutcome) {
	next := s
	next.dayIndex++

	if s.cycleHoursRemaining <= 0 {
		return offDutyDay(), next, dayCycleExhausted
	}

	segments := make([]domain.DutySegment, 0, 6)
	windowStart := 0.0

	if s.dayIndex == 0 {
		segments = append(segments, domain.DutySegment{StartHour: 0, EndHour: PickupHours, Lane: domain.LaneOnDuty})
		next.cycleHoursRemaining = math.Max(0, next.cycleHoursRemaining-PickupHours)
		windowStart = PickupHours
	}

	a := DailyDriveAllotment(windowStart, next.cycleHoursRemaining, next.remainingDriveHours)
	drive := a.DriveHours

	// Past the first day a zero allotment means the cycle hours left can never
	// be turned into driving; treat the cycle as exhausted.
	if drive == 0 && s.dayIndex > 0 && next.remainingDriveHours > 0 {
		return offDutyDay(), next, dayCycleExhausted
	}

	t := windowStart
	onDutyUsed := drive
	switch {
	case drive > BreakThresholdHours:
		breakStart := t + BreakThresholdHours
		breakEnd := breakStart + BreakHours
		end := breakEnd + (drive - BreakThresholdHours)
		segments = append(segments,
			domain.DutySegment{StartHour: t, EndHour: breakStart, Lane: domain.LaneDriving},
			domain.DutySegment{StartHour: breakStart, EndHour: breakEnd, Lane: domain.LaneOnDuty},
			domain.DutySegment{StartHour: breakEnd, EndHour: end, Lane: domain.LaneDriving},
		)
		t = end
		onDutyUsed += BreakHours
	case drive > 0:
		end := t + drive
		segments = append(segments, domain.DutySegment{StartHour: t, EndHour: end, Lane: domain.LaneDriving})
		t = end
	}

	next.cycleHoursRemaining = math.Max(0, next.cycleHoursRemaining-onDutyUsed)
	next.remainingDriveHours = math.Max(0, next.remainingDriveHours-drive)

	if next.remainingDriveHours <= 0 && next.cycleHoursRemaining > 0 {
		drop := math.Min(DropoffHours, next.cycleHoursRemaining)
		end := math.Min(domain.DayHours, t+drop)
		if end > t {
			segments = append(segments, domain.DutySegment{StartHour: t, EndHour: end, Lane: domain.LaneOnDuty})
			t = end
		}
		next.cycleHoursRemaining = math.Max(0, next.cycleHoursRemaining-drop)
	}

	// The overnight off segment stands in for the 10-hour reset.
	if t < domain.DayHours {
		segments = append(segments, domain.DutySegment{StartHour: t, EndHour: domain.DayHours, Lane: domain.LaneOff})
	}

	switch {
	case next.remainingDriveHours <= 0:
		return segments, next, dayDrivingComplete
	case zeroDistance:
		return segments, next, dayZeroDistance
	default:
		return segments, next, dayContinue
	}
}

func offDutyDay() []domain.DutySegment {
	return []domain.DutySegment{{StartHour: 0, EndHour: domain.DayHours, Lane: domain.LaneOff}}
}

// ScheduleDutyDays lays out driving, on-duty and off-duty time across
// consecutive days starting at startDate. At least one day is always returned.
func ScheduleDutyDays(distanceMiles, drivingHoursTotal, cycleHoursUsed float64, startDate time.Time) []domain.DayLog {
	start := domain.DateOf(startDate)
	state := newDutyState(drivingHoursTotal, cycleHoursUsed)

	logs := make([]domain.DayLog, 0, 4)
	for {
		segments, next, outcome := advanceDay(state, distanceMiles == 0)
		logs = append(logs, domain.DayLog{
			Date:     start.AddDate(0, 0, state.dayIndex),
			Segments: segments,
		})
		if outcome != dayContinue {
			return logs
		}
		state = next
	}
}
