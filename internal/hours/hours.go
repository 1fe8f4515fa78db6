package hours

import (
	"fmt"
	"time"
)

// Opening times: Tuesday is Ruhetag, every other day 12:00 - 21:30 with the
// last order slot at 21:45 excluded (orders stop at 21:xx).
const (
	openHour       = 12
	lastOrderHour  = 21
	closeHour      = 21
	closeMinute    = 30
	minLeadMinutes = 30
)

var slotMinutes = []int{0, 15, 30, 45}

// Status is the opening-hours view the storefront header shows.
type Status struct {
	Open        bool      `json:"open"`
	ClosedToday bool      `json:"closedToday"`
	OpensAt     string    `json:"opensAt,omitempty"`
	ClosesAt    string    `json:"closesAt,omitempty"`
	NextOpening time.Time `json:"nextOpening"`
}

// CurrentStatus evaluates the opening hours at the given time.
func CurrentStatus(now time.Time) Status {
	closedToday := now.Weekday() == time.Tuesday

	s := Status{
		ClosedToday: closedToday,
		NextOpening: nextOpening(now),
	}
	if closedToday {
		return s
	}

	s.OpensAt = fmt.Sprintf("%02d:00", openHour)
	s.ClosesAt = fmt.Sprintf("%02d:%02d", closeHour, closeMinute)

	minutes := now.Hour()*60 + now.Minute()
	s.Open = minutes >= openHour*60 && minutes < closeHour*60+closeMinute
	return s
}

func nextOpening(now time.Time) time.Time {
	day := now
	for {
		opens := time.Date(day.Year(), day.Month(), day.Day(), openHour, 0, 0, 0, now.Location())
		if day.Weekday() != time.Tuesday && now.Before(opens) {
			return opens
		}
		day = day.AddDate(0, 0, 1)
		now = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	}
}

// TimeSlots lists the pre-order times still selectable today: quarter-hour
// slots between opening and the last order hour, at least 30 minutes out.
// On Ruhetag there are none.
func TimeSlots(now time.Time) []string {
	if now.Weekday() == time.Tuesday {
		return nil
	}

	slots := []string{}
	for hour := openHour; hour <= lastOrderHour; hour++ {
		for _, minute := range slotMinutes {
			if hour < now.Hour() {
				continue
			}
			if hour == now.Hour() && minute <= now.Minute()+minLeadMinutes {
				continue
			}
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}
