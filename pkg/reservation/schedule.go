package reservation

import (
	"fmt"
	"restaurant-backend/domain"
	"time"
)

const (
	DateLayout = "2006-01-02"
	slotStep   = 30
)

// opening is the first and last bookable start time of a day, in minutes
// after midnight.
type opening struct {
	first, last int
}

var (
	sundayHours  = opening{first: 16 * 60, last: 20*60 + 30}
	weekdayHours = opening{first: 17 * 60, last: 21*60 + 30}
)

func hoursOn(day time.Weekday) opening {
	if day == time.Sunday {
		return sundayHours
	}
	return weekdayHours
}

// TimeOptions lists the bookable start times of the day, every half hour.
func TimeOptions(date time.Time) []domain.TimeOption {
	hours := hoursOn(date.Weekday())
	out := make([]domain.TimeOption, 0, (hours.last-hours.first)/slotStep+1)
	for m := hours.first; m <= hours.last; m += slotStep {
		out = append(out, domain.TimeOption{Value: clock(m), Display: display(m)})
	}
	return out
}

// OnLadder reports whether hhmm is one of the bookable times of the day.
func OnLadder(date time.Time, hhmm string) bool {
	for _, opt := range TimeOptions(date) {
		if opt.Value == hhmm {
			return true
		}
	}
	return false
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return d, nil
}

// Today truncates now to midnight in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func display(minutes int) string {
	hour, minute := minutes/60, minutes%60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}
