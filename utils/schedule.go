// utils/schedule.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The weekly agenda renders a fixed 08:00-19:00 window at 47px per hour row.
const (
	GridStartHour = 8
	GridEndHour   = 19
	GridRowHeight = 47
)

// MinutesOfDay parses an "HH:MM" value into minutes since midnight.
func MinutesOfDay(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}
	return hour*60 + minute, nil
}

// ValidTimeRange reports whether end is strictly after start, both given as
// "HH:MM". Empty inputs pass; required-field checks happen elsewhere.
func ValidTimeRange(start, end string) bool {
	if start == "" || end == "" {
		return true
	}
	startMin, err := MinutesOfDay(start)
	if err != nil {
		return false
	}
	endMin, err := MinutesOfDay(end)
	if err != nil {
		return false
	}
	return endMin > startMin
}

// SlotOffset maps an hour to its vertical pixel offset within the daily
// window. Hours outside the window clamp to the nearest edge so an
// out-of-hours booking pins to the grid boundary instead of stacking at
// the top.
func SlotOffset(hour int) int {
	if hour < GridStartHour {
		hour = GridStartHour
	}
	if hour > GridEndHour {
		hour = GridEndHour
	}
	return (hour - GridStartHour) * GridRowHeight
}

// BlockGeometry returns the rendered top offset and height for a block
// spanning startHour to endHour. Height never drops below one row, so a
// zero-length block still gets a visible cell.
func BlockGeometry(startHour, endHour int) (top, height int) {
	top = SlotOffset(startHour)
	height = SlotOffset(endHour) - top
	if height < GridRowHeight {
		height = GridRowHeight
	}
	return top, height
}

// TimeRange is a half-open [Start, End) interval on the calendar.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// SlotOccupied reports whether the instant formed by day's date at
// hour:00 falls inside any of the given intervals. End-exclusive: a
// booking ending at 11:00 leaves the 11:00 slot free.
func SlotOccupied(ranges []TimeRange, day time.Time, hour int) bool {
	year, month, dayOfMonth := day.Date()
	slot := time.Date(year, month, dayOfMonth, hour, 0, 0, 0, day.Location())
	for _, r := range ranges {
		if !slot.Before(r.Start) && slot.Before(r.End) {
			return true
		}
	}
	return false
}
