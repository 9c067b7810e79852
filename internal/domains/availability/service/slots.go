package service

import (
	"fmt"
	"time"

	"intervuex/internal/domains/availability/model"
	"intervuex/internal/domains/availability/model/dto"
)

// Window is one generated interview window, expressed in minutes from
// midnight of the target date.
type Window struct {
	StartMinute int
	EndMinute   int
}

// BookedRange is an occupied time range on the target date.
type BookedRange struct {
	StartMinute int
	EndMinute   int
}

// GenerateWindows expands a day rule into the ordered list of fixed-duration
// interview windows it allows: packed from the rule's start time, advancing
// by duration+buffer between window starts, stopping before any window would
// end after the rule's end time. Disabled or unusable rules yield an empty
// list, never an error. The expansion is deterministic.
func GenerateWindows(rule model.DayRule, durationMinutes int) []Window {
	if !rule.Enabled || durationMinutes <= 0 || rule.BufferMinutes < 0 {
		return nil
	}

	start := MinuteOfDay(rule.StartTime)
	end := MinuteOfDay(rule.EndTime)

	if start >= end {
		return nil
	}

	step := durationMinutes + rule.BufferMinutes

	var windows []Window

	for s := start; s+durationMinutes <= end; s += step {
		windows = append(windows, Window{
			StartMinute: s,
			EndMinute:   s + durationMinutes,
		})
	}

	return windows
}

// ReconcileWindows merges generated windows with the occupied ranges and the
// current time into the caller-facing slot list. A window overlapping any
// occupied range (by intersection, not exact match) is unavailable, as is any
// window starting at or before nowMinute when the target date is today. The
// full list is returned so callers can render booked versus free.
func ReconcileWindows(windows []Window, booked []BookedRange, isToday bool, nowMinute int) []dto.SlotResponse {
	slots := make([]dto.SlotResponse, len(windows))

	for i, window := range windows {
		available := true

		for _, b := range booked {
			if window.StartMinute < b.EndMinute && window.EndMinute > b.StartMinute {
				available = false

				break
			}
		}

		if available && isToday && window.StartMinute <= nowMinute {
			available = false
		}

		slots[i] = dto.SlotResponse{
			StartTime: FormatMinute(window.StartMinute),
			EndTime:   FormatMinute(window.EndMinute),
			Available: available,
		}
	}

	return slots
}

// MinuteOfDay reduces a time to its minute offset from midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatMinute renders a minute offset as HH:MM.
func FormatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
