// Package market holds market-calendar helpers and the tracked symbol
// catalog that sit alongside the analytical pipeline.
package market

import (
	"time"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// US regular trading hours, Monday through Friday.
const (
	openHour    = 9
	openMinute  = 30
	closeHour   = 16
	closeMinute = 0
)

// Status reports whether the US market is open at the given time and the
// next open/close event. Holidays are not modeled.
func Status(now time.Time) models.MarketStatus {
	opensAt := time.Date(now.Year(), now.Month(), now.Day(), openHour, openMinute, 0, 0, now.Location())
	closesAt := time.Date(now.Year(), now.Month(), now.Day(), closeHour, closeMinute, 0, 0, now.Location())

	weekday := now.Weekday()
	isWeekday := weekday != time.Saturday && weekday != time.Sunday
	isOpen := isWeekday && !now.Before(opensAt) && !now.After(closesAt)

	var nextEvent string
	var nextEventTime time.Time

	switch {
	case isOpen:
		nextEvent = "Market Close"
		nextEventTime = closesAt
	case isWeekday && now.Before(opensAt):
		nextEvent = "Market Open"
		nextEventTime = opensAt
	default:
		nextEvent = "Market Open"
		nextEventTime = nextTradingDayOpen(now)
	}

	return models.MarketStatus{
		IsOpen:        isOpen,
		NextEvent:     nextEvent,
		NextEventTime: nextEventTime,
		TimeUntilNext: nextEventTime.Sub(now),
	}
}

func nextTradingDayOpen(now time.Time) time.Time {
	next := now.AddDate(0, 0, 1)
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return time.Date(next.Year(), next.Month(), next.Day(), openHour, openMinute, 0, 0, now.Location())
}
