package tariff

import (
	"fmt"
	"time"

	"cpq_quote/internal/domain/entities"
)

// maxBusinessDays bounds AddBusinessDays so the date arithmetic cannot overflow.
const maxBusinessDays = 100 * entities.MaxDeliveryDays

var russianMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// DeliveryDate is a business-day count resolved to a calendar date.
type DeliveryDate struct {
	Days          int       `json:"days"`
	Date          time.Time `json:"date"`
	FormattedDate string    `json:"formatted_date"`
}

// DeliveryDates holds one resolved date per variant.
type DeliveryDates struct {
	Standard  DeliveryDate `json:"standard"`
	Urgent    DeliveryDate `json:"urgent"`
	Strategic DeliveryDate `json:"strategic"`
}

// AddBusinessDays moves start forward by n working days, skipping Saturdays and
// Sundays. n <= 0 returns start unchanged. Whole weeks are added in one step, so
// the cost does not grow with n.
func AddBusinessDays(start time.Time, n int) time.Time {
	if n <= 0 {
		return start
	}
	n = min(n, maxBusinessDays)

	current := start
	// From a weekend, any five working days end on a Friday plus whole weeks; step
	// onto the preceding Friday so the week arithmetic holds.
	switch current.Weekday() {
	case time.Saturday:
		current = current.AddDate(0, 0, -1)
	case time.Sunday:
		current = current.AddDate(0, 0, -2)
	}

	weeks, rest := (n-1)/5, (n-1)%5+1
	current = current.AddDate(0, 0, weeks*7)
	for added := 0; added < rest; {
		current = current.AddDate(0, 0, 1)
		if wd := current.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return current
}

// FormatRussianDate renders t as "21 октября 2025".
func FormatRussianDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), russianMonths[t.Month()-1], t.Year())
}

func resolveDeliveryDate(now time.Time, days int) DeliveryDate {
	d := AddBusinessDays(now, days)
	return DeliveryDate{Days: days, Date: d, FormattedDate: FormatRussianDate(d)}
}

// ResolveDeliveryDates turns an (already overridden) schedule into calendar dates.
func ResolveDeliveryDates(schedule entities.DeliveryDaySchedule, now time.Time) DeliveryDates {
	return DeliveryDates{
		Standard:  resolveDeliveryDate(now, schedule.Standard),
		Urgent:    resolveDeliveryDate(now, schedule.Urgent),
		Strategic: resolveDeliveryDate(now, schedule.Strategic),
	}
}
