package pregnancy

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// gestationDays is the conventional pregnancy duration from LMP
	gestationDays = 280

	// conceptionOffsetDays is the conventional LMP-to-conception offset
	conceptionOffsetDays = 14

	// maxElapsedDays is the validation ceiling (42 weeks) for how far in the
	// past a last-period date may be
	maxElapsedDays = 294
)

// DueDateResult holds everything derived from a last-menstrual-period date.
// CurrentWeek/CurrentDay are relative to the evaluation instant, so the same
// LMP produces different values on different days.
type DueDateResult struct {
	DueDate        time.Time `json:"due_date"`
	ConceptionDate time.Time `json:"conception_date"`
	CurrentWeek    int       `json:"current_week"`
	CurrentDay     int       `json:"current_day"`
	Trimester      int       `json:"trimester"`
	DaysUntilDue   int       `json:"days_until_due"`
	BabySize       SizeEntry `json:"baby_size"`
}

// Compute derives the full due-date result from a last-period date at the
// given evaluation instant. Callers must validate the input with
// IsValidPregnancyDate first; out-of-range dates are not checked here.
func Compute(lastPeriod, now time.Time) DueDateResult {
	dueDate := lastPeriod.AddDate(0, 0, gestationDays)
	conception := lastPeriod.AddDate(0, 0, conceptionOffsetDays)

	elapsedDays := int(math.Floor(now.Sub(lastPeriod).Hours() / 24))
	week := elapsedDays / 7
	day := elapsedDays % 7

	trimester := 3
	switch {
	case week <= 12:
		trimester = 1
	case week <= 27:
		trimester = 2
	}

	// Signed on purpose: negative once the due date has passed. Display
	// clamping is the caller's business.
	daysUntilDue := int(math.Ceil(dueDate.Sub(now).Hours() / 24))

	return DueDateResult{
		DueDate:        dueDate,
		ConceptionDate: conception,
		CurrentWeek:    week,
		CurrentDay:     day,
		Trimester:      trimester,
		DaysUntilDue:   daysUntilDue,
		BabySize:       LookupBabySize(week),
	}
}

// IsValidPregnancyDate reports whether a last-period date is usable: not the
// zero value, not in the future, and at most 294 days (42 weeks) before now.
func IsValidPregnancyDate(lastPeriod, now time.Time) bool {
	if lastPeriod.IsZero() {
		return false
	}
	if lastPeriod.After(now) {
		return false
	}
	elapsedDays := int(math.Floor(now.Sub(lastPeriod).Hours() / 24))
	return elapsedDays <= maxElapsedDays
}

// FormatWeek renders a gestational age like "5 weeks, 1 day". Zero clauses
// are omitted, but a zero duration still renders as "0 days".
func FormatWeek(weeks, days int) string {
	parts := make([]string, 0, 2)
	if weeks > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", weeks, plural("week", weeks)))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", days, plural("day", days)))
	}
	if len(parts) == 0 {
		return "0 days"
	}
	return strings.Join(parts, ", ")
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
