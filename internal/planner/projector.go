package planner

import (
	"fmt"

	"ibamconsole/internal/domain"
)

// ProjectDate maps a grid column onto a concrete calendar date: the result is
// rangeStart plus weekdayIndex days. Column 0 is always the program's start
// date itself, column 1 the day after, and so on. The grid is anchored to the
// start date, not to the calendar weekday of that date: a program starting on
// a Wednesday has its "Lundi" column fall on that Wednesday. This matches the
// behavior the console has always had; changing it to true weekday alignment
// would silently move every stored session, so it stays as is.
func ProjectDate(rangeStart domain.Date, weekdayIndex int) (domain.Date, error) {
	if rangeStart.IsZero() {
		return domain.Date{}, fmt.Errorf("%w: program start date is not set", domain.ErrPrecondition)
	}
	if weekdayIndex < 0 || weekdayIndex >= len(domain.WeekDays()) {
		return domain.Date{}, fmt.Errorf("%w: weekday index %d out of range", domain.ErrValidation, weekdayIndex)
	}
	return rangeStart.AddDays(weekdayIndex), nil
}
