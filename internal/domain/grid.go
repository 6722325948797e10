package domain

// TimeSlot is one fixed daily period of the weekly grid. The catalog is
// static: slots are not user-editable and never overlap. Times are
// institution-local wall-clock strings ("08h00"), never timezone-aware.
type TimeSlot struct {
	ID    int    `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// timeSlots is the fixed catalog, in grid row order.
var timeSlots = []TimeSlot{
	{ID: 1, Start: "08h00", End: "12h00"},
	{ID: 2, Start: "14h00", End: "18h00"},
}

// Slots returns the time-slot catalog in row order. The returned slice is a
// copy; callers may not mutate the catalog.
func Slots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// SlotByID returns the catalog slot with the given identifier.
func SlotByID(id int) (TimeSlot, bool) {
	for _, s := range timeSlots {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// WeekDay is one of the six fixed weekday labels of the grid.
type WeekDay string

// The week model, in grid column order. Sunday is not schedulable.
const (
	Lundi    WeekDay = "Lundi"
	Mardi    WeekDay = "Mardi"
	Mercredi WeekDay = "Mercredi"
	Jeudi    WeekDay = "Jeudi"
	Vendredi WeekDay = "Vendredi"
	Samedi   WeekDay = "Samedi"
)

var weekDays = []WeekDay{Lundi, Mardi, Mercredi, Jeudi, Vendredi, Samedi}

// WeekDays returns the ordered week model. The returned slice is a copy.
func WeekDays() []WeekDay {
	out := make([]WeekDay, len(weekDays))
	copy(out, weekDays)
	return out
}

// WeekdayIndex returns the zero-based column index of day, or false when the
// label is not part of the week model.
func WeekdayIndex(day WeekDay) (int, bool) {
	for i, d := range weekDays {
		if d == day {
			return i, true
		}
	}
	return 0, false
}
