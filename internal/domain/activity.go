package domain

// Activity is a bookable park offering. Immutable once fetched from the
// booking backend.
type Activity struct {
	ID             int    `json:"id"`
	Name           string `json:"nombre"`
	RequiresSize   bool   `json:"requiere_talla"`
	TotalCapacity  int    `json:"total_cupos"`
	TotalSchedules int    `json:"total_horarios"`
	Description    string `json:"descripcion"`
	Terms          string `json:"terminos_y_condiciones"`
}

// ScheduleSlot is one date+time instance of an activity with finite remaining
// capacity. Only the booking backend mutates it; clients hold snapshots.
type ScheduleSlot struct {
	ID       int    `json:"id"`
	Time     string `json:"hora"` // HH:MM
	Capacity int    `json:"cupos"`
	Date     string `json:"fecha"` // YYYY-MM-DD
}

// SlotOption is a schedule slot resolved for a specific date. Full slots stay
// visible but unselectable so users can tell a timeslot exists.
type SlotOption struct {
	ScheduleSlot
	Selectable bool `json:"selectable"`
}

// DateLayout is the calendar-day wire format used by the booking API.
const DateLayout = "2006-01-02"
