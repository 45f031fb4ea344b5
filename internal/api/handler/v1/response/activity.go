package response

import "github.com/ecoharmony/park-registration/internal/domain"

// ActivityDetail is one activity plus its full schedule slot list.
type ActivityDetail struct {
	Activity domain.Activity       `json:"activity"`
	Slots    []domain.ScheduleSlot `json:"slots"`
}
