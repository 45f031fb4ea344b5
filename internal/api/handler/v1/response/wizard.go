package response

import (
	"strconv"

	"github.com/ecoharmony/park-registration/internal/domain"
)

// WizardState is a snapshot of one wizard session.
type WizardState struct {
	SessionID         string               `json:"session_id"`
	Step              int                  `json:"step"`
	StepName          string               `json:"step_name"`
	TotalSteps        int                  `json:"total_steps"`
	Activity          *domain.Activity     `json:"activity,omitempty"`
	Date              string               `json:"date,omitempty"`
	Time              string               `json:"time,omitempty"`
	SlotID            int                  `json:"slot_id,omitempty"`
	RemainingCapacity int                  `json:"remaining_capacity,omitempty"`
	Participants      []domain.Participant `json:"participants,omitempty"`
	TermsAccepted     bool                 `json:"terms_accepted"`
}

func NewWizardState(sessionID string, w domain.Wizard) WizardState {
	return WizardState{
		SessionID:         sessionID,
		Step:              int(w.Step),
		StepName:          w.Step.String(),
		TotalSteps:        domain.TotalSteps,
		Activity:          w.Activity,
		Date:              w.Date,
		Time:              w.Time,
		SlotID:            w.SlotID,
		RemainingCapacity: w.RemainingCapacity,
		Participants:      w.Participants,
		TermsAccepted:     w.TermsAccepted,
	}
}

// Availability lists the resolved slots for a date. Message carries the
// advisory when no schedules are available; the step stays usable.
type Availability struct {
	Date    string              `json:"date"`
	Slots   []domain.SlotOption `json:"slots"`
	Message string              `json:"message,omitempty"`
}

// ValidationErr is rendered when a participant list is rejected. Fields maps
// participant index to field name to message.
type ValidationErr struct {
	ErrorMsg string                       `json:"error"`
	Fields   map[string]map[string]string `json:"fields"`
}

func NewValidationErr(msg string, fieldErrs domain.FieldErrors) ValidationErr {
	fields := make(map[string]map[string]string)
	for key, message := range fieldErrs {
		index := strconv.Itoa(key.Index)
		if fields[index] == nil {
			fields[index] = make(map[string]string)
		}
		fields[index][key.Field] = message
	}
	return ValidationErr{ErrorMsg: msg, Fields: fields}
}

// Registration is the success body after a confirmed booking.
type Registration struct {
	Message string      `json:"message"`
	Wizard  WizardState `json:"wizard"`
}
