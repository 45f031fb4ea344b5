package domain

import "errors"

// Step identifies one of the five wizard steps. Transitions are strictly
// linear; reaching a step requires every earlier step to have committed.
type Step int

const (
	StepSelectActivity Step = iota + 1
	StepSelectDateTime
	StepEnterParticipants
	StepAcceptTerms
	StepConfirm
)

// TotalSteps is the number of steps in the wizard flow.
const TotalSteps = 5

// MaxParticipants caps a single booking regardless of remaining capacity.
const MaxParticipants = 10

func (s Step) String() string {
	switch s {
	case StepSelectActivity:
		return "select_activity"
	case StepSelectDateTime:
		return "select_datetime"
	case StepEnterParticipants:
		return "enter_participants"
	case StepAcceptTerms:
		return "accept_terms"
	case StepConfirm:
		return "confirm"
	}
	return "unknown"
}

var (
	ErrStepMismatch       = errors.New("operation not allowed at the current step")
	ErrActivityFull       = errors.New("la actividad no tiene cupos disponibles")
	ErrScheduleIncomplete = errors.New("debe seleccionarse una fecha y horario antes de continuar")
	ErrPartySize          = errors.New("la cantidad de participantes supera los cupos disponibles")
	ErrTermsNotAccepted   = errors.New("debes aceptar los términos y condiciones para continuar")
)

// Wizard holds the linear flow's current step and all accumulated selections.
// Back navigation never clears data entered for the step being returned to or
// any step beyond it.
type Wizard struct {
	Step              Step          `json:"step"`
	Activity          *Activity     `json:"activity,omitempty"`
	Date              string        `json:"date,omitempty"` // YYYY-MM-DD
	Time              string        `json:"time,omitempty"` // HH:MM
	SlotID            int           `json:"slot_id,omitempty"`
	RemainingCapacity int           `json:"remaining_capacity,omitempty"`
	Participants      []Participant `json:"participants,omitempty"`
	TermsAccepted     bool          `json:"terms_accepted"`
}

func NewWizard() *Wizard {
	return &Wizard{Step: StepSelectActivity}
}

// SelectActivity commits step 1. Activities without capacity are not
// selectable.
func (w *Wizard) SelectActivity(a Activity) error {
	if w.Step != StepSelectActivity {
		return ErrStepMismatch
	}
	if a.TotalCapacity <= 0 {
		return ErrActivityFull
	}
	w.Activity = &a
	w.Step = StepSelectDateTime
	return nil
}

// UpdateScheduleDraft persists a partial date/time choice without advancing,
// so returning to step 2 shows the user's last input rather than a blank form.
func (w *Wizard) UpdateScheduleDraft(date, timeOfDay string, capacity, slotID int) error {
	if w.Step != StepSelectDateTime {
		return ErrStepMismatch
	}
	w.Date = date
	w.Time = timeOfDay
	w.RemainingCapacity = capacity
	w.SlotID = slotID
	return nil
}

// SelectSchedule commits step 2 and advances to participant entry.
func (w *Wizard) SelectSchedule(date, timeOfDay string, capacity, slotID int) error {
	if w.Step != StepSelectDateTime {
		return ErrStepMismatch
	}
	if date == "" || timeOfDay == "" {
		return ErrScheduleIncomplete
	}
	w.Date = date
	w.Time = timeOfDay
	w.RemainingCapacity = capacity
	w.SlotID = slotID
	w.Step = StepEnterParticipants
	return nil
}

// PartyLimit is the largest participant list the current slot admits.
func (w *Wizard) PartyLimit() int {
	if w.RemainingCapacity < MaxParticipants {
		return w.RemainingCapacity
	}
	return MaxParticipants
}

// UpdateParticipantsDraft persists in-progress participant entry without
// advancing.
func (w *Wizard) UpdateParticipantsDraft(list []Participant) error {
	if w.Step != StepEnterParticipants {
		return ErrStepMismatch
	}
	w.Participants = list
	return nil
}

// SubmitParticipants commits step 3. Field-level validation happens before
// this is called; here only the party size bound is enforced.
func (w *Wizard) SubmitParticipants(list []Participant) error {
	if w.Step != StepEnterParticipants {
		return ErrStepMismatch
	}
	if len(list) < 1 || len(list) > w.PartyLimit() {
		return ErrPartySize
	}
	w.Participants = list
	w.Step = StepAcceptTerms
	return nil
}

// UpdateTermsDraft persists the checkbox state without advancing.
func (w *Wizard) UpdateTermsDraft(accepted bool) error {
	if w.Step != StepAcceptTerms {
		return ErrStepMismatch
	}
	w.TermsAccepted = accepted
	return nil
}

// AcceptTerms commits step 4. Declining keeps the wizard on the terms step
// and surfaces a blocking notice.
func (w *Wizard) AcceptTerms(accepted bool) error {
	if w.Step != StepAcceptTerms {
		return ErrStepMismatch
	}
	w.TermsAccepted = accepted
	if !accepted {
		return ErrTermsNotAccepted
	}
	w.Step = StepConfirm
	return nil
}

// Back steps the wizard down by one, clamped at the first step. No data is
// cleared.
func (w *Wizard) Back() {
	if w.Step > StepSelectActivity {
		w.Step--
	}
}

// Reset clears all state and returns to the first step.
func (w *Wizard) Reset() {
	*w = Wizard{Step: StepSelectActivity}
}

// RegistrationRequest assembles the confirmation payload. It refuses to build
// one unless the wizard actually traversed every step.
func (w *Wizard) RegistrationRequest() (RegistrationRequest, error) {
	if w.Step != StepConfirm {
		return RegistrationRequest{}, ErrStepMismatch
	}
	if w.Activity == nil || w.Date == "" || w.SlotID == 0 {
		return RegistrationRequest{}, ErrScheduleIncomplete
	}
	if !w.TermsAccepted {
		return RegistrationRequest{}, ErrTermsNotAccepted
	}
	visitors := make([]Visitor, len(w.Participants))
	for i, p := range w.Participants {
		var size *string
		if p.ClothingSize != "" {
			s := p.ClothingSize
			size = &s
		}
		visitors[i] = Visitor{Name: p.Name, DNI: p.DNI, Age: p.Age, Size: size}
	}
	return RegistrationRequest{
		ActivityID:   w.Activity.ID,
		ScheduleID:   w.SlotID,
		Date:         w.Date,
		AcceptsTerms: true,
		Visitors:     visitors,
	}, nil
}
