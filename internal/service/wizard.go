package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/ecoharmony/park-registration/internal/domain"
	"github.com/ecoharmony/park-registration/internal/session"
)

var (
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidDate        = errors.New("formato de fecha inválido, use YYYY-MM-DD")
	ErrPastDate           = errors.New("no se puede seleccionar una fecha pasada")
	ErrParkClosed         = errors.New("el parque está cerrado los lunes")
	ErrNoSchedules        = errors.New("no hay horarios disponibles para la fecha seleccionada")
	ErrSlotUnavailable    = errors.New("el horario seleccionado ya no está disponible")
	ErrIncompleteFields   = errors.New("por favor completa todos los datos de los participantes")
	ErrInvalidFields      = errors.New("por favor corrige los errores en los datos de los participantes")
	ErrSubmissionInFlight = errors.New("ya hay una inscripción en curso para esta sesión")
)

// Gateway is the slice of the booking API the wizard needs.
type Gateway interface {
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	GetActivityDetail(ctx context.Context, activityID int) (domain.Activity, []domain.ScheduleSlot, error)
	SubmitRegistration(ctx context.Context, reg domain.RegistrationRequest) (domain.Confirmation, error)
}

// WizardService orchestrates the five-step registration flow. All state lives
// in the session store; the booking backend stays the source of truth for
// availability and capacity.
type WizardService struct {
	gw       Gateway
	sessions *session.Store
	now      func() time.Time
}

func NewWizardService(gw Gateway, sessions *session.Store) *WizardService {
	return &WizardService{
		gw:       gw,
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *WizardService) CreateSession() (string, domain.Wizard) {
	id, state := s.sessions.Create()
	return id, *state.Wizard
}

func (s *WizardService) Session(sessionID string) (domain.Wizard, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Wizard{}, ErrSessionNotFound
	}
	state.Mu.Lock()
	defer state.Mu.Unlock()
	return *state.Wizard, nil
}

// SelectActivity commits step 1. The activity's metadata and capacity are
// resolved through the gateway rather than trusted from the client.
func (s *WizardService) SelectActivity(ctx context.Context, sessionID string, activityID int) (domain.Wizard, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Wizard{}, ErrSessionNotFound
	}

	activity, slots, err := s.gw.GetActivityDetail(ctx, activityID)
	if err != nil {
		return domain.Wizard{}, fmt.Errorf("s.gw.GetActivityDetail -> %w", err)
	}
	// The detail row carries no aggregates; derive them from the slot list.
	activity.TotalCapacity = lo.SumBy(slots, func(slot domain.ScheduleSlot) int { return slot.Capacity })
	activity.TotalSchedules = len(slots)

	state.Mu.Lock()
	defer state.Mu.Unlock()
	if err := state.Wizard.SelectActivity(activity); err != nil {
		return *state.Wizard, err
	}
	return *state.Wizard, nil
}

// Availability resolves the selectable slots for a calendar date. The rules:
// past dates and Mondays are rejected locally; on the current day, slots whose
// time already elapsed are dropped (local clock, re-evaluated per call); full
// slots stay visible but unselectable.
func (s *WizardService) Availability(ctx context.Context, sessionID, date string) ([]domain.SlotOption, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	state.Mu.Lock()
	wizard := *state.Wizard
	state.Mu.Unlock()
	if wizard.Activity == nil {
		return nil, domain.ErrStepMismatch
	}

	day, err := s.checkDate(date)
	if err != nil {
		return nil, err
	}

	_, slots, err := s.gw.GetActivityDetail(ctx, wizard.Activity.ID)
	if err != nil {
		return nil, fmt.Errorf("s.gw.GetActivityDetail -> %w", err)
	}

	options := s.resolveSlots(slots, date, day)
	if len(options) == 0 {
		return nil, ErrNoSchedules
	}
	return options, nil
}

func (s *WizardService) resolveSlots(slots []domain.ScheduleSlot, date string, day time.Time) []domain.SlotOption {
	forDate := lo.Filter(slots, func(slot domain.ScheduleSlot, _ int) bool {
		return slot.Date == date
	})

	now := s.now()
	if sameDay(day, now) {
		forDate = lo.Filter(forDate, func(slot domain.ScheduleSlot, _ int) bool {
			return !timeElapsed(slot.Time, now)
		})
	}

	return lo.Map(forDate, func(slot domain.ScheduleSlot, _ int) domain.SlotOption {
		return domain.SlotOption{ScheduleSlot: slot, Selectable: slot.Capacity > 0}
	})
}

// UpdateScheduleDraft persists a partial step-2 choice without advancing.
func (s *WizardService) UpdateScheduleDraft(sessionID, date, timeOfDay string, capacity, slotID int) (domain.Wizard, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Wizard{}, ErrSessionNotFound
	}
	state.Mu.Lock()
	defer state.Mu.Unlock()
	if err := state.Wizard.UpdateScheduleDraft(date, timeOfDay, capacity, slotID); err != nil {
		return *state.Wizard, err
	}
	return *state.Wizard, nil
}

// SelectSchedule commits step 2. The chosen slot is re-validated against a
// fresh detail fetch so a stale availability snapshot cannot be committed.
func (s *WizardService) SelectSchedule(ctx context.Context, sessionID, date, timeOfDay string, slotID int) (domain.Wizard, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Wizard{}, ErrSessionNotFound
	}

	state.Mu.Lock()
	wizard := *state.Wizard
	state.Mu.Unlock()
	if wizard.Activity == nil {
		return wizard, domain.ErrStepMismatch
	}

	day, err := s.checkDate(date)
	if err != nil {
		return wizard, err
	}

	_, slots, err := s.gw.GetActivityDetail(ctx, wizard.Activity.ID)
	if err != nil {
		return wizard, fmt.Errorf("s.gw.GetActivityDetail -> %w", err)
	}

	slot, found := lo.Find(slots, func(slot domain.ScheduleSlot) bool {
		return slot.ID == slotID && slot.Date == date
	})
	if !found || slot.Capacity < 1 || slot.Time != timeOfDay {
		return wizard, ErrSlotUnavailable
	}
	if sameDay(day, s.now()) && timeElapsed(slot.Time, s.now()) {
		return wizard, ErrSlotUnavailable
	}

	state.Mu.Lock()
	defer state.Mu.Unlock()
	if err := state.Wizard.SelectSchedule(date, slot.Time, slot.Capacity, slot.ID); err != nil {
		return *state.Wizard, err
	}
	return *state.Wizard, nil
}

// UpdateParticipantsDraft persists in-progress participant entry.
func (s *WizardService) UpdateParticipantsDraft(sessionID string, list []domain.Participant) (domain.Wizard, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Wizard{}, ErrSessionNotFound
	}
	state.Mu.Lock()
	defer state.Mu.Unlock()
	if err := state.Wizard.UpdateParticipantsDraft(list); err != nil {
		return *state.Wizard, err
	}
	return *state.Wizard, nil
}

// SubmitParticipants commits step 3. Returns the field error map alongside
// ErrIncompleteFields or ErrInvalidFields when the list is not acceptable.
func (s *WizardService) SubmitParticipants(sessionID string, list []domain.Participant) (domain.Wizard, domain.FieldErrors, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Wizard{}, nil, ErrSessionNotFound
	}
	state.Mu.Lock()
	defer state.Mu.Unlock()

	wizard := state.Wizard
	if wizard.Step != domain.StepEnterParticipants {
		return *wizard, nil, domain.ErrStepMismatch
	}

	activity := *wizard.Activity
	fieldErrs := domain.ValidateParticipants(list, activity)
	if domain.HasIncomplete(list, activity) {
		// Keep the draft so nothing is lost while the user fills the blanks.
		wizard.Participants = list
		return *wizard, fieldErrs, ErrIncompleteFields
	}
	if len(fieldErrs) > 0 {
		wizard.Participants = list
		return *wizard, fieldErrs, ErrInvalidFields
	}

	if err := wizard.SubmitParticipants(list); err != nil {
		return *wizard, nil, err
	}
	return *wizard, nil, nil
}

// UpdateTermsDraft persists the checkbox without advancing.
func (s *WizardService) UpdateTermsDraft(sessionID string, accepted bool) (domain.Wizard, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Wizard{}, ErrSessionNotFound
	}
	state.Mu.Lock()
	defer state.Mu.Unlock()
	if err := state.Wizard.UpdateTermsDraft(accepted); err != nil {
		return *state.Wizard, err
	}
	return *state.Wizard, nil
}

// AcceptTerms commits step 4.
func (s *WizardService) AcceptTerms(sessionID string, accepted bool) (domain.Wizard, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Wizard{}, ErrSessionNotFound
	}
	state.Mu.Lock()
	defer state.Mu.Unlock()
	if err := state.Wizard.AcceptTerms(accepted); err != nil {
		return *state.Wizard, err
	}
	return *state.Wizard, nil
}

// Confirm submits the registration exactly once per confirmation. On success
// the wizard resets for a new booking; on failure all entered data survives so
// the user can retry.
func (s *WizardService) Confirm(ctx context.Context, sessionID string) (domain.Confirmation, domain.Wizard, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Confirmation{}, domain.Wizard{}, ErrSessionNotFound
	}

	state.Mu.Lock()
	if state.Submitting {
		wizard := *state.Wizard
		state.Mu.Unlock()
		return domain.Confirmation{}, wizard, ErrSubmissionInFlight
	}
	reg, err := state.Wizard.RegistrationRequest()
	if err != nil {
		wizard := *state.Wizard
		state.Mu.Unlock()
		return domain.Confirmation{}, wizard, err
	}
	state.Submitting = true
	state.Mu.Unlock()

	confirmation, err := s.gw.SubmitRegistration(ctx, reg)

	state.Mu.Lock()
	defer state.Mu.Unlock()
	state.Submitting = false
	if err != nil {
		return domain.Confirmation{}, *state.Wizard, fmt.Errorf("s.gw.SubmitRegistration -> %w", err)
	}

	state.Wizard.Reset()
	return confirmation, *state.Wizard, nil
}

// Back steps down one step without clearing anything.
func (s *WizardService) Back(sessionID string) (domain.Wizard, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Wizard{}, ErrSessionNotFound
	}
	state.Mu.Lock()
	defer state.Mu.Unlock()
	state.Wizard.Back()
	return *state.Wizard, nil
}

// Reset clears the wizard back to step 1.
func (s *WizardService) Reset(sessionID string) (domain.Wizard, error) {
	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.Wizard{}, ErrSessionNotFound
	}
	state.Mu.Lock()
	defer state.Mu.Unlock()
	state.Wizard.Reset()
	return *state.Wizard, nil
}

// checkDate parses the calendar day and applies the locally computed rules:
// no past dates, no Mondays (weekly closure).
func (s *WizardService) checkDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation(domain.DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if day.Weekday() == time.Monday {
		return time.Time{}, ErrParkClosed
	}
	today := startOfDay(s.now())
	if day.Before(today) {
		return time.Time{}, ErrPastDate
	}
	return day, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(day, now time.Time) bool {
	return startOfDay(day).Equal(startOfDay(now))
}

// timeElapsed reports whether an HH:MM time of day is already past.
// Unparseable times count as elapsed rather than bookable.
func timeElapsed(timeOfDay string, now time.Time) bool {
	parsed, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return true
	}
	slotAt := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	return !slotAt.After(now)
}
