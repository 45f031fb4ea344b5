package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoharmony/park-registration/internal/booking"
	"github.com/ecoharmony/park-registration/internal/domain"
	"github.com/ecoharmony/park-registration/internal/session"
)

type stubGateway struct {
	listFn   func(ctx context.Context) ([]domain.Activity, error)
	detailFn func(ctx context.Context, activityID int) (domain.Activity, []domain.ScheduleSlot, error)
	submitFn func(ctx context.Context, reg domain.RegistrationRequest) (domain.Confirmation, error)
}

func (g *stubGateway) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return g.listFn(ctx)
}

func (g *stubGateway) GetActivityDetail(ctx context.Context, activityID int) (domain.Activity, []domain.ScheduleSlot, error) {
	return g.detailFn(ctx, activityID)
}

func (g *stubGateway) SubmitRegistration(ctx context.Context, reg domain.RegistrationRequest) (domain.Confirmation, error) {
	return g.submitFn(ctx, reg)
}

// fixedNow is a Wednesday morning. 2026-09-07 is the following Monday and
// 2026-09-01 the previous day.
var fixedNow = time.Date(2026, time.September, 2, 11, 30, 0, 0, time.Local)

func newTestService(gw Gateway) *WizardService {
	svc := NewWizardService(gw, session.NewStore(time.Minute))
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func detailStub(activity domain.Activity, slots []domain.ScheduleSlot) *stubGateway {
	return &stubGateway{
		detailFn: func(_ context.Context, _ int) (domain.Activity, []domain.ScheduleSlot, error) {
			return activity, slots, nil
		},
	}
}

func startedSession(t *testing.T, svc *WizardService) string {
	t.Helper()
	id, wizard := svc.CreateSession()
	assert.Equal(t, domain.StepSelectActivity, wizard.Step)

	wizard, err := svc.SelectActivity(context.Background(), id, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectDateTime, wizard.Step)
	return id
}

func TestSelectActivityDerivesCapacityFromSlots(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Tirolesa"}, []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"},
		{ID: 8, Time: "14:00", Capacity: 5, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id, _ := svc.CreateSession()

	wizard, err := svc.SelectActivity(context.Background(), id, 1)
	require.NoError(t, err)

	require.NotNil(t, wizard.Activity)
	assert.Equal(t, 8, wizard.Activity.TotalCapacity)
	assert.Equal(t, 2, wizard.Activity.TotalSchedules)
}

func TestSelectActivityRejectsNoCapacity(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 0, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id, _ := svc.CreateSession()

	_, err := svc.SelectActivity(context.Background(), id, 1)
	assert.ErrorIs(t, err, domain.ErrActivityFull)
}

func TestSessionNotFound(t *testing.T) {
	svc := newTestService(&stubGateway{})

	_, err := svc.Session("no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.SelectActivity(context.Background(), "no-such-session", 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAvailabilityDateRules(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id := startedSession(t, svc)

	tests := []struct {
		name string
		date string
		want error
	}{
		{"malformed", "04/09/2026", ErrInvalidDate},
		{"monday closure", "2026-09-07", ErrParkClosed},
		{"past date", "2026-09-01", ErrPastDate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Availability(context.Background(), id, tc.date)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAvailabilityDropsElapsedSlotsToday(t *testing.T) {
	today := fixedNow.Format(domain.DateLayout)
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
		{ID: 6, Time: "09:00", Capacity: 3, Date: today},
		{ID: 7, Time: "10:00", Capacity: 3, Date: today},
		{ID: 8, Time: "14:00", Capacity: 2, Date: today},
		{ID: 9, Time: "14:00", Capacity: 2, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id := startedSession(t, svc)

	options, err := svc.Availability(context.Background(), id, today)
	require.NoError(t, err)

	require.Len(t, options, 1)
	assert.Equal(t, 8, options[0].ID)
}

func TestAvailabilityKeepsElapsedTimesOnFutureDates(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
		{ID: 6, Time: "09:00", Capacity: 3, Date: "2026-09-04"},
		{ID: 8, Time: "14:00", Capacity: 2, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id := startedSession(t, svc)

	options, err := svc.Availability(context.Background(), id, "2026-09-04")
	require.NoError(t, err)
	assert.Len(t, options, 2)
}

func TestAvailabilityFullSlotsVisibleButUnselectable(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 0, Date: "2026-09-04"},
		{ID: 8, Time: "14:00", Capacity: 2, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id := startedSession(t, svc)

	options, err := svc.Availability(context.Background(), id, "2026-09-04")
	require.NoError(t, err)

	require.Len(t, options, 2)
	assert.False(t, options[0].Selectable)
	assert.True(t, options[1].Selectable)
}

func TestAvailabilityNoSchedules(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-11"},
	})
	svc := newTestService(gw)
	id := startedSession(t, svc)

	_, err := svc.Availability(context.Background(), id, "2026-09-04")
	assert.ErrorIs(t, err, ErrNoSchedules)
}

func TestAvailabilityRequiresSelectedActivity(t *testing.T) {
	svc := newTestService(&stubGateway{})
	id, _ := svc.CreateSession()

	_, err := svc.Availability(context.Background(), id, "2026-09-04")
	assert.ErrorIs(t, err, domain.ErrStepMismatch)
}

func TestSelectScheduleRevalidatesAgainstFreshFetch(t *testing.T) {
	slots := []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"},
	}
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, slots)
	svc := newTestService(gw)
	id := startedSession(t, svc)

	// The slot filled up between the availability view and the commit.
	gw.detailFn = func(_ context.Context, _ int) (domain.Activity, []domain.ScheduleSlot, error) {
		return domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
			{ID: 7, Time: "10:00", Capacity: 0, Date: "2026-09-04"},
		}, nil
	}

	wizard, err := svc.SelectSchedule(context.Background(), id, "2026-09-04", "10:00", 7)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, domain.StepSelectDateTime, wizard.Step)
}

func TestSelectScheduleRejectsUnknownSlot(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id := startedSession(t, svc)

	_, err := svc.SelectSchedule(context.Background(), id, "2026-09-04", "10:00", 99)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Same slot ID but the announced time no longer matches.
	_, err = svc.SelectSchedule(context.Background(), id, "2026-09-04", "11:00", 7)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestSelectScheduleCommits(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id := startedSession(t, svc)

	wizard, err := svc.SelectSchedule(context.Background(), id, "2026-09-04", "10:00", 7)
	require.NoError(t, err)

	assert.Equal(t, domain.StepEnterParticipants, wizard.Step)
	assert.Equal(t, 7, wizard.SlotID)
	assert.Equal(t, 3, wizard.RemainingCapacity)
}

func TestSubmitParticipantsIncompleteKeepsDraft(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Tirolesa", RequiresSize: true}, []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id := startedSession(t, svc)
	_, err := svc.SelectSchedule(context.Background(), id, "2026-09-04", "10:00", 7)
	require.NoError(t, err)

	// Size is required for this activity and both entries miss it.
	list := []domain.Participant{
		{Name: "Juan Pérez", DNI: "12345678", Age: 25},
		{Name: "Ana López", DNI: "23456789", Age: 31},
	}
	wizard, fieldErrs, err := svc.SubmitParticipants(id, list)
	assert.ErrorIs(t, err, ErrIncompleteFields)
	assert.NotEmpty(t, fieldErrs)
	assert.Equal(t, domain.StepEnterParticipants, wizard.Step)
	assert.Equal(t, list, wizard.Participants)
}

func TestSubmitParticipantsInvalidFields(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id := startedSession(t, svc)
	_, err := svc.SelectSchedule(context.Background(), id, "2026-09-04", "10:00", 7)
	require.NoError(t, err)

	list := []domain.Participant{
		{Name: "Juan Pérez", DNI: "not-a-dni", Age: 25},
	}
	wizard, fieldErrs, err := svc.SubmitParticipants(id, list)
	assert.ErrorIs(t, err, ErrInvalidFields)
	require.Contains(t, fieldErrs, domain.FieldKey{Index: 0, Field: "dni"})
	assert.Equal(t, domain.StepEnterParticipants, wizard.Step)
}

func TestConfirmFlow(t *testing.T) {
	activity := domain.Activity{ID: 1, Name: "Tirolesa", RequiresSize: true}
	slots := []domain.ScheduleSlot{{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"}}

	submissions := 0
	var submitted domain.RegistrationRequest
	gw := detailStub(activity, slots)
	gw.submitFn = func(_ context.Context, reg domain.RegistrationRequest) (domain.Confirmation, error) {
		submissions++
		submitted = reg
		return domain.Confirmation{Message: "Inscripción exitosa"}, nil
	}

	svc := newTestService(gw)
	id := startedSession(t, svc)

	_, err := svc.SelectSchedule(context.Background(), id, "2026-09-04", "10:00", 7)
	require.NoError(t, err)

	size := "M"
	list := []domain.Participant{
		{Name: "Juan Pérez", DNI: "12345678", Age: 25, ClothingSize: size},
		{Name: "Ana López", DNI: "23456789", Age: 31, ClothingSize: "L"},
	}
	wizard, fieldErrs, err := svc.SubmitParticipants(id, list)
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, domain.StepAcceptTerms, wizard.Step)

	wizard, err = svc.AcceptTerms(id, true)
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirm, wizard.Step)

	confirmation, wizard, err := svc.Confirm(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, 1, submissions)
	assert.Equal(t, "Inscripción exitosa", confirmation.Message)

	assert.Equal(t, 1, submitted.ActivityID)
	assert.Equal(t, 7, submitted.ScheduleID)
	assert.Equal(t, "2026-09-04", submitted.Date)
	assert.True(t, submitted.AcceptsTerms)
	require.Len(t, submitted.Visitors, 2)
	require.NotNil(t, submitted.Visitors[0].Size)
	assert.Equal(t, size, *submitted.Visitors[0].Size)

	// A successful booking resets the session for the next one.
	assert.Equal(t, domain.StepSelectActivity, wizard.Step)
	assert.Nil(t, wizard.Activity)
}

func TestConfirmFailureKeepsState(t *testing.T) {
	activity := domain.Activity{ID: 1, Name: "Safari"}
	slots := []domain.ScheduleSlot{{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"}}

	gw := detailStub(activity, slots)
	gw.submitFn = func(_ context.Context, _ domain.RegistrationRequest) (domain.Confirmation, error) {
		return domain.Confirmation{}, &booking.UpstreamError{StatusCode: 409, Message: "No hay cupos disponibles"}
	}

	svc := newTestService(gw)
	id := startedSession(t, svc)
	_, err := svc.SelectSchedule(context.Background(), id, "2026-09-04", "10:00", 7)
	require.NoError(t, err)
	_, _, err = svc.SubmitParticipants(id, []domain.Participant{{Name: "Juan Pérez", DNI: "12345678", Age: 25}})
	require.NoError(t, err)
	_, err = svc.AcceptTerms(id, true)
	require.NoError(t, err)

	_, wizard, err := svc.Confirm(context.Background(), id)

	var upstream *booking.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 409, upstream.StatusCode)

	// Everything entered survives so the user can retry.
	assert.Equal(t, domain.StepConfirm, wizard.Step)
	require.NotNil(t, wizard.Activity)
	assert.Len(t, wizard.Participants, 1)

	// A retry after the failure is allowed.
	gw.submitFn = func(_ context.Context, _ domain.RegistrationRequest) (domain.Confirmation, error) {
		return domain.Confirmation{Message: "Inscripción exitosa"}, nil
	}
	confirmation, _, err := svc.Confirm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Inscripción exitosa", confirmation.Message)
}

func TestConfirmRefusesBeforeFinalStep(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id := startedSession(t, svc)

	_, _, err := svc.Confirm(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrStepMismatch)
}

func TestConfirmRejectsConcurrentSubmission(t *testing.T) {
	activity := domain.Activity{ID: 1, Name: "Safari"}
	slots := []domain.ScheduleSlot{{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"}}

	inSubmit := make(chan struct{})
	release := make(chan struct{})
	gw := detailStub(activity, slots)
	gw.submitFn = func(_ context.Context, _ domain.RegistrationRequest) (domain.Confirmation, error) {
		close(inSubmit)
		<-release
		return domain.Confirmation{Message: "Inscripción exitosa"}, nil
	}

	svc := newTestService(gw)
	id := startedSession(t, svc)
	_, err := svc.SelectSchedule(context.Background(), id, "2026-09-04", "10:00", 7)
	require.NoError(t, err)
	_, _, err = svc.SubmitParticipants(id, []domain.Participant{{Name: "Juan Pérez", DNI: "12345678", Age: 25}})
	require.NoError(t, err)
	_, err = svc.AcceptTerms(id, true)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, _, err := svc.Confirm(context.Background(), id)
		done <- err
	}()

	<-inSubmit
	_, _, err = svc.Confirm(context.Background(), id)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestBackAndResetThroughService(t *testing.T) {
	gw := detailStub(domain.Activity{ID: 1, Name: "Safari"}, []domain.ScheduleSlot{
		{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"},
	})
	svc := newTestService(gw)
	id := startedSession(t, svc)
	_, err := svc.SelectSchedule(context.Background(), id, "2026-09-04", "10:00", 7)
	require.NoError(t, err)

	wizard, err := svc.Back(id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectDateTime, wizard.Step)
	assert.Equal(t, "2026-09-04", wizard.Date)

	wizard, err = svc.Reset(id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectActivity, wizard.Step)
	assert.Nil(t, wizard.Activity)
}

// TestFullFlowAgainstBookingBackend walks the whole flow against a real
// gateway client and a fake booking backend, counting registration hits.
func TestFullFlowAgainstBookingBackend(t *testing.T) {
	registrations := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/actividad/1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"actividad": {"id": 1, "nombre": "Tirolesa", "requiere_talla": 1},
				"horarios": [{"id": 7, "hora": "10:00", "cupos": 3, "fecha": "2026-09-04"}]
			}`))
		case "/api/inscripcion":
			registrations++
			var reg domain.RegistrationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))
			assert.True(t, reg.AcceptsTerms)
			assert.Len(t, reg.Visitors, 2)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message": "Inscripción exitosa"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()

	svc := newTestService(booking.NewClient(backend.URL, 5*time.Second))
	id := startedSession(t, svc)

	_, err := svc.SelectSchedule(context.Background(), id, "2026-09-04", "10:00", 7)
	require.NoError(t, err)

	// Sizes are required for this activity; the first attempt omits them.
	incomplete := []domain.Participant{
		{Name: "Juan Pérez", DNI: "12345678", Age: 25},
		{Name: "Ana López", DNI: "23456789", Age: 31},
	}
	_, _, err = svc.SubmitParticipants(id, incomplete)
	assert.ErrorIs(t, err, ErrIncompleteFields)

	complete := []domain.Participant{
		{Name: "Juan Pérez", DNI: "12345678", Age: 25, ClothingSize: "M"},
		{Name: "Ana López", DNI: "23456789", Age: 31, ClothingSize: "L"},
	}
	_, _, err = svc.SubmitParticipants(id, complete)
	require.NoError(t, err)

	_, err = svc.AcceptTerms(id, true)
	require.NoError(t, err)

	confirmation, wizard, err := svc.Confirm(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, 1, registrations)
	assert.Equal(t, "Inscripción exitosa", confirmation.Message)
	assert.Equal(t, domain.StepSelectActivity, wizard.Step)
}

func TestUpstreamFailurePropagates(t *testing.T) {
	gw := &stubGateway{
		detailFn: func(_ context.Context, _ int) (domain.Activity, []domain.ScheduleSlot, error) {
			return domain.Activity{}, nil, errors.New("connection refused")
		},
	}
	svc := newTestService(gw)
	id, _ := svc.CreateSession()

	_, err := svc.SelectActivity(context.Background(), id, 1)
	assert.Error(t, err)
}
