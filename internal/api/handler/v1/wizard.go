package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoharmony/park-registration/internal/api/handler/v1/request"
	"github.com/ecoharmony/park-registration/internal/api/handler/v1/response"
	"github.com/ecoharmony/park-registration/internal/booking"
	"github.com/ecoharmony/park-registration/internal/domain"
	"github.com/ecoharmony/park-registration/internal/service"
)

type WizardService interface {
	CreateSession() (string, domain.Wizard)
	Session(sessionID string) (domain.Wizard, error)
	SelectActivity(ctx context.Context, sessionID string, activityID int) (domain.Wizard, error)
	Availability(ctx context.Context, sessionID, date string) ([]domain.SlotOption, error)
	UpdateScheduleDraft(sessionID, date, timeOfDay string, capacity, slotID int) (domain.Wizard, error)
	SelectSchedule(ctx context.Context, sessionID, date, timeOfDay string, slotID int) (domain.Wizard, error)
	UpdateParticipantsDraft(sessionID string, list []domain.Participant) (domain.Wizard, error)
	SubmitParticipants(sessionID string, list []domain.Participant) (domain.Wizard, domain.FieldErrors, error)
	UpdateTermsDraft(sessionID string, accepted bool) (domain.Wizard, error)
	AcceptTerms(sessionID string, accepted bool) (domain.Wizard, error)
	Confirm(ctx context.Context, sessionID string) (domain.Confirmation, domain.Wizard, error)
	Back(sessionID string) (domain.Wizard, error)
	Reset(sessionID string) (domain.Wizard, error)
}

type WizardHandler struct {
	svc WizardService
}

func NewWizardHandler(svc WizardService) *WizardHandler {
	return &WizardHandler{svc: svc}
}

// HandleCreateSession godoc
// @Summary      Start a new registration wizard session
// @Tags         wizard
// @Produce      json
// @Success      201  {object}  response.WizardState
// @Router       /wizard [post]
func (h *WizardHandler) HandleCreateSession(ctx *gin.Context) {
	id, wizard := h.svc.CreateSession()

	ctx.JSON(http.StatusCreated, response.NewWizardState(id, wizard))
}

// HandleGetSession godoc
// @Summary      Get the current wizard state
// @Tags         wizard
// @Produce      json
// @Param        sessionID  path      string  true  "session ID"
// @Success      200        {object}  response.WizardState
// @Failure      404        {object}  response.Err
// @Router       /wizard/{sessionID} [get]
func (h *WizardHandler) HandleGetSession(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	wizard, err := h.svc.Session(sessionID)
	if err != nil {
		h.renderWizardErr(ctx, sessionID, err, "HandleGetSession")
		return
	}

	ctx.JSON(http.StatusOK, response.NewWizardState(sessionID, wizard))
}

// HandleSelectActivity godoc
// @Summary      Select an activity (step 1)
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                         true  "session ID"
// @Param        input      body      request.SelectActivityRequest  true  "request body"
// @Success      200        {object}  response.WizardState
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      502        {object}  response.Err
// @Router       /wizard/{sessionID}/activity [post]
func (h *WizardHandler) HandleSelectActivity(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	var req request.SelectActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	wizard, err := h.svc.SelectActivity(ctx.Request.Context(), sessionID, req.ActivityID)
	if err != nil {
		if errors.Is(err, booking.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", req.ActivityID))
			return
		}
		if errors.Is(err, domain.ErrActivityFull) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}
		h.renderWizardErr(ctx, sessionID, err, "HandleSelectActivity")
		return
	}

	ctx.JSON(http.StatusOK, response.NewWizardState(sessionID, wizard))
}

// HandleAvailability godoc
// @Summary      Resolve available time slots for a date
// @Description  Past dates and Mondays are rejected. Full slots stay listed but unselectable. An empty day returns an advisory message, not an error.
// @Tags         wizard
// @Produce      json
// @Param        sessionID  path      string  true  "session ID"
// @Param        date       query     string  true  "calendar day (YYYY-MM-DD)"
// @Success      200        {object}  response.Availability
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      502        {object}  response.Err
// @Router       /wizard/{sessionID}/availability [get]
func (h *WizardHandler) HandleAvailability(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")
	date := ctx.Query("date")

	slots, err := h.svc.Availability(ctx.Request.Context(), sessionID, date)
	if err != nil {
		var upstream *booking.UpstreamError
		switch {
		case errors.As(err, &upstream):
			response.RenderErr(ctx, response.ErrBadGateway("Error al cargar los horarios disponibles"))
			return
		case errors.Is(err, service.ErrNoSchedules):
			ctx.JSON(http.StatusOK, response.Availability{
				Date:    date,
				Slots:   []domain.SlotOption{},
				Message: "No hay horarios disponibles para la fecha seleccionada",
			})
			return
		case errors.Is(err, service.ErrInvalidDate),
			errors.Is(err, service.ErrPastDate),
			errors.Is(err, service.ErrParkClosed):
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		h.renderWizardErr(ctx, sessionID, err, "HandleAvailability")
		return
	}

	ctx.JSON(http.StatusOK, response.Availability{Date: date, Slots: slots})
}

// HandleScheduleDraft godoc
// @Summary      Persist a partial date/time choice without advancing
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                        true  "session ID"
// @Param        input      body      request.ScheduleDraftRequest  true  "request body"
// @Success      200        {object}  response.WizardState
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Router       /wizard/{sessionID}/schedule/draft [put]
func (h *WizardHandler) HandleScheduleDraft(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	var req request.ScheduleDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	wizard, err := h.svc.UpdateScheduleDraft(sessionID, req.Date, req.Time, req.RemainingCapacity, req.SlotID)
	if err != nil {
		h.renderWizardErr(ctx, sessionID, err, "HandleScheduleDraft")
		return
	}

	ctx.JSON(http.StatusOK, response.NewWizardState(sessionID, wizard))
}

// HandleSelectSchedule godoc
// @Summary      Commit the date/time choice (step 2)
// @Description  The slot is re-validated against a fresh schedule fetch before committing.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                         true  "session ID"
// @Param        input      body      request.SelectScheduleRequest  true  "request body"
// @Success      200        {object}  response.WizardState
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      502        {object}  response.Err
// @Router       /wizard/{sessionID}/schedule [post]
func (h *WizardHandler) HandleSelectSchedule(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	var req request.SelectScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	wizard, err := h.svc.SelectSchedule(ctx.Request.Context(), sessionID, req.Date, req.Time, req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate),
			errors.Is(err, service.ErrPastDate),
			errors.Is(err, service.ErrParkClosed):
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		case errors.Is(err, service.ErrSlotUnavailable):
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}
		h.renderWizardErr(ctx, sessionID, err, "HandleSelectSchedule")
		return
	}

	ctx.JSON(http.StatusOK, response.NewWizardState(sessionID, wizard))
}

// HandleParticipantsDraft godoc
// @Summary      Persist in-progress participant entry without advancing
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                            true  "session ID"
// @Param        input      body      request.ParticipantsDraftRequest  true  "request body"
// @Success      200        {object}  response.WizardState
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Router       /wizard/{sessionID}/participants/draft [put]
func (h *WizardHandler) HandleParticipantsDraft(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	var req request.ParticipantsDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	wizard, err := h.svc.UpdateParticipantsDraft(sessionID, req.ToDomain())
	if err != nil {
		h.renderWizardErr(ctx, sessionID, err, "HandleParticipantsDraft")
		return
	}

	ctx.JSON(http.StatusOK, response.NewWizardState(sessionID, wizard))
}

// HandleSubmitParticipants godoc
// @Summary      Submit the participant list (step 3)
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                       true  "session ID"
// @Param        input      body      request.ParticipantsRequest  true  "request body"
// @Success      200        {object}  response.WizardState
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      422        {object}  response.ValidationErr
// @Router       /wizard/{sessionID}/participants [post]
func (h *WizardHandler) HandleSubmitParticipants(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	var req request.ParticipantsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	wizard, fieldErrs, err := h.svc.SubmitParticipants(sessionID, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncompleteFields), errors.Is(err, service.ErrInvalidFields):
			ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, response.NewValidationErr(err.Error(), fieldErrs))
			return
		case errors.Is(err, domain.ErrPartySize):
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		h.renderWizardErr(ctx, sessionID, err, "HandleSubmitParticipants")
		return
	}

	ctx.JSON(http.StatusOK, response.NewWizardState(sessionID, wizard))
}

// HandleTermsDraft godoc
// @Summary      Persist the terms checkbox without advancing
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                true  "session ID"
// @Param        input      body      request.TermsRequest  true  "request body"
// @Success      200        {object}  response.WizardState
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Router       /wizard/{sessionID}/terms/draft [put]
func (h *WizardHandler) HandleTermsDraft(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	var req request.TermsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	wizard, err := h.svc.UpdateTermsDraft(sessionID, req.Accepted)
	if err != nil {
		h.renderWizardErr(ctx, sessionID, err, "HandleTermsDraft")
		return
	}

	ctx.JSON(http.StatusOK, response.NewWizardState(sessionID, wizard))
}

// HandleAcceptTerms godoc
// @Summary      Accept the terms and conditions (step 4)
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                true  "session ID"
// @Param        input      body      request.TermsRequest  true  "request body"
// @Success      200        {object}  response.WizardState
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      422        {object}  response.Err
// @Router       /wizard/{sessionID}/terms [post]
func (h *WizardHandler) HandleAcceptTerms(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	var req request.TermsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	wizard, err := h.svc.AcceptTerms(sessionID, req.Accepted)
	if err != nil {
		if errors.Is(err, domain.ErrTermsNotAccepted) {
			ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, &response.Err{
				StatusCode: http.StatusUnprocessableEntity,
				ErrorMsg:   err.Error(),
			})
			return
		}
		h.renderWizardErr(ctx, sessionID, err, "HandleAcceptTerms")
		return
	}

	ctx.JSON(http.StatusOK, response.NewWizardState(sessionID, wizard))
}

// HandleConfirm godoc
// @Summary      Confirm the registration (step 5)
// @Description  Submits to the booking backend exactly once per confirmation. On failure the wizard keeps its state so the user can retry without re-entering data.
// @Tags         wizard
// @Produce      json
// @Param        sessionID  path      string  true  "session ID"
// @Success      200        {object}  response.Registration
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      502        {object}  response.Err
// @Router       /wizard/{sessionID}/confirm [post]
func (h *WizardHandler) HandleConfirm(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	confirmation, wizard, err := h.svc.Confirm(ctx.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionInFlight):
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		case errors.Is(err, domain.ErrScheduleIncomplete), errors.Is(err, domain.ErrTermsNotAccepted):
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		h.renderWizardErr(ctx, sessionID, err, "HandleConfirm")
		return
	}

	ctx.JSON(http.StatusOK, response.Registration{
		Message: confirmation.Message,
		Wizard:  response.NewWizardState(sessionID, wizard),
	})
}

// HandleBack godoc
// @Summary      Go back one step without losing entered data
// @Tags         wizard
// @Produce      json
// @Param        sessionID  path      string  true  "session ID"
// @Success      200        {object}  response.WizardState
// @Failure      404        {object}  response.Err
// @Router       /wizard/{sessionID}/back [post]
func (h *WizardHandler) HandleBack(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	wizard, err := h.svc.Back(sessionID)
	if err != nil {
		h.renderWizardErr(ctx, sessionID, err, "HandleBack")
		return
	}

	ctx.JSON(http.StatusOK, response.NewWizardState(sessionID, wizard))
}

// HandleReset godoc
// @Summary      Reset the wizard to step 1
// @Tags         wizard
// @Produce      json
// @Param        sessionID  path      string  true  "session ID"
// @Success      200        {object}  response.WizardState
// @Failure      404        {object}  response.Err
// @Router       /wizard/{sessionID}/reset [post]
func (h *WizardHandler) HandleReset(ctx *gin.Context) {
	sessionID := ctx.Param("sessionID")

	wizard, err := h.svc.Reset(sessionID)
	if err != nil {
		h.renderWizardErr(ctx, sessionID, err, "HandleReset")
		return
	}

	ctx.JSON(http.StatusOK, response.NewWizardState(sessionID, wizard))
}

// renderWizardErr maps the cross-cutting failure modes every wizard operation
// shares: unknown session, out-of-order step, booking backend down.
func (h *WizardHandler) renderWizardErr(ctx *gin.Context, sessionID string, err error, op string) {
	var upstream *booking.UpstreamError

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.RenderErr(ctx, response.ErrNotFound("session", "ID", sessionID))
	case errors.Is(err, domain.ErrStepMismatch):
		response.RenderErr(ctx, response.ErrConflict(err))
	case errors.As(err, &upstream):
		response.RenderErr(ctx, response.ErrBadGateway(upstream.Message))
	default:
		err = fmt.Errorf("v1.%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
