package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecoharmony/park-registration/internal/api/handler/v1/response"
	"github.com/ecoharmony/park-registration/internal/booking"
	"github.com/ecoharmony/park-registration/internal/domain"
)

type CatalogService interface {
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	GetActivity(ctx context.Context, activityID int) (domain.Activity, []domain.ScheduleSlot, error)
}

type ActivityHandler struct {
	svc CatalogService
}

func NewActivityHandler(svc CatalogService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// HandleListActivities godoc
// @Summary      List all bookable activities
// @Tags         activities
// @Produce      json
// @Success      200  {array}   domain.Activity
// @Failure      502  {object}  response.Err
// @Router       /activities [get]
func (h *ActivityHandler) HandleListActivities(ctx *gin.Context) {
	activities, err := h.svc.ListActivities(ctx.Request.Context())
	if err != nil {
		renderCatalogErr(ctx, err, "HandleListActivities")
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleGetActivity godoc
// @Summary      Get one activity with its full schedule
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "activity ID"
// @Success      200         {object}  response.ActivityDetail
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      502         {object}  response.Err
// @Router       /activities/{activityID} [get]
func (h *ActivityHandler) HandleGetActivity(ctx *gin.Context) {
	activityID, err := strconv.Atoi(ctx.Param("activityID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("activityID must be an integer")))
		return
	}

	activity, slots, err := h.svc.GetActivity(ctx.Request.Context(), activityID)
	if err != nil {
		if errors.Is(err, booking.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}
		renderCatalogErr(ctx, err, "HandleGetActivity")
		return
	}

	ctx.JSON(http.StatusOK, response.ActivityDetail{Activity: activity, Slots: slots})
}

func renderCatalogErr(ctx *gin.Context, err error, op string) {
	var upstream *booking.UpstreamError
	if errors.As(err, &upstream) {
		response.RenderErr(ctx, response.ErrBadGateway(upstream.Message))
		return
	}

	err = fmt.Errorf("v1.%v -> %w", op, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
