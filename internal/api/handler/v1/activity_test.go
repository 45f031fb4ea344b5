package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoharmony/park-registration/internal/booking"
	"github.com/ecoharmony/park-registration/internal/domain"
)

type stubCatalogService struct {
	listFn func(ctx context.Context) ([]domain.Activity, error)
	getFn  func(ctx context.Context, activityID int) (domain.Activity, []domain.ScheduleSlot, error)
}

func (s *stubCatalogService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogService) GetActivity(ctx context.Context, activityID int) (domain.Activity, []domain.ScheduleSlot, error) {
	return s.getFn(ctx, activityID)
}

func newActivityRouter(svc CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewActivityHandler(svc)

	router := gin.New()
	router.GET("/activities", h.HandleListActivities)
	router.GET("/activities/:activityID", h.HandleGetActivity)
	return router
}

func TestHandleListActivities(t *testing.T) {
	svc := &stubCatalogService{
		listFn: func(_ context.Context) ([]domain.Activity, error) {
			return []domain.Activity{
				{ID: 1, Name: "Tirolesa", RequiresSize: true, TotalCapacity: 20},
				{ID: 2, Name: "Safari", TotalCapacity: 10},
			}, nil
		},
	}
	router := newActivityRouter(svc)

	w := doRequest(router, http.MethodGet, "/activities", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Tirolesa", got[0].Name)
}

func TestHandleListActivitiesUpstreamDown(t *testing.T) {
	svc := &stubCatalogService{
		listFn: func(_ context.Context) ([]domain.Activity, error) {
			return nil, &booking.UpstreamError{StatusCode: 503, Message: "el servicio de reservas no está disponible"}
		},
	}
	router := newActivityRouter(svc)

	w := doRequest(router, http.MethodGet, "/activities", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandleGetActivity(t *testing.T) {
	svc := &stubCatalogService{
		getFn: func(_ context.Context, activityID int) (domain.Activity, []domain.ScheduleSlot, error) {
			return domain.Activity{ID: activityID, Name: "Tirolesa"},
				[]domain.ScheduleSlot{{ID: 7, Time: "10:00", Capacity: 3, Date: "2026-09-04"}},
				nil
		},
	}
	router := newActivityRouter(svc)

	w := doRequest(router, http.MethodGet, "/activities/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Activity domain.Activity       `json:"activity"`
		Slots    []domain.ScheduleSlot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Activity.ID)
	require.Len(t, got.Slots, 1)
}

func TestHandleGetActivityNotFound(t *testing.T) {
	svc := &stubCatalogService{
		getFn: func(_ context.Context, _ int) (domain.Activity, []domain.ScheduleSlot, error) {
			return domain.Activity{}, nil, booking.ErrActivityNotFound
		},
	}
	router := newActivityRouter(svc)

	w := doRequest(router, http.MethodGet, "/activities/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetActivityBadID(t *testing.T) {
	svc := &stubCatalogService{}
	router := newActivityRouter(svc)

	w := doRequest(router, http.MethodGet, "/activities/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
