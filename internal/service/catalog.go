package service

import (
	"context"
	"fmt"

	"github.com/ecoharmony/park-registration/internal/domain"
)

// CatalogService exposes the booking backend's activity catalog to the
// activity picker.
type CatalogService struct {
	gw Gateway
}

func NewCatalogService(gw Gateway) *CatalogService {
	return &CatalogService{gw: gw}
}

func (s *CatalogService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.gw.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.gw.ListActivities -> %w", err)
	}
	return activities, nil
}

func (s *CatalogService) GetActivity(ctx context.Context, activityID int) (domain.Activity, []domain.ScheduleSlot, error) {
	activity, slots, err := s.gw.GetActivityDetail(ctx, activityID)
	if err != nil {
		return domain.Activity{}, nil, fmt.Errorf("s.gw.GetActivityDetail -> %w", err)
	}
	return activity, slots, nil
}
