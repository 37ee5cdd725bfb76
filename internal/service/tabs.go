package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bangs/internal/bang"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/store"
	"github.com/MKhiriev/go-bangs/models"
)

type tabService struct {
	tabs   store.TabGroupRepository
	logger *logger.Logger
}

func NewTabService(tabs store.TabGroupRepository, log *logger.Logger) TabService {
	return &tabService{tabs: tabs, logger: log}
}

// LaunchGroup returns the user's tab group for trigger (with or without "!")
// with its items in order.
func (s *tabService) LaunchGroup(ctx context.Context, user *models.User, trigger string) (models.TabGroup, error) {
	trigger = bang.NormalizeTrigger(trigger)
	if user == nil || trigger == "" {
		return models.TabGroup{}, ErrTabGroupNotFound
	}

	group, err := s.tabs.FindTabGroup(ctx, user.UserID, trigger)
	if errors.Is(err, store.ErrTabGroupNotFound) {
		return models.TabGroup{}, ErrTabGroupNotFound
	}
	if err != nil {
		return models.TabGroup{}, fmt.Errorf("error loading tab group %s: %w", trigger, err)
	}

	return group, nil
}
