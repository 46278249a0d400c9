package service

import (
	"context"
	"fmt"

	"prato/internal/model"
	"prato/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService. A thin read-through layer: the menu
// is owned by the database and only displayed here.
type menuService struct {
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// ListByCategory retrieves one menu category ordered by day of week.
func (s *menuService) ListByCategory(ctx context.Context, category string) ([]model.MenuItem, error) {
	if !model.ValidCategory(category) {
		return nil, fmt.Errorf("unknown menu category %q", category)
	}

	items, err := s.menuRepo.ListByCategory(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	return items, nil
}
