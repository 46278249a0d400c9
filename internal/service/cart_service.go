package service

import (
	"context"
	"fmt"

	"prato/internal/model"
	"prato/internal/repository"
	"prato/internal/session"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	menuRepo repository.MenuRepository
	clock    AvailabilityChecker
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(menuRepo repository.MenuRepository, clock AvailabilityChecker, logger zerolog.Logger) CartService {
	return &cartService{
		menuRepo: menuRepo,
		clock:    clock,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// AddItem resolves itemID against the menu and adds its (id, name)
// projection to the session cart. Closed store and duplicate adds leave
// the cart unchanged; both are expected conditions, reported as domain
// errors rather than faults.
func (s *cartService) AddItem(ctx context.Context, sess *session.Session, itemID string) error {
	if !s.clock.IsOpen() {
		s.logger.Debug().
			Str("session_id", sess.ID.String()).
			Str("item_id", itemID).
			Msg("add rejected, store closed")
		return model.ErrStoreClosed
	}

	item, err := s.menuRepo.GetByID(ctx, itemID)
	if err != nil {
		s.logger.Error().Err(err).Str("item_id", itemID).Msg("failed to resolve menu item")
		return fmt.Errorf("failed to resolve menu item: %w", err)
	}
	if item == nil {
		return model.ErrItemNotFound
	}

	if !sess.Cart.Add(model.CartEntry{ItemID: item.ID, Name: item.Name}) {
		s.logger.Debug().
			Str("session_id", sess.ID.String()).
			Str("item_id", itemID).
			Msg("add rejected, item already in cart")
		return model.ErrDuplicateItem
	}

	s.logger.Debug().
		Str("session_id", sess.ID.String()).
		Str("item_id", itemID).
		Int("cart_size", sess.Cart.Len()).
		Msg("item added to cart")

	return nil
}

// RemoveItem removes the entry with the given id from the session cart.
func (s *cartService) RemoveItem(sess *session.Session, itemID string) {
	sess.Cart.Remove(itemID)
	s.logger.Debug().
		Str("session_id", sess.ID.String()).
		Str("item_id", itemID).
		Int("cart_size", sess.Cart.Len()).
		Msg("item removed from cart")
}

// List returns the cart contents in display order.
func (s *cartService) List(sess *session.Session) []model.CartEntry {
	return sess.Cart.Entries()
}
