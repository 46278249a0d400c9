package service

import (
	"context"

	"prato/internal/model"
	"prato/internal/repository"
	"prato/internal/session"
	"prato/internal/validate"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Submission states, logged as each attempt progresses.
const (
	stateValidating       = "validating"
	statePersistingHeader = "persisting_header"
	statePersistingItems  = "persisting_items"
	stateCommitted        = "committed"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Submit runs one submission attempt: validate, persist the header, then
// persist the line items. Validation applies first-failure-wins: the first
// failing check is returned and the rest are not evaluated, so a user
// fixing several problems sees one message per attempt.
//
// The two persistence steps are not atomic. If the items step fails after
// the header was created, the header stays behind with no items; no
// compensating delete is attempted and no retry is performed. Either
// persistence failure surfaces as the same generic ErrOrderPersist, with
// the failing step recorded in the log. The cart and submitter fields are
// cleared only after both steps succeed, so a failed attempt can be
// resubmitted as-is.
//
// Store openness is not re-checked here: it is enforced when items are
// added, and a submission already in flight runs to completion even if
// the window closes underneath it.
func (s *orderService) Submit(ctx context.Context, sess *session.Session, submitter model.Submitter) (*model.OrderResponse, error) {
	if !sess.BeginSubmit() {
		return nil, model.ErrSubmissionInFlight
	}
	defer sess.EndSubmit()

	logger := s.logger.With().Str("session_id", sess.ID.String()).Logger()

	logger.Debug().Str("state", stateValidating).Msg("submission started")
	if err := validateSubmission(submitter, sess.Cart.Len()); err != nil {
		logger.Debug().
			Str("state", stateValidating).
			Str("reason", err.Error()).
			Msg("submission rejected")
		return nil, err
	}

	entries := sess.Cart.Entries()

	order := &model.Order{
		Name:         submitter.Name,
		Registration: submitter.Registration,
		Notes:        submitter.Notes,
	}

	logger.Debug().Str("state", statePersistingHeader).Msg("creating order header")
	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		logger.Error().
			Err(err).
			Str("state", statePersistingHeader).
			Msg("order header creation failed")
		return nil, model.ErrOrderPersist
	}

	items := make([]model.OrderItem, len(entries))
	for i, entry := range entries {
		items[i] = model.OrderItem{
			ID:      uuid.New(),
			OrderID: order.ID,
			ItemID:  entry.ItemID,
		}
	}

	logger.Debug().
		Str("state", statePersistingItems).
		Str("order_id", order.ID.String()).
		Int("item_count", len(items)).
		Msg("creating order items")
	if err := s.orderRepo.CreateOrderItems(ctx, items); err != nil {
		// The header row for order.ID now exists with no items. It is
		// left as-is: the cart is intact and an explicit resubmission
		// creates a fresh order.
		logger.Error().
			Err(err).
			Str("state", statePersistingItems).
			Str("order_id", order.ID.String()).
			Msg("order items creation failed, header orphaned")
		return nil, model.ErrOrderPersist
	}

	sess.Cart.Clear()
	sess.ResetSubmitter()

	logger.Info().
		Str("state", stateCommitted).
		Str("order_id", order.ID.String()).
		Int("item_count", len(items)).
		Msg("order committed")

	return &model.OrderResponse{ID: order.ID, Items: entries}, nil
}

// validateSubmission applies the submission checks in their fixed order:
// name, registration, notes, then cart non-emptiness. The first failure
// short-circuits.
func validateSubmission(submitter model.Submitter, cartSize int) error {
	if !validate.Name(submitter.Name) {
		return model.ErrInvalidName
	}
	if !validate.Registration(submitter.Registration) {
		return model.ErrInvalidRegistration
	}
	if submitter.Notes != "" && !validate.Notes(submitter.Notes) {
		return model.ErrInvalidNotes
	}
	if cartSize == 0 {
		return model.ErrEmptyCart
	}
	return nil
}
