package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"prato/internal/model"
	"prato/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrderItems(ctx context.Context, items []model.OrderItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	return session.NewManager(time.Hour, zerolog.Nop()).Create()
}

func seedCart(t *testing.T, sess *session.Session, entries ...model.CartEntry) {
	t.Helper()
	for _, e := range entries {
		require.True(t, sess.Cart.Add(e))
	}
}

func TestOrderService_Submit_Success(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)
	seedCart(t, sess, model.CartEntry{ItemID: "o1", Name: "Feijoada"})

	submitter := model.Submitter{Name: "João Silva", Registration: "1234", Notes: ""}
	sess.SetSubmitter(submitter)

	orderID := uuid.New()
	mockRepo := new(MockOrderRepository)
	mockRepo.On("CreateOrder", ctx, mock.AnythingOfType("*model.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*model.Order)
			order.ID = orderID
			order.CreatedAt = time.Now()
		}).
		Return(nil)
	mockRepo.On("CreateOrderItems", ctx, mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 1 && items[0].OrderID == orderID && items[0].ItemID == "o1"
	})).Return(nil)

	svc := NewOrderService(mockRepo, zerolog.Nop())

	resp, err := svc.Submit(ctx, sess, submitter)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, orderID, resp.ID)
	assert.Len(t, resp.Items, 1)

	// committed submission resets the session
	assert.Equal(t, 0, sess.Cart.Len())
	assert.False(t, sess.Cart.PanelOpen())
	assert.Equal(t, model.Submitter{}, sess.Submitter())

	mockRepo.AssertExpectations(t)
}

func TestOrderService_Submit_ItemsFailureLeavesSessionIntact(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)
	seedCart(t, sess, model.CartEntry{ItemID: "o1", Name: "Feijoada"})

	submitter := model.Submitter{Name: "João Silva", Registration: "1234"}
	sess.SetSubmitter(submitter)

	orderID := uuid.New()
	mockRepo := new(MockOrderRepository)
	mockRepo.On("CreateOrder", ctx, mock.AnythingOfType("*model.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Order).ID = orderID
		}).
		Return(nil)
	mockRepo.On("CreateOrderItems", ctx, mock.AnythingOfType("[]model.OrderItem")).
		Return(errors.New("connection reset"))

	svc := NewOrderService(mockRepo, zerolog.Nop())

	resp, err := svc.Submit(ctx, sess, submitter)

	require.ErrorIs(t, err, model.ErrOrderPersist)
	assert.Nil(t, resp)

	// the header for orderID is now an orphan in the store; the session
	// keeps everything for an explicit resubmission
	assert.Equal(t, 1, sess.Cart.Len())
	assert.Equal(t, submitter, sess.Submitter())

	mockRepo.AssertExpectations(t)
}

func TestOrderService_Submit_HeaderFailure(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)
	seedCart(t, sess, model.CartEntry{ItemID: "o1", Name: "Feijoada"})

	mockRepo := new(MockOrderRepository)
	mockRepo.On("CreateOrder", ctx, mock.AnythingOfType("*model.Order")).
		Return(errors.New("connection refused"))

	svc := NewOrderService(mockRepo, zerolog.Nop())

	_, err := svc.Submit(ctx, sess, model.Submitter{Name: "João Silva", Registration: "1234"})

	require.ErrorIs(t, err, model.ErrOrderPersist)
	assert.Equal(t, 1, sess.Cart.Len())

	// items were never attempted
	mockRepo.AssertNotCalled(t, "CreateOrderItems", mock.Anything, mock.Anything)
}

func TestOrderService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name      string
		submitter model.Submitter
		cart      []model.CartEntry
		wantErr   *model.DomainError
	}{
		{
			name:      "invalid name",
			submitter: model.Submitter{Name: "João2", Registration: "1234"},
			cart:      []model.CartEntry{{ItemID: "o1", Name: "Feijoada"}},
			wantErr:   model.ErrInvalidName,
		},
		{
			name:      "missing name",
			submitter: model.Submitter{Registration: "1234"},
			cart:      []model.CartEntry{{ItemID: "o1", Name: "Feijoada"}},
			wantErr:   model.ErrInvalidName,
		},
		{
			name:      "invalid registration",
			submitter: model.Submitter{Name: "João Silva", Registration: "12a4"},
			cart:      []model.CartEntry{{ItemID: "o1", Name: "Feijoada"}},
			wantErr:   model.ErrInvalidRegistration,
		},
		{
			name:      "invalid notes",
			submitter: model.Submitter{Name: "João Silva", Registration: "1234", Notes: "x;y"},
			cart:      []model.CartEntry{{ItemID: "o1", Name: "Feijoada"}},
			wantErr:   model.ErrInvalidNotes,
		},
		{
			name:      "empty cart",
			submitter: model.Submitter{Name: "João Silva", Registration: "1234"},
			wantErr:   model.ErrEmptyCart,
		},
		{
			name:      "invalid name and empty cart reports only the name",
			submitter: model.Submitter{Name: "João2", Registration: "1234"},
			wantErr:   model.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newTestSession(t)
			seedCart(t, sess, tt.cart...)

			mockRepo := new(MockOrderRepository)
			svc := NewOrderService(mockRepo, zerolog.Nop())

			_, err := svc.Submit(context.Background(), sess, tt.submitter)

			require.ErrorIs(t, err, tt.wantErr)

			// validation failures never reach the store
			mockRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_Submit_ReentrancyGuard(t *testing.T) {
	sess := newTestSession(t)
	seedCart(t, sess, model.CartEntry{ItemID: "o1", Name: "Feijoada"})

	// simulate a submission already in flight
	require.True(t, sess.BeginSubmit())

	mockRepo := new(MockOrderRepository)
	svc := NewOrderService(mockRepo, zerolog.Nop())

	_, err := svc.Submit(context.Background(), sess, model.Submitter{Name: "João Silva", Registration: "1234"})

	require.ErrorIs(t, err, model.ErrSubmissionInFlight)
	mockRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)

	// the guard belongs to the first submission, which releases it
	sess.EndSubmit()
	assert.True(t, sess.BeginSubmit())
}
