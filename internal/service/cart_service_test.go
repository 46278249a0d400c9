package service

import (
	"context"
	"errors"
	"testing"

	"prato/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMenuRepository is a mock implementation of MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) ListByCategory(ctx context.Context, category string) ([]model.MenuItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetOpeningWindow(ctx context.Context) (*model.OpeningWindow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OpeningWindow), args.Error(1)
}

// stubClock is a fixed AvailabilityChecker.
type stubClock struct {
	open   bool
	window *model.OpeningWindow
}

func (c stubClock) IsOpen() bool { return c.open }
func (c stubClock) Window() *model.OpeningWindow { return c.window }

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)

	mockMenu := new(MockMenuRepository)
	mockMenu.On("GetByID", ctx, "x1").
		Return(&model.MenuItem{ID: "x1", Name: "Feijoada", DayOfWeek: 1, Category: model.CategoryMain}, nil)

	svc := NewCartService(mockMenu, stubClock{open: true}, zerolog.Nop())

	err := svc.AddItem(ctx, sess, "x1")

	require.NoError(t, err)
	entries := svc.List(sess)
	require.Len(t, entries, 1)
	assert.Equal(t, model.CartEntry{ItemID: "x1", Name: "Feijoada"}, entries[0])
	assert.True(t, sess.Cart.PanelOpen())
}

func TestCartService_AddItem_StoreClosed(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)

	mockMenu := new(MockMenuRepository)
	svc := NewCartService(mockMenu, stubClock{open: false}, zerolog.Nop())

	err := svc.AddItem(ctx, sess, "x1")

	require.ErrorIs(t, err, model.ErrStoreClosed)
	assert.Equal(t, 0, sess.Cart.Len())

	// the menu is never consulted while closed
	mockMenu.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_Duplicate(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)

	mockMenu := new(MockMenuRepository)
	mockMenu.On("GetByID", ctx, "x1").
		Return(&model.MenuItem{ID: "x1", Name: "Feijoada"}, nil)

	svc := NewCartService(mockMenu, stubClock{open: true}, zerolog.Nop())

	require.NoError(t, svc.AddItem(ctx, sess, "x1"))

	err := svc.AddItem(ctx, sess, "x1")
	require.ErrorIs(t, err, model.ErrDuplicateItem)
	assert.Equal(t, 1, sess.Cart.Len())
}

func TestCartService_AddItem_UnknownItem(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)

	mockMenu := new(MockMenuRepository)
	mockMenu.On("GetByID", ctx, "nope").Return(nil, nil)

	svc := NewCartService(mockMenu, stubClock{open: true}, zerolog.Nop())

	err := svc.AddItem(ctx, sess, "nope")
	require.ErrorIs(t, err, model.ErrItemNotFound)
	assert.Equal(t, 0, sess.Cart.Len())
}

func TestCartService_AddItem_RepositoryError(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t)

	mockMenu := new(MockMenuRepository)
	mockMenu.On("GetByID", ctx, "x1").Return(nil, errors.New("connection refused"))

	svc := NewCartService(mockMenu, stubClock{open: true}, zerolog.Nop())

	err := svc.AddItem(ctx, sess, "x1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrItemNotFound)
	assert.Equal(t, 0, sess.Cart.Len())
}

func TestCartService_RemoveItem(t *testing.T) {
	sess := newTestSession(t)
	sess.Cart.Add(model.CartEntry{ItemID: "x1", Name: "Feijoada"})

	svc := NewCartService(new(MockMenuRepository), stubClock{open: true}, zerolog.Nop())

	svc.RemoveItem(sess, "x1")
	assert.Equal(t, 0, sess.Cart.Len())

	// removing again is a no-op
	svc.RemoveItem(sess, "x1")
	assert.Equal(t, 0, sess.Cart.Len())
}
