package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"prato/internal/model"
	"prato/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService is a mock implementation of service.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddItem(ctx context.Context, sess *session.Session, itemID string) error {
	args := m.Called(ctx, sess, itemID)
	return args.Error(0)
}

func (m *MockCartService) RemoveItem(sess *session.Session, itemID string) {
	m.Called(sess, itemID)
}

func (m *MockCartService) List(sess *session.Session) []model.CartEntry {
	args := m.Called(sess)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.CartEntry)
}

func TestCartHandler_AddItem(t *testing.T) {
	mockService := new(MockCartService)
	mockService.On("AddItem", mock.Anything, mock.Anything, "x1").Return(nil)
	mockService.On("List", mock.Anything).
		Return([]model.CartEntry{{ItemID: "x1", Name: "Feijoada"}})

	h := NewCartHandler(mockService, zerolog.Nop())

	req, sess := newSessionRequest(t, http.MethodPost, "/api/cart/items", []byte(`{"itemId":"x1"}`))
	sess.Cart.Add(model.CartEntry{ItemID: "x1", Name: "Feijoada"})
	w := httptest.NewRecorder()

	h.AddItem(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got cartResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "x1", got.Items[0].ItemID)
	assert.True(t, got.PanelOpen)
}

func TestCartHandler_AddItem_StoreClosed(t *testing.T) {
	mockService := new(MockCartService)
	mockService.On("AddItem", mock.Anything, mock.Anything, "x1").
		Return(model.ErrStoreClosed)

	h := NewCartHandler(mockService, zerolog.Nop())

	req, _ := newSessionRequest(t, http.MethodPost, "/api/cart/items", []byte(`{"itemId":"x1"}`))
	w := httptest.NewRecorder()

	h.AddItem(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var got ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, model.ErrCodeStoreClosed, got.Code)
}

func TestCartHandler_AddItem_MissingItemID(t *testing.T) {
	mockService := new(MockCartService)
	h := NewCartHandler(mockService, zerolog.Nop())

	req, _ := newSessionRequest(t, http.MethodPost, "/api/cart/items", []byte(`{}`))
	w := httptest.NewRecorder()

	h.AddItem(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	mockService := new(MockCartService)
	mockService.On("RemoveItem", mock.Anything, "x1").Return()
	mockService.On("List", mock.Anything).Return([]model.CartEntry{})

	h := NewCartHandler(mockService, zerolog.Nop())

	req, _ := newSessionRequest(t, http.MethodDelete, "/api/cart/items/x1", nil)
	w := httptest.NewRecorder()

	h.RemoveItem(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	mockService.AssertCalled(t, "RemoveItem", mock.Anything, "x1")
}

func TestCartHandler_Get_EmptyCart(t *testing.T) {
	mockService := new(MockCartService)
	mockService.On("List", mock.Anything).Return(nil)

	h := NewCartHandler(mockService, zerolog.Nop())

	req, _ := newSessionRequest(t, http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()

	h.Get(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"panelOpen":false}`, w.Body.String())
}
