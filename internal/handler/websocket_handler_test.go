package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bukukas/bukukas-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type stubTokenValidator struct {
	token  string
	userID uuid.UUID
}

func (s *stubTokenValidator) ValidateToken(token string) (uuid.UUID, error) {
	if token == s.token {
		return s.userID, nil
	}
	return uuid.Nil, errors.New("invalid token")
}

func TestHandleWS_MissingToken(t *testing.T) {
	e := echo.New()
	f := newAccountFixture(t)
	handler := NewWebSocketHandler(websocket.NewHub(), &stubTokenValidator{token: "good", userID: f.userID}, f.accounts, nil)

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandleWS(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 HTTPError, got %v", err)
	}
}

func TestHandleWS_InvalidToken(t *testing.T) {
	e := echo.New()
	f := newAccountFixture(t)
	handler := NewWebSocketHandler(websocket.NewHub(), &stubTokenValidator{token: "good", userID: f.userID}, f.accounts, nil)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/ws?token=bad&accountId=%d", f.account.ID), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandleWS(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 HTTPError, got %v", err)
	}
}

func TestHandleWS_MissingAccountID(t *testing.T) {
	e := echo.New()
	f := newAccountFixture(t)
	handler := NewWebSocketHandler(websocket.NewHub(), &stubTokenValidator{token: "good", userID: f.userID}, f.accounts, nil)

	req := httptest.NewRequest(http.MethodGet, "/ws?token=good", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandleWS(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 HTTPError, got %v", err)
	}
}

func TestHandleWS_SomeoneElsesAccount(t *testing.T) {
	e := echo.New()
	f := newAccountFixture(t)
	// Token belongs to a user who does not own the account
	handler := NewWebSocketHandler(websocket.NewHub(), &stubTokenValidator{token: "good", userID: uuid.New()}, f.accounts, nil)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/ws?token=good&accountId=%d", f.account.ID), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandleWS(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 HTTPError, got %v", err)
	}
}
