package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

func callErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHTTPErrorHandler(zerolog.Nop())
	h(err, c)
	return rec
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidArgument, http.StatusBadRequest},
		{domain.ErrBadCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrAdNotFound, http.StatusNotFound},
		{domain.ErrCommentNotFound, http.StatusNotFound},
		{domain.ErrImageNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		rec := callErrorHandler(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	rec := callErrorHandler(t, fmt.Errorf("find ad: %w", domain.ErrAdNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", rec.Code)
	}
}

func TestErrorHandler_BadCredentialsMessageIsGeneric(t *testing.T) {
	rec := callErrorHandler(t, domain.ErrBadCredentials)
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Fatalf("expected generic credentials message, got %s", rec.Body.String())
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := callErrorHandler(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec := callErrorHandler(t, errors.New("mongo: socket was unexpectedly closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}
