package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skymarket/classifieds-api/internal/core/domain"
	"github.com/skymarket/classifieds-api/internal/core/ports"
)

type stubCommentService struct {
	listFn   func(ctx context.Context, adID int64) ([]ports.CommentView, error)
	addFn    func(ctx context.Context, identity domain.Identity, adID int64, text string) (*ports.CommentView, error)
	updateFn func(ctx context.Context, identity domain.Identity, adID, commentID int64, text string) (*ports.CommentView, error)
	deleteFn func(ctx context.Context, identity domain.Identity, adID, commentID int64) error
}

func (s *stubCommentService) List(ctx context.Context, adID int64) ([]ports.CommentView, error) {
	return s.listFn(ctx, adID)
}

func (s *stubCommentService) Add(ctx context.Context, identity domain.Identity, adID int64, text string) (*ports.CommentView, error) {
	return s.addFn(ctx, identity, adID, text)
}

func (s *stubCommentService) Update(ctx context.Context, identity domain.Identity, adID, commentID int64, text string) (*ports.CommentView, error) {
	return s.updateFn(ctx, identity, adID, commentID, text)
}

func (s *stubCommentService) Delete(ctx context.Context, identity domain.Identity, adID, commentID int64) error {
	return s.deleteFn(ctx, identity, adID, commentID)
}

func newCommentContext(t *testing.T, method, body string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	c.Set("identity", domain.Identity{ID: 1, Username: "alice@mail.com", Role: domain.RoleUser})
	return c, rec
}

func TestCommentHandler_List_WrapsCountAndResults(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubCommentService{
		listFn: func(ctx context.Context, adID int64) ([]ports.CommentView, error) {
			if adID != 10 {
				t.Fatalf("unexpected ad id: %d", adID)
			}
			return []ports.CommentView{
				{ID: 1, AdID: 10, AuthorID: 2, AuthorFirstName: "Bob", Text: "is it available?", CreatedAt: created},
			}, nil
		},
	}
	h := NewCommentHandler(stub)

	c, rec := newCommentContext(t, http.MethodGet, "", map[string]string{"id": "10"})

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", resp["count"])
	}
	results := resp["results"].([]any)
	first := results[0].(map[string]any)
	if first["authorFirstName"] != "Bob" {
		t.Fatalf("unexpected author: %v", first["authorFirstName"])
	}
	if first["createdAt"] != float64(created.UnixMilli()) {
		t.Fatalf("expected millisecond timestamp, got %v", first["createdAt"])
	}
}

func TestCommentHandler_List_AdNotFound(t *testing.T) {
	stub := &stubCommentService{
		listFn: func(ctx context.Context, adID int64) ([]ports.CommentView, error) {
			return nil, domain.ErrAdNotFound
		},
	}
	h := NewCommentHandler(stub)

	c, _ := newCommentContext(t, http.MethodGet, "", map[string]string{"id": "99"})

	err := h.List(c)
	if !errors.Is(err, domain.ErrAdNotFound) {
		t.Fatalf("expected ErrAdNotFound, got %v", err)
	}
}

func TestCommentHandler_Add_Success(t *testing.T) {
	stub := &stubCommentService{
		addFn: func(ctx context.Context, identity domain.Identity, adID int64, text string) (*ports.CommentView, error) {
			if identity.ID != 1 || adID != 10 || text != "is it still available?" {
				t.Fatalf("unexpected args: %+v %d %q", identity, adID, text)
			}
			return &ports.CommentView{ID: 3, AdID: adID, AuthorID: identity.ID, Text: text, CreatedAt: time.Now()}, nil
		},
	}
	h := NewCommentHandler(stub)

	c, rec := newCommentContext(t, http.MethodPost, `{"text":"is it still available?"}`, map[string]string{"id": "10"})

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCommentHandler_Add_TextTooShort(t *testing.T) {
	stub := &stubCommentService{
		addFn: func(ctx context.Context, identity domain.Identity, adID int64, text string) (*ports.CommentView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCommentHandler(stub)

	c, _ := newCommentContext(t, http.MethodPost, `{"text":"hi"}`, map[string]string{"id": "10"})

	err := h.Add(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestCommentHandler_Delete_Success(t *testing.T) {
	stub := &stubCommentService{
		deleteFn: func(ctx context.Context, identity domain.Identity, adID, commentID int64) error {
			if adID != 10 || commentID != 3 {
				t.Fatalf("unexpected ids: %d %d", adID, commentID)
			}
			return nil
		},
	}
	h := NewCommentHandler(stub)

	c, rec := newCommentContext(t, http.MethodDelete, "", map[string]string{"id": "10", "commentId": "3"})

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
