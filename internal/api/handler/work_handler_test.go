package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/frontridge/frontridge-api/internal/core/domain"
	"github.com/frontridge/frontridge-api/internal/core/ports"
)

type stubWorkService struct {
	works    []*domain.Work
	listErr  error
	created  *ports.CreateWorkInput
	updated  *ports.UpdateWorkInput
	updateID string
	deleteID string
	err      error
}

func (s *stubWorkService) List(context.Context) ([]*domain.Work, error) {
	return s.works, s.listErr
}

func (s *stubWorkService) Create(_ context.Context, input ports.CreateWorkInput) (*domain.Work, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &input
	return &domain.Work{
		ID:               "w1",
		Name:             input.Name,
		Description:      input.Description,
		Category:         domain.NormalizeCategory(domain.Category(input.Category)),
		TitleImageURL:    input.TitleImageURL,
		GalleryImageURLs: input.GalleryImageURLs,
		CreatedAt:        time.Now().UTC(),
	}, nil
}

func (s *stubWorkService) Update(_ context.Context, id string, input ports.UpdateWorkInput) (*domain.Work, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updateID = id
	s.updated = &input
	return &domain.Work{ID: id, Name: "updated"}, nil
}

func (s *stubWorkService) Delete(_ context.Context, id string) error {
	s.deleteID = id
	return s.err
}

func newWorkTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWorkHandler_List(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &stubWorkService{works: []*domain.Work{
		{ID: "b", Name: "Clinic", Category: domain.CategoryHealthcare, TitleImageURL: "https://img.example/b.jpg", CreatedAt: now},
		{ID: "a", Name: "Cafe", Category: domain.CategoryRestaurants, TitleImageURL: "https://img.example/a.jpg", CreatedAt: now.Add(-time.Hour)},
	}}
	h := NewWorkHandler(svc)

	c, rec := newWorkTestContext(http.MethodGet, "/api/works", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"works":[`) || !strings.Contains(body, `"Clinic"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestWorkHandler_List_EmptyArray(t *testing.T) {
	h := NewWorkHandler(&stubWorkService{})

	c, rec := newWorkTestContext(http.MethodGet, "/api/works", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"works":[]`) {
		t.Fatalf("empty list must serialize as [], got %s", rec.Body.String())
	}
}

func TestWorkHandler_Create(t *testing.T) {
	svc := &stubWorkService{}
	h := NewWorkHandler(svc)

	c, rec := newWorkTestContext(http.MethodPost, "/api/works", `{
		"name": "Cafe",
		"description": "Fit-out",
		"category": "Healthcare",
		"titleImageUrl": "https://img.example/t.jpg",
		"galleryImageUrls": ["https://img.example/1.jpg"]
	}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.created == nil || svc.created.Name != "Cafe" || svc.created.Category != "Healthcare" {
		t.Fatalf("input not forwarded: %+v", svc.created)
	}
	if !strings.Contains(rec.Body.String(), `"work":{`) {
		t.Fatalf("response must wrap the work: %s", rec.Body.String())
	}
}

func TestWorkHandler_Create_ValidationFailures(t *testing.T) {
	h := NewWorkHandler(&stubWorkService{})

	cases := []string{
		`{"titleImageUrl":"https://img.example/t.jpg"}`,
		`{"name":"Cafe"}`,
		`{"name":"Cafe","titleImageUrl":"https://img.example/t.jpg","category":"Residential"}`,
	}
	for i, body := range cases {
		c, _ := newWorkTestContext(http.MethodPost, "/api/works", body)
		err := h.Create(c)
		if _, ok := err.(*domain.ValidationError); !ok {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestWorkHandler_Update_PartialBody(t *testing.T) {
	svc := &stubWorkService{}
	h := NewWorkHandler(svc)

	c, _ := newWorkTestContext(http.MethodPut, "/api/works/abc", `{"description":"new"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if svc.updateID != "abc" {
		t.Fatalf("id not forwarded: %q", svc.updateID)
	}
	if svc.updated.Name != nil || svc.updated.Description == nil || *svc.updated.Description != "new" {
		t.Fatalf("patch fields wrong: %+v", svc.updated)
	}
	if svc.updated.HasGallery {
		t.Fatalf("gallery must stay untouched when absent from the body")
	}
}

func TestWorkHandler_Update_GalleryProvided(t *testing.T) {
	svc := &stubWorkService{}
	h := NewWorkHandler(svc)

	c, _ := newWorkTestContext(http.MethodPut, "/api/works/abc", `{"galleryImageUrls":[]}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !svc.updated.HasGallery {
		t.Fatalf("explicit empty gallery must be marked as provided")
	}
	if len(svc.updated.GalleryImageURLs) != 0 {
		t.Fatalf("unexpected gallery: %v", svc.updated.GalleryImageURLs)
	}
}

func TestWorkHandler_Update_NotFound(t *testing.T) {
	h := NewWorkHandler(&stubWorkService{err: domain.ErrWorkNotFound})

	c, _ := newWorkTestContext(http.MethodPut, "/api/works/missing", `{"name":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Update(c); err != domain.ErrWorkNotFound {
		t.Fatalf("expected ErrWorkNotFound, got %v", err)
	}
}

func TestWorkHandler_Delete(t *testing.T) {
	svc := &stubWorkService{}
	h := NewWorkHandler(svc)

	c, rec := newWorkTestContext(http.MethodDelete, "/api/works/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if svc.deleteID != "abc" {
		t.Fatalf("id not forwarded: %q", svc.deleteID)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestWorkHandler_Delete_InvalidID(t *testing.T) {
	h := NewWorkHandler(&stubWorkService{err: domain.ErrInvalidWorkID})

	c, _ := newWorkTestContext(http.MethodDelete, "/api/works/%25%25%25", "")
	c.SetParamNames("id")
	c.SetParamValues("%%%")

	if err := h.Delete(c); err != domain.ErrInvalidWorkID {
		t.Fatalf("expected ErrInvalidWorkID, got %v", err)
	}
}
