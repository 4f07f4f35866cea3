package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *mockUserRepo) {
	repo := newMockUserRepo()
	return NewHandler(NewService(repo)), repo
}

func TestCreateUserHandler(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	body := `{"username":"garcia","full_name":"Dr. Garcia","role":"doctor","specialty":"cardiology"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateUser(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var u User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if u.Username != "garcia" {
		t.Errorf("expected username garcia, got %s", u.Username)
	}
}

func TestCreateUserHandler_InvalidRole(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	body := `{"username":"jdoe","full_name":"Jane Doe","role":"superuser"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateUser(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestGetUserHandler_InvalidID(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetUser(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestListDoctorsHandler(t *testing.T) {
	h, repo := newTestHandler()
	svc := NewService(repo)
	ctx := context.Background()
	svc.CreateUser(ctx, &User{Username: "garcia", FullName: "Dr. Garcia", Role: RoleDoctor, Specialty: strPtr("cardiology")})
	svc.CreateUser(ctx, &User{Username: "front", FullName: "Front Desk", Role: RoleStaff})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListDoctors(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var doctors []User
	if err := json.Unmarshal(rec.Body.Bytes(), &doctors); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(doctors) != 1 {
		t.Fatalf("expected 1 doctor, got %d", len(doctors))
	}
}
