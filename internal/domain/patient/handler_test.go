package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/pkg/pagination"
)

func TestCreatePatientHandler(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	body := `{"first_name":"Ana","last_name":"Perez","national_id":"12345678"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestCreatePatientHandler_MissingNationalID(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	body := `{"first_name":"Ana","last_name":"Perez"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreatePatient(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestListPatientsHandler_Search(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	h := NewHandler(svc)
	ctx := context.Background()
	svc.CreatePatient(ctx, &Patient{FirstName: "Ana", LastName: "Perez", NationalID: "1"})
	svc.CreatePatient(ctx, &Patient{FirstName: "Luis", LastName: "Gomez", NationalID: "2"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/patients?q=gomez", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListPatients(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected 1 match, got %d", resp.Total)
	}
}

func TestGetPatientHandler_NotFound(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/patients/6f1577b1-9f6b-4e68-9e95-5adbfae3cf1e", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("6f1577b1-9f6b-4e68-9e95-5adbfae3cf1e")

	err := h.GetPatient(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}
