package patient

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) GetByNationalID(_ context.Context, nationalID string) (*Patient, error) {
	for _, p := range m.patients {
		if p.NationalID == nationalID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, len(result), nil
}

func (m *mockRepo) Search(_ context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	q := strings.ToLower(query)
	for _, p := range m.patients {
		if strings.Contains(strings.ToLower(p.FirstName), q) ||
			strings.Contains(strings.ToLower(p.LastName), q) ||
			strings.Contains(strings.ToLower(p.NationalID), q) {
			result = append(result, p)
		}
	}
	return result, len(result), nil
}

// -- Tests --

func TestCreatePatient_RequiresFields(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	cases := []struct {
		name    string
		patient Patient
	}{
		{"missing first name", Patient{LastName: "Perez", NationalID: "123"}},
		{"missing last name", Patient{FirstName: "Ana", NationalID: "123"}},
		{"missing national id", Patient{FirstName: "Ana", LastName: "Perez"}},
		{"whitespace national id", Patient{FirstName: "Ana", LastName: "Perez", NationalID: "  "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.CreatePatient(ctx, &tc.patient); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCreatePatient_DuplicateNationalID(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	p1 := &Patient{FirstName: "Ana", LastName: "Perez", NationalID: "12345678"}
	if err := svc.CreatePatient(ctx, p1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p2 := &Patient{FirstName: "Luis", LastName: "Gomez", NationalID: "12345678"}
	if err := svc.CreatePatient(ctx, p2); err == nil {
		t.Fatal("expected error for duplicate national_id")
	}
}

func TestGetPatientByNationalID(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	p := &Patient{FirstName: "Ana", LastName: "Perez", NationalID: "12345678"}
	if err := svc.CreatePatient(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetPatientByNationalID(ctx, "12345678")
	if err != nil {
		t.Fatalf("GetPatientByNationalID: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("expected patient %s, got %s", p.ID, got.ID)
	}
}

func TestSearchPatients_FallsBackToList(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()
	svc.CreatePatient(ctx, &Patient{FirstName: "Ana", LastName: "Perez", NationalID: "1"})
	svc.CreatePatient(ctx, &Patient{FirstName: "Luis", LastName: "Gomez", NationalID: "2"})

	items, total, err := svc.SearchPatients(ctx, "   ", 20, 0)
	if err != nil {
		t.Fatalf("SearchPatients: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("expected all patients for blank query, got %d", total)
	}
}

func TestSearchPatients_MatchesName(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()
	svc.CreatePatient(ctx, &Patient{FirstName: "Ana", LastName: "Perez", NationalID: "1"})
	svc.CreatePatient(ctx, &Patient{FirstName: "Luis", LastName: "Gomez", NationalID: "2"})

	items, _, err := svc.SearchPatients(ctx, "perez", 20, 0)
	if err != nil {
		t.Fatalf("SearchPatients: %v", err)
	}
	if len(items) != 1 || items[0].LastName != "Perez" {
		t.Errorf("expected one match for perez, got %v", items)
	}
}

func TestPatientFullName(t *testing.T) {
	p := Patient{FirstName: "Ana", LastName: "Perez"}
	if p.FullName() != "Ana Perez" {
		t.Errorf("unexpected full name: %s", p.FullName())
	}
}
