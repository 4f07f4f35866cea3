package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("first_name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("last_name is required")
	}
	if strings.TrimSpace(p.NationalID) == "" {
		return fmt.Errorf("national_id is required")
	}
	if existing, err := s.patients.GetByNationalID(ctx, p.NationalID); err == nil && existing != nil {
		return fmt.Errorf("patient with national_id %s already exists", p.NationalID)
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) GetPatientByNationalID(ctx context.Context, nationalID string) (*Patient, error) {
	return s.patients.GetByNationalID(ctx, nationalID)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("first_name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("last_name is required")
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

// SearchPatients matches the query against names and the national ID.
func (s *Service) SearchPatients(ctx context.Context, query string, limit, offset int) ([]*Patient, int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.patients.List(ctx, limit, offset)
	}
	return s.patients.Search(ctx, query, limit, offset)
}
