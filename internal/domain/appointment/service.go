package appointment

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTransition is returned when a status change is requested on an
// appointment that already reached a terminal status.
var ErrInvalidTransition = errors.New("invalid status transition")

var timeOfDayRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

var validTypes = map[string]bool{
	TypePriority: true, TypeFollowUp: true, TypeOutpatient: true, TypeFirstVisit: true,
}

var validStatuses = map[string]bool{
	StatusScheduled: true, StatusCompleted: true, StatusCancelled: true, StatusNoShow: true,
}

type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) error {
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if !timeOfDayRe.MatchString(a.TimeOfDay) {
		return fmt.Errorf("time_of_day must be HH:MM, got %q", a.TimeOfDay)
	}
	if a.Specialty == "" {
		return fmt.Errorf("specialty is required")
	}
	if a.Type == "" {
		a.Type = TypeOutpatient
	}
	if !validTypes[a.Type] {
		return fmt.Errorf("invalid appointment type: %s", a.Type)
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if a.Status != StatusScheduled {
		return fmt.Errorf("new appointments must be scheduled, got %s", a.Status)
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) UpdateAppointment(ctx context.Context, a *Appointment) error {
	existing, err := s.appointments.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing.IsTerminal() {
		return fmt.Errorf("appointment is %s: %w", existing.Status, ErrInvalidTransition)
	}
	if a.TimeOfDay != "" && !timeOfDayRe.MatchString(a.TimeOfDay) {
		return fmt.Errorf("time_of_day must be HH:MM, got %q", a.TimeOfDay)
	}
	if a.Type != "" && !validTypes[a.Type] {
		return fmt.Errorf("invalid appointment type: %s", a.Type)
	}
	return s.appointments.Update(ctx, a)
}

// UpdateStatus moves an appointment out of the scheduled status. Completed,
// cancelled and no-show are terminal; once reached, no further transitions
// are allowed.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("invalid status: %s", status)
	}
	existing, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsTerminal() {
		return fmt.Errorf("appointment is %s: %w", existing.Status, ErrInvalidTransition)
	}
	if status == StatusScheduled {
		return fmt.Errorf("cannot transition back to scheduled: %w", ErrInvalidTransition)
	}
	return s.appointments.UpdateStatus(ctx, id, status)
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.appointments.Delete(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.ListByDoctor(ctx, doctorID, limit, offset)
}

// ListByDate returns the day's appointments ordered by time slot.
func (s *Service) ListByDate(ctx context.Context, day time.Time) ([]*Appointment, error) {
	return s.appointments.ListByDate(ctx, day)
}
