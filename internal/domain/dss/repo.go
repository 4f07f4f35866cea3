package dss

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows appointment counts. Zero-valued fields are ignored.
type Filter struct {
	Window    *Window
	Status    string
	Type      string
	Specialty string
}

// RecordSource is the read-only view of the appointment store the reporting
// engine consumes. Implementations must support many concurrent readers.
type RecordSource interface {
	CountAppointments(ctx context.Context, f Filter) (int, error)
	// GroupBySpecialty counts all-time appointments per specialty,
	// descending by count.
	GroupBySpecialty(ctx context.Context) ([]GroupCount, error)
	// GroupByType counts all-time appointments per appointment type.
	GroupByType(ctx context.Context) ([]GroupCount, error)
	// GroupByMonth counts appointments per calendar month, most recent
	// first, at most limit buckets.
	GroupByMonth(ctx context.Context, limit int) ([]GroupCount, error)
	// ListPriorityCases returns scheduled priority appointments ordered
	// ascending by date, with patient and doctor names included.
	ListPriorityCases(ctx context.Context) ([]PriorityCase, error)
	// CountByDoctor counts matching appointments per doctor.
	CountByDoctor(ctx context.Context, f Filter) (map[uuid.UUID]int, error)
	// AbsencesByPatient counts no-shows per patient inside the window. Rows
	// come back in ascending patient-ID order so ranking ties stay
	// deterministic.
	AbsencesByPatient(ctx context.Context, w Window) ([]GroupCount, error)
	// CountDistinctRooms counts rooms with at least one appointment in the
	// window.
	CountDistinctRooms(ctx context.Context, w Window) (int, error)
	ListDoctors(ctx context.Context) ([]Doctor, error)
}
