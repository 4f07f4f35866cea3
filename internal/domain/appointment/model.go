package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment types. Priority cases are flagged for follow-up by the
// reporting endpoints.
const (
	TypePriority   = "priority"
	TypeFollowUp   = "follow-up"
	TypeOutpatient = "outpatient-consultation"
	TypeFirstVisit = "first-visit"
)

// Appointment statuses. New appointments start as scheduled; the other three
// are terminal.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// Appointment maps to the appointments table. Date carries the calendar day
// of the visit and TimeOfDay the wall-clock slot in HH:MM.
type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Date      time.Time `db:"date" json:"date"`
	TimeOfDay string    `db:"time_of_day" json:"time_of_day"`
	Specialty string    `db:"specialty" json:"specialty"`
	Type      string    `db:"type" json:"type"`
	Status    string    `db:"status" json:"status"`
	Reason    *string   `db:"reason" json:"reason,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	Room      *string   `db:"room" json:"room,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Denormalized display fields populated by list queries.
	PatientName *string `db:"-" json:"patient_name,omitempty"`
	DoctorName  *string `db:"-" json:"doctor_name,omitempty"`
}

// IsTerminal reports whether the appointment has reached a final status.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled || a.Status == StatusNoShow
}
