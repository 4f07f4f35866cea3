package identity

import (
	"time"

	"github.com/google/uuid"
)

// Roles recognized by the scheduling system. Doctors additionally carry a
// specialty so they can appear in the clinical directory.
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
	RoleStaff  = "staff"
)

// User maps to the users table. Authentication happens against an external
// identity provider; this record is the clinic-side profile.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Role      string    `db:"role" json:"role"`
	Specialty *string   `db:"specialty" json:"specialty,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsDoctor reports whether the user appears in the doctor directory.
func (u *User) IsDoctor() bool { return u.Role == RoleDoctor }
