package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. NationalID is the government-issued
// identity number patients register with and is unique across the clinic.
type Patient struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	FirstName  string     `db:"first_name" json:"first_name"`
	LastName   string     `db:"last_name" json:"last_name"`
	NationalID string     `db:"national_id" json:"national_id"`
	Phone      *string    `db:"phone" json:"phone,omitempty"`
	Email      *string    `db:"email" json:"email,omitempty"`
	BirthDate  *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Address    *string    `db:"address" json:"address,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// FullName returns the display name used in appointment listings.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
