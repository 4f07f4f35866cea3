package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `a.id, a.patient_id, a.doctor_id, a.date, a.time_of_day, a.specialty,
	a.type, a.status, a.reason, a.notes, a.room, a.created_at, a.updated_at`

const apptJoinCols = apptCols + `,
	p.first_name || ' ' || p.last_name AS patient_name,
	u.full_name AS doctor_name`

const apptJoin = ` FROM appointments a
	JOIN patients p ON p.id = a.patient_id
	JOIN users u ON u.id = a.doctor_id`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.TimeOfDay, &a.Specialty,
		&a.Type, &a.Status, &a.Reason, &a.Notes, &a.Room, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func scanAppointmentJoined(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.TimeOfDay, &a.Specialty,
		&a.Type, &a.Status, &a.Reason, &a.Notes, &a.Room, &a.CreatedAt, &a.UpdatedAt,
		&a.PatientName, &a.DoctorName)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointments (id, patient_id, doctor_id, date, time_of_day, specialty, type, status, reason, notes, room)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		a.ID, a.PatientID, a.DoctorID, a.Date, a.TimeOfDay, a.Specialty, a.Type, a.Status, a.Reason, a.Notes, a.Room)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments a WHERE a.id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE appointments SET date=$2, time_of_day=$3, specialty=$4, type=$5,
			reason=$6, notes=$7, room=$8, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.Date, a.TimeOfDay, a.Specialty, a.Type, a.Reason, a.Notes, a.Room)
	return err
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE appointments SET status=$2, updated_at=NOW() WHERE id = $1`, id, status)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptJoinCols+apptJoin+` ORDER BY a.date DESC, a.time_of_day DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectJoined(rows, total)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptJoinCols+apptJoin+` WHERE a.patient_id = $1 ORDER BY a.date DESC, a.time_of_day DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectJoined(rows, total)
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptJoinCols+apptJoin+` WHERE a.doctor_id = $1 ORDER BY a.date DESC, a.time_of_day DESC LIMIT $2 OFFSET $3`,
		doctorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectJoined(rows, total)
}

func (r *repoPG) ListByDate(ctx context.Context, day time.Time) ([]*Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptJoinCols+apptJoin+` WHERE a.date >= $1 AND a.date < $2 ORDER BY a.time_of_day`,
		start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointmentJoined(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func collectJoined(rows pgx.Rows, total int) ([]*Appointment, int, error) {
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointmentJoined(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}
