package dss

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recordSourcePG struct{ pool *pgxpool.Pool }

func NewRecordSourcePG(pool *pgxpool.Pool) RecordSource { return &recordSourcePG{pool: pool} }

func (r *recordSourcePG) CountAppointments(ctx context.Context, f Filter) (int, error) {
	query := `SELECT COUNT(*) FROM appointments WHERE 1=1`
	var args []interface{}
	idx := 1

	if f.Window != nil {
		query += fmt.Sprintf(` AND date >= $%d AND date <= $%d`, idx, idx+1)
		args = append(args, f.Window.Start, f.Window.End)
		idx += 2
	}
	if f.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, idx)
		args = append(args, f.Status)
		idx++
	}
	if f.Type != "" {
		query += fmt.Sprintf(` AND type = $%d`, idx)
		args = append(args, f.Type)
		idx++
	}
	if f.Specialty != "" {
		query += fmt.Sprintf(` AND specialty = $%d`, idx)
		args = append(args, f.Specialty)
		idx++
	}

	var count int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *recordSourcePG) GroupBySpecialty(ctx context.Context) ([]GroupCount, error) {
	return r.groupCounts(ctx,
		`SELECT specialty, COUNT(*) FROM appointments GROUP BY specialty ORDER BY COUNT(*) DESC`)
}

func (r *recordSourcePG) GroupByType(ctx context.Context) ([]GroupCount, error) {
	return r.groupCounts(ctx,
		`SELECT type, COUNT(*) FROM appointments GROUP BY type`)
}

func (r *recordSourcePG) GroupByMonth(ctx context.Context, limit int) ([]GroupCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('month', date) AS month, COUNT(*)
		FROM appointments
		GROUP BY month
		ORDER BY month DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []GroupCount
	for rows.Next() {
		var month time.Time
		var count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, err
		}
		out = append(out, GroupCount{Key: MonthKey(month), Count: count})
	}
	return out, rows.Err()
}

func (r *recordSourcePG) ListPriorityCases(ctx context.Context) ([]PriorityCase, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, p.first_name || ' ' || p.last_name, u.full_name,
			a.date, a.time_of_day, a.specialty, a.reason
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		JOIN users u ON u.id = a.doctor_id
		WHERE a.type = 'priority' AND a.status = 'scheduled'
		ORDER BY a.date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PriorityCase
	for rows.Next() {
		var pc PriorityCase
		if err := rows.Scan(&pc.ID, &pc.PatientName, &pc.DoctorName,
			&pc.Date, &pc.TimeOfDay, &pc.Specialty, &pc.Reason); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

func (r *recordSourcePG) CountByDoctor(ctx context.Context, f Filter) (map[uuid.UUID]int, error) {
	query := `SELECT doctor_id, COUNT(*) FROM appointments WHERE 1=1`
	var args []interface{}
	idx := 1

	if f.Window != nil {
		query += fmt.Sprintf(` AND date >= $%d AND date <= $%d`, idx, idx+1)
		args = append(args, f.Window.Start, f.Window.End)
		idx += 2
	}
	if f.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, idx)
		args = append(args, f.Status)
		idx++
	}
	query += ` GROUP BY doctor_id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[uuid.UUID]int)
	for rows.Next() {
		var id uuid.UUID
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		out[id] = count
	}
	return out, rows.Err()
}

func (r *recordSourcePG) AbsencesByPatient(ctx context.Context, w Window) ([]GroupCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.first_name || ' ' || p.last_name, COUNT(*)
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		WHERE a.status = 'no-show' AND a.date >= $1 AND a.date <= $2
		GROUP BY p.id, p.first_name, p.last_name
		ORDER BY p.id`, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []GroupCount
	for rows.Next() {
		var gc GroupCount
		if err := rows.Scan(&gc.Key, &gc.Count); err != nil {
			return nil, err
		}
		out = append(out, gc)
	}
	return out, rows.Err()
}

func (r *recordSourcePG) CountDistinctRooms(ctx context.Context, w Window) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT room) FROM appointments
		WHERE room IS NOT NULL AND date >= $1 AND date <= $2`,
		w.Start, w.End).Scan(&count)
	return count, err
}

func (r *recordSourcePG) ListDoctors(ctx context.Context) ([]Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, COALESCE(specialty, '')
		FROM users WHERE role = 'doctor' ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *recordSourcePG) groupCounts(ctx context.Context, query string) ([]GroupCount, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []GroupCount
	for rows.Next() {
		var gc GroupCount
		if err := rows.Scan(&gc.Key, &gc.Count); err != nil {
			return nil, err
		}
		out = append(out, gc)
	}
	return out, rows.Err()
}
