package dss

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is the directory entry reports join against.
type Doctor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
}

// PriorityCase is a scheduled priority appointment with its participants
// eagerly included.
type PriorityCase struct {
	ID          uuid.UUID `json:"id"`
	PatientName string    `json:"patient_name"`
	DoctorName  string    `json:"doctor_name"`
	Date        time.Time `json:"date"`
	TimeOfDay   string    `json:"time_of_day"`
	Specialty   string    `json:"specialty"`
	Reason      *string   `json:"reason,omitempty"`
}

// ExecutiveDashboard summarizes one reporting window.
type ExecutiveDashboard struct {
	Window           Window `json:"window"`
	Total            int    `json:"total"`
	Completed        int    `json:"completed"`
	Cancelled        int    `json:"cancelled"`
	NoShow           int    `json:"no_show"`
	OccupancyRate    string `json:"occupancy_rate"`
	CancellationRate string `json:"cancellation_rate"`
}

// DemandTrends covers all recorded appointments, not a window.
type DemandTrends struct {
	BySpecialty []GroupCount `json:"by_specialty"`
	ByType      []GroupCount `json:"by_type"`
	ByMonth     []GroupCount `json:"by_month"`
}

type DoctorPerformanceRow struct {
	DoctorID          uuid.UUID `json:"doctor_id"`
	Name              string    `json:"name"`
	Specialty         string    `json:"specialty"`
	Total             int       `json:"total"`
	Completed         int       `json:"completed"`
	EffectivenessRate string    `json:"effectiveness_rate"`
}

type DoctorPerformance struct {
	Window  Window                 `json:"window"`
	Doctors []DoctorPerformanceRow `json:"doctors"`
}

type PriorityCaseAlert struct {
	PriorityCase
	DaysUntil int    `json:"days_until"`
	Alert     string `json:"alert"`
}

type PriorityCases struct {
	Total  int                 `json:"total"`
	Urgent int                 `json:"urgent"`
	Cases  []PriorityCaseAlert `json:"cases"`
}

type ScheduleOptimization struct {
	Date              time.Time `json:"date"`
	Capacity          int       `json:"capacity"`
	AppointmentsToday int       `json:"appointments_today"`
	RoomsInUse        int       `json:"rooms_in_use"`
	AvailableSlots    int       `json:"available_slots"`
	OccupancyRate     string    `json:"occupancy_rate"`
}

type Absenteeism struct {
	Window          Window       `json:"window"`
	Total           int          `json:"total"`
	NoShow          int          `json:"no_show"`
	AbsenteeismRate string       `json:"absenteeism_rate"`
	TopAbsentees    []GroupCount `json:"top_absentees"`
}

type SpecialtyRevenue struct {
	Specialty string `json:"specialty"`
	Completed int    `json:"completed"`
	Revenue   string `json:"revenue"`
}

type FinancialEstimate struct {
	Window           Window             `json:"window"`
	PerVisitCost     string             `json:"per_visit_cost"`
	Completed        int                `json:"completed"`
	EstimatedRevenue string             `json:"estimated_revenue"`
	BySpecialty      []SpecialtyRevenue `json:"by_specialty"`
}

type ProductivityRow struct {
	DoctorID     uuid.UUID `json:"doctor_id"`
	Name         string    `json:"name"`
	Specialty    string    `json:"specialty"`
	Completed    int       `json:"completed"`
	DailyAverage string    `json:"daily_average"`
	Efficiency   string    `json:"efficiency"`
}

type StaffProductivity struct {
	Window   Window            `json:"window"`
	SpanDays int               `json:"span_days"`
	Doctors  []ProductivityRow `json:"doctors"`
}
