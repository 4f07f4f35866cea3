package dss

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/dss", auth.RequireRole("doctor", "staff"))
	g.GET("/executive-dashboard", h.ExecutiveDashboard)
	g.GET("/demand-trends", h.DemandTrends)
	g.GET("/doctor-performance", h.DoctorPerformance)
	g.GET("/priority-cases", h.PriorityCases)
	g.GET("/schedule-optimization", h.ScheduleOptimization)
	g.GET("/absenteeism", h.Absenteeism)
	g.GET("/financial", h.FinancialEstimate)
	g.GET("/staff-productivity", h.StaffProductivity)
}

// window parses the start/end query pair before any repo work happens.
func window(c echo.Context) (Window, error) {
	w, err := ParseWindow(c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return Window{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return w, nil
}

func reportErr(err error) error {
	if errors.Is(err, ErrSourceUnavailable) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "record source unavailable")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) ExecutiveDashboard(c echo.Context) error {
	w, err := window(c)
	if err != nil {
		return err
	}
	report, err := h.svc.ExecutiveDashboard(c.Request().Context(), w)
	if err != nil {
		return reportErr(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) DemandTrends(c echo.Context) error {
	report, err := h.svc.DemandTrends(c.Request().Context())
	if err != nil {
		return reportErr(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) DoctorPerformance(c echo.Context) error {
	w, err := window(c)
	if err != nil {
		return err
	}
	report, err := h.svc.DoctorPerformance(c.Request().Context(), w)
	if err != nil {
		return reportErr(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) PriorityCases(c echo.Context) error {
	report, err := h.svc.PriorityCases(c.Request().Context())
	if err != nil {
		return reportErr(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) ScheduleOptimization(c echo.Context) error {
	day, err := ParseTimestamp(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	report, err := h.svc.ScheduleOptimization(c.Request().Context(), day)
	if err != nil {
		return reportErr(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) Absenteeism(c echo.Context) error {
	w, err := window(c)
	if err != nil {
		return err
	}
	report, err := h.svc.Absenteeism(c.Request().Context(), w)
	if err != nil {
		return reportErr(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) FinancialEstimate(c echo.Context) error {
	w, err := window(c)
	if err != nil {
		return err
	}
	report, err := h.svc.FinancialEstimate(c.Request().Context(), w)
	if err != nil {
		return reportErr(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) StaffProductivity(c echo.Context) error {
	w, err := window(c)
	if err != nil {
		return err
	}
	report, err := h.svc.StaffProductivity(c.Request().Context(), w)
	if err != nil {
		return reportErr(err)
	}
	return c.JSON(http.StatusOK, report)
}
