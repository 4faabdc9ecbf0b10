package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/stats"
	"github.com/obracontrol/asistencia-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	EmployeeStats(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{
		statsService: statsService,
	}
}

// EmployeeStats implements StatsHandler. period_type, year and month come
// from the query string; half only applies to half periods. Numeric parse
// failures are left as zero values so ResolvePeriod reports them all in one
// validation response.
func (h *statsHandlerImpl) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	query := r.URL.Query()

	year, _ := strconv.Atoi(query.Get("year"))
	month, _ := strconv.Atoi(query.Get("month"))
	half, _ := strconv.Atoi(query.Get("half"))

	req := stats.EmployeeStatsRequest{
		EmployeeID: employeeID,
		PeriodType: stats.PeriodType(query.Get("period_type")),
		Year:       year,
		Month:      time.Month(month),
		Half:       half,
	}

	result, err := h.statsService.EmployeeStats(r.Context(), req)
	if err != nil {
		slog.Error("Employee stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
