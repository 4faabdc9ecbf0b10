package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/obracontrol/asistencia-backend-go/internal/handler/http/response"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	DailySnapshot(w http.ResponseWriter, r *http.Request)
	RangeSummary(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// DailySnapshot implements AttendanceHandler. The date query parameter
// defaults to the current day.
func (h *attendanceHandlerImpl) DailySnapshot(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")

	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "date must be a valid YYYY-MM-DD date", nil)
			return
		}
		date = parsed
	}

	rows, err := h.attendanceService.DailySnapshot(r.Context(), siteID, date)
	if err != nil {
		slog.Error("Daily snapshot service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// RangeSummary implements AttendanceHandler. Both from and to are required.
func (h *attendanceHandlerImpl) RangeSummary(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")

	fromRaw := r.URL.Query().Get("from")
	toRaw := r.URL.Query().Get("to")
	if fromRaw == "" || toRaw == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	from, ok := validator.IsValidDate(fromRaw)
	if !ok {
		response.BadRequest(w, "from must be a valid YYYY-MM-DD date", nil)
		return
	}
	to, ok := validator.IsValidDate(toRaw)
	if !ok {
		response.BadRequest(w, "to must be a valid YYYY-MM-DD date", nil)
		return
	}

	rows, err := h.attendanceService.RangeSummary(r.Context(), siteID, from, to)
	if err != nil {
		slog.Error("Range summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")

	rows, err := h.attendanceService.History(r.Context(), siteID)
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Submit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")

	var req attendance.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Submit(r.Context(), siteID, req)
	if err != nil {
		slog.Error("Submit attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", result)
}
