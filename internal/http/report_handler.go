package http

import (
	"fmt"
	"net/http"

	"github.com/abarrotes/pos/internal/domain"
	"github.com/abarrotes/pos/internal/export"
	"github.com/abarrotes/pos/internal/report"
	"github.com/abarrotes/pos/internal/service"
)

type ReportHandler struct {
	orders   *service.OrderService
	reports  report.Provider
	exporter *export.Exporter
}

func NewReportHandler(orders *service.OrderService, reports report.Provider, exporter *export.Exporter) *ReportHandler {
	return &ReportHandler{orders: orders, reports: reports, exporter: exporter}
}

// Get opens the admin report screen (admin role only) and returns the data
// for the requested period.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = report.PeriodDay
	}

	// resolve the report before the state transition, so a rejected period
	// leaves the session on the screen it was on
	rep, err := h.reports.Report(period)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if _, err := h.orders.OpenReport(sessionID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rep)
}

// Back returns from the report screen to the cashier.
func (h *ReportHandler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	sess, err := h.orders.CloseReport(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newSessionView(sess))
}

// Export streams the report as a file download. It reads session state only
// for the role check and never mutates it.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	sess, err := h.orders.Session(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if sess.Operator.Role != domain.RoleAdmin {
		respondServiceError(w, service.ErrForbidden)
		return
	}

	format := r.URL.Query().Get("format")
	period := r.URL.Query().Get("period")
	if period == "" {
		period = report.PeriodDay
	}

	file, err := h.exporter.Export(format, period)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		// client went away mid-download, nothing to do
		return
	}
}
