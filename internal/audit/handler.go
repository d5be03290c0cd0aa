package audit

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/transport"
	"github.com/medikacare/terapis-management/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(service *Service) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := internal.PageParams(r.URL.Query())
	query := r.URL.Query()

	filters := Filters{
		TableName: query.Get("table_name"),
		Action:    query.Get("action"),
		UserID:    query.Get("user_id"),
	}

	if startStr := query.Get("start_date"); startStr != "" {
		if t, err := time.Parse("2006-01-02", startStr); err == nil {
			filters.StartDate = &t
		}
	}
	if endStr := query.Get("end_date"); endStr != "" {
		if t, err := time.Parse("2006-01-02", endStr); err == nil {
			// inclusive end of day
			end := t.Add(24*time.Hour - time.Nanosecond)
			filters.EndDate = &end
		}
	}

	entries, total, err := h.Service.List(filters, page, limit)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteList(w, "logs", entries, internal.NewPagination(page, limit, total))
}

func (h *Handler) RecordHistory(w http.ResponseWriter, r *http.Request) {
	tableName := chi.URLParam(r, "table")
	recordID := chi.URLParam(r, "id")

	entries, err := h.Service.RecordHistory(tableName, recordID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, entries)
}

func (h *Handler) Actions(w http.ResponseWriter, r *http.Request) {
	actions, err := h.Service.Actions()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, actions)
}
