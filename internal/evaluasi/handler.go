package evaluasi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/transport"
	"github.com/medikacare/terapis-management/pkg/logger"
)

type ServiceAPI interface {
	List(search string, page, limit int) ([]*Evaluasi, int64, error)
	GetByID(id string) (*Evaluasi, error)
	GetByTerapisID(terapisID string) (*Evaluasi, error)
	Save(dto SaveEvaluasiDTO) (*Evaluasi, error)
	Delete(id string) (*Evaluasi, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
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
	search := r.URL.Query().Get("search")

	items, total, err := h.Service.List(search, page, limit)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteList(w, "evaluasi", items, internal.NewPagination(page, limit, total))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, doc)
}

func (h *Handler) GetByTerapis(w http.ResponseWriter, r *http.Request) {
	terapisID := chi.URLParam(r, "terapisId")

	doc, err := h.Service.GetByTerapisID(terapisID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, doc)
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var dto SaveEvaluasiDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.Service.Save(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, doc)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.Service.Delete(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, deleted)
}
