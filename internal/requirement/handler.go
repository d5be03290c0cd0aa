package requirement

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/audit"
	"github.com/medikacare/terapis-management/internal/auth"
	"github.com/medikacare/terapis-management/internal/terapis"
	"github.com/medikacare/terapis-management/internal/transport"
	"github.com/medikacare/terapis-management/pkg/logger"
)

type ServiceAPI interface {
	List(search string, page, limit int) ([]*Requirement, int64, error)
	GetByID(id string) (*Requirement, error)
	Create(dto CreateRequirementDTO) (*Requirement, error)
	Update(id string, dto UpdateRequirementDTO) (*Requirement, error)
	Accept(id string, dto AcceptRequirementDTO) (*terapis.Terapis, *Requirement, error)
	Reject(id string) (*Requirement, error)
}

// Auditor records the requisition pre-image on accept. The automatic audit
// path only sees the response body, which carries the created therapist, not
// the requisition it consumed.
type Auditor interface {
	Log(tableName, recordID string, action audit.Action, userID, username string, oldData, newData interface{}, ip, userAgent string)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Auditor Auditor
}

func NewHandler(service ServiceAPI, auditor Auditor) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
		Auditor:     auditor,
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

	h.WriteList(w, "requirements", items, internal.NewPagination(page, limit, total))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, req)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateRequirementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, req)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateRequirementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, req)
}

// Accept tolerates an empty body: every hire detail is optional.
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto AcceptRequirementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil && err != io.EOF {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, consumed, err := h.Service.Accept(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if h.Auditor != nil {
		if u, ok := auth.UserFromContext(r.Context()); ok && u != nil {
			h.Auditor.Log("requirements", id, audit.ActionDelete, u.ID, u.Username, consumed, nil, r.RemoteAddr, r.UserAgent())
		}
	}

	h.WriteSuccess(w, http.StatusCreated, t)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rejected, err := h.Service.Reject(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, rejected)
}
