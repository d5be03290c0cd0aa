package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers.
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.L()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// Response is the uniform API envelope.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// WriteJSON writes a raw JSON response.
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteSuccess wraps data in the success envelope.
func (h *BaseHandler) WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	h.WriteJSON(w, status, Response{Success: true, Data: data})
}

// WriteMessage writes a success envelope carrying only a message.
func (h *BaseHandler) WriteMessage(w http.ResponseWriter, status int, message string) {
	h.WriteJSON(w, status, Response{Success: true, Message: message})
}

// WriteList writes a paginated list response. The items appear under the
// given key alongside the pagination block, e.g.
// {"success":true,"terapis":[...],"pagination":{...}}.
func (h *BaseHandler) WriteList(w http.ResponseWriter, key string, items interface{}, pagination internal.Pagination) {
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		key:          items,
		"pagination": pagination,
	})
}

// WriteError writes a plain error response.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	h.WriteJSON(w, status, Response{
		Success: false,
		Error: map[string]interface{}{
			"code":    status,
			"message": message,
		},
	})
}

// HandleServiceError maps service-layer errors onto the envelope, preserving
// AppError status codes and validation detail arrays.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.Logger.Error("service error", "type", appErr.Type, "code", appErr.Code, "message", appErr.Message)
		h.WriteJSON(w, appErr.StatusCode, Response{Success: false, Error: appErr})
		return
	}
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
