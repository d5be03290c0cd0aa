package audit

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"

	"github.com/medikacare/terapis-management/internal/auth"
)

// Recorder is the post-handler hook creating audit entries for mutating
// requests. It wraps the response writer instead of patching the response
// send path, inspects the final payload, and fires the write asynchronously
// so audit persistence can never alter the original response.
type Recorder struct {
	service *Service
	logger  *slog.Logger
	prefix  string
}

func NewRecorder(service *Service, logger *slog.Logger, apiPrefix string) *Recorder {
	return &Recorder{
		service: service,
		logger:  logger,
		prefix:  strings.TrimSuffix(apiPrefix, "/") + "/",
	}
}

// Middleware captures the request body and response payload around the
// handler and records an entry when the request mutated something.
func (rec *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		action, mutating := ActionForMethod(r.Method)
		if !mutating {
			next.ServeHTTP(w, r)
			return
		}

		var requestBody []byte
		if r.Body != nil {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		cw := &captureWriter{ResponseWriter: w, body: &bytes.Buffer{}}
		next.ServeHTTP(cw, r)

		status := cw.statusCode
		if status == 0 {
			status = http.StatusOK
		}
		if status < 200 || status >= 300 {
			return
		}

		user, ok := auth.UserFromContext(r.Context())
		if !ok || user == nil {
			return
		}

		tableName := rec.tableFromPath(r.URL.Path)
		if tableName == "" {
			return
		}

		payload := parseEnvelope(cw.body.Bytes())
		recordID := rec.deriveRecordID(r, payload, requestBody)
		if recordID == "" {
			return
		}

		entry := &Entry{
			Table:     tableName,
			RecordID:  recordID,
			Action:    action,
			UserID:    user.ID,
			Username:  user.Username,
			IPAddress: clientIP(r),
			UserAgent: r.UserAgent(),
		}

		if data, err := json.Marshal(payload.Data); err == nil && payload.Data != nil {
			// DELETE responses echo the removed row, which is the only
			// pre-image the automatic path ever sees.
			if action == ActionDelete {
				entry.OldData = data
			} else {
				entry.NewData = data
			}
		}

		go func() {
			defer func() {
				if p := recover(); p != nil {
					rec.logger.Error("audit recorder panic", "panic", p)
				}
			}()
			rec.service.Record(entry)
		}()
	})
}

// tableFromPath takes the path segment following the API prefix.
func (rec *Recorder) tableFromPath(path string) string {
	if !strings.HasPrefix(path, rec.prefix) {
		return ""
	}
	rest := strings.TrimPrefix(path, rec.prefix)
	if idx := strings.Index(rest, "/"); idx >= 0 {
		rest = rest[:idx]
	}
	return rest
}

type envelope struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
}

func parseEnvelope(body []byte) envelope {
	var env envelope
	if len(body) > 0 {
		_ = json.Unmarshal(body, &env)
	}
	return env
}

// deriveRecordID prefers the response data id, then the URL parameter, then
// the request body id.
func (rec *Recorder) deriveRecordID(r *http.Request, payload envelope, requestBody []byte) string {
	if payload.Data != nil {
		if id, ok := payload.Data["id"].(string); ok && id != "" {
			return id
		}
	}

	if id := chi.URLParam(r, "id"); id != "" {
		return id
	}

	if len(requestBody) > 0 {
		var body map[string]interface{}
		if err := json.Unmarshal(requestBody, &body); err == nil {
			if id, ok := body["id"].(string); ok && id != "" {
				return id
			}
		}
	}

	return ""
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.Index(fwd, ","); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return fwd
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx >= 0 {
		host = host[:idx]
	}
	return host
}

// captureWriter wraps http.ResponseWriter to capture status and body for the
// recorder.
type captureWriter struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.body.Write(b)
	return cw.ResponseWriter.Write(b)
}
