package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/medikacare/terapis-management/internal/audit"
	"github.com/medikacare/terapis-management/internal/auth"
	"github.com/medikacare/terapis-management/internal/evaluasi"
	"github.com/medikacare/terapis-management/internal/requirement"
	"github.com/medikacare/terapis-management/internal/role"
	"github.com/medikacare/terapis-management/internal/statistics"
	"github.com/medikacare/terapis-management/internal/terapis"
	"github.com/medikacare/terapis-management/internal/tna"
	"github.com/medikacare/terapis-management/internal/training"
	"github.com/medikacare/terapis-management/internal/transport/middleware"
	"github.com/medikacare/terapis-management/internal/transport/swagger"
	"github.com/medikacare/terapis-management/internal/user"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Auth        *auth.Handler
	Role        *role.Handler
	User        *user.Handler
	Terapis     *terapis.Handler
	Requirement *requirement.Handler
	TNA         *tna.Handler
	Evaluasi    *evaluasi.Handler
	Training    *training.Handler
	Statistics  *statistics.Handler
	Audit       *audit.Handler
}

// RegisterAllRoutes mounts the full API tree. Everything under /api/v1 except
// /health and /auth/login sits behind the authenticator; admin-only groups
// add RequireAdmin on top; mutating authenticated routes pass through the
// audit recorder.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, recorder *audit.Recorder, allowedOrigins []string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	authz := auth.NewAuthorization(logger)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec and swagger UI live outside the API prefix.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)
			pr.Use(recorder.Middleware)

			pr.Get("/auth/me", h.Auth.Me)
			pr.Post("/auth/change-password", h.Auth.ChangePassword)

			pr.Route("/terapis", func(tr chi.Router) {
				tr.Get("/", h.Terapis.List)
				tr.Post("/", h.Terapis.Create)
				tr.Get("/{id}", h.Terapis.Get)
				tr.Put("/{id}", h.Terapis.Update)
				tr.Delete("/{id}", h.Terapis.Delete)
			})

			pr.Route("/requirement", func(rr chi.Router) {
				rr.Get("/", h.Requirement.List)
				rr.Post("/", h.Requirement.Create)
				rr.Get("/{id}", h.Requirement.Get)
				rr.Put("/{id}", h.Requirement.Update)
				rr.Post("/{id}/accept", h.Requirement.Accept)
				rr.Delete("/{id}", h.Requirement.Reject)
			})

			pr.Route("/tna", func(tr chi.Router) {
				tr.Get("/", h.TNA.List)
				tr.Post("/", h.TNA.Save)
				tr.Get("/{id}", h.TNA.Get)
				tr.Get("/terapis/{terapisId}", h.TNA.GetByTerapis)
				tr.Delete("/{id}", h.TNA.Delete)
			})

			pr.Route("/evaluasi", func(er chi.Router) {
				er.Get("/", h.Evaluasi.List)
				er.Post("/", h.Evaluasi.Save)
				er.Get("/{id}", h.Evaluasi.Get)
				er.Get("/terapis/{terapisId}", h.Evaluasi.GetByTerapis)
				er.Delete("/{id}", h.Evaluasi.Delete)
			})

			pr.Route("/training/modules", func(mr chi.Router) {
				mr.Get("/", h.Training.List)
				mr.Post("/", h.Training.Create)
				mr.Get("/{id}", h.Training.Get)
				mr.Put("/{id}", h.Training.Update)
				mr.Delete("/{id}", h.Training.Delete)
			})

			pr.Get("/statistics", h.Statistics.Get)

			// Admin-only surface.
			pr.Group(func(ar chi.Router) {
				ar.Use(authz.RequireAdmin())

				ar.Post("/auth/register", h.Auth.Register)

				ar.Route("/users", func(ur chi.Router) {
					ur.Get("/", h.User.List)
					ur.Get("/{id}", h.User.Get)
					ur.Put("/{id}", h.User.Update)
					ur.Delete("/{id}", h.User.Delete)
				})

				ar.Route("/roles", func(rr chi.Router) {
					rr.Get("/", h.Role.List)
					rr.Post("/", h.Role.Create)
					rr.Get("/{id}", h.Role.Get)
					rr.Put("/{id}", h.Role.Update)
					rr.Delete("/{id}", h.Role.Delete)
				})

			})

			// Audit trail: admins always pass, other roles need the
			// "audit" permission granted explicitly.
			pr.Route("/audit", func(alr chi.Router) {
				alr.Use(authz.RequirePermission("audit"))

				alr.Get("/", h.Audit.List)
				alr.Get("/actions", h.Audit.Actions)
				alr.Get("/record/{table}/{id}", h.Audit.RecordHistory)
			})
		})
	})
}
