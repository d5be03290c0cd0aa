package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/medikacare/terapis-management/internal/audit"
)

func TestRest(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "REST Router Suite")
}

type noopAuditRepo struct{}

func (noopAuditRepo) Create(entry *audit.Entry) error { return nil }
func (noopAuditRepo) GetAll(filters audit.Filters, limit, offset int) ([]*audit.Entry, int64, error) {
	return nil, 0, nil
}
func (noopAuditRepo) GetByRecord(tableName, recordID string) ([]*audit.Entry, error) {
	return nil, nil
}
func (noopAuditRepo) DistinctActions() ([]string, error) { return nil, nil }

var _ = ginkgo.Describe("Route table", func() {
	var (
		routes      map[string]bool
		middlewares map[string]int
	)

	ginkgo.BeforeEach(func() {
		lg := slog.Default()
		recorder := audit.NewRecorder(audit.NewService(noopAuditRepo{}, lg), lg, "/api/v1")

		router := chi.NewRouter()
		RegisterAllRoutes(router, nil, Handlers{}, recorder, nil, lg)

		routes = map[string]bool{}
		middlewares = map[string]int{}
		err := chi.Walk(router, func(method, route string, handler http.Handler, mws ...func(http.Handler) http.Handler) error {
			key := fmt.Sprintf("%s %s", method, route)
			routes[key] = true
			middlewares[key] = len(mws)
			return nil
		})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.It("mounts every operation", func() {
		for _, key := range []string{
			"GET /api/v1/health",
			"GET /api/v1/ping",
			"POST /api/v1/auth/login",
			"GET /api/v1/auth/me",
			"POST /api/v1/auth/change-password",
			"POST /api/v1/auth/register",
			"GET /api/v1/terapis/",
			"POST /api/v1/terapis/",
			"GET /api/v1/terapis/{id}",
			"PUT /api/v1/terapis/{id}",
			"DELETE /api/v1/terapis/{id}",
			"POST /api/v1/requirement/{id}/accept",
			"DELETE /api/v1/requirement/{id}",
			"GET /api/v1/tna/terapis/{terapisId}",
			"POST /api/v1/tna/",
			"GET /api/v1/evaluasi/terapis/{terapisId}",
			"POST /api/v1/evaluasi/",
			"GET /api/v1/training/modules/",
			"PUT /api/v1/training/modules/{id}",
			"GET /api/v1/statistics",
			"GET /api/v1/users/",
			"GET /api/v1/roles/",
			"GET /api/v1/audit/",
			"GET /api/v1/audit/actions",
			"GET /api/v1/audit/record/{table}/{id}",
		} {
			gomega.Expect(routes).To(gomega.HaveKey(key), key)
		}
	})

	ginkgo.It("guards the audit trail with its own permission middleware", func() {
		gomega.Expect(middlewares["GET /api/v1/audit/"]).To(
			gomega.Equal(middlewares["GET /api/v1/terapis/"] + 1))
		gomega.Expect(middlewares["GET /api/v1/audit/actions"]).To(
			gomega.Equal(middlewares["GET /api/v1/terapis/"] + 1))
	})
})
