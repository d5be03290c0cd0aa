package terapis

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	apperrors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/audit"
	"github.com/medikacare/terapis-management/internal/auth"
)

func TestTerapis(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Terapis Module Suite")
}

type mockTerapisService struct {
	byID map[string]*Terapis
}

func (m *mockTerapisService) List(search, cabang string, page, limit int) ([]*Terapis, int64, error) {
	out := make([]*Terapis, 0, len(m.byID))
	for _, t := range m.byID {
		out = append(out, t)
	}
	return out, int64(len(out)), nil
}

func (m *mockTerapisService) GetByID(id string) (*Terapis, error) {
	if t, ok := m.byID[id]; ok {
		return t, nil
	}
	return nil, apperrors.ErrTerapisNotFound
}

func (m *mockTerapisService) Create(dto CreateTerapisDTO) (*Terapis, error) {
	return nil, nil
}

func (m *mockTerapisService) Update(id string, dto UpdateTerapisDTO) (*Terapis, error) {
	return nil, nil
}

func (m *mockTerapisService) Delete(id string) (*Terapis, error) {
	t, ok := m.byID[id]
	if !ok {
		return nil, apperrors.ErrTerapisNotFound
	}
	delete(m.byID, id)
	return t, nil
}

type capturingAuditRepo struct {
	mu      sync.Mutex
	entries []*audit.Entry
}

func (c *capturingAuditRepo) Create(entry *audit.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
	return nil
}

func (c *capturingAuditRepo) GetAll(filters audit.Filters, limit, offset int) ([]*audit.Entry, int64, error) {
	return nil, 0, nil
}

func (c *capturingAuditRepo) GetByRecord(tableName, recordID string) ([]*audit.Entry, error) {
	return nil, nil
}

func (c *capturingAuditRepo) DistinctActions() ([]string, error) {
	return nil, nil
}

func (c *capturingAuditRepo) all() []*audit.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*audit.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

var _ = ginkgo.Describe("Terapis Handler", func() {
	var (
		service *mockTerapisService
		handler *Handler
	)

	ginkgo.BeforeEach(func() {
		service = &mockTerapisService{
			byID: map[string]*Terapis{
				"t-1": {ID: "t-1", Nama: "Sari Wulandari", Cabang: "Bandung"},
			},
		}
		handler = NewHandler(service)
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("echoes the removed row", func() {
			router := chi.NewRouter()
			router.Delete("/api/v1/terapis/{id}", handler.Delete)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/terapis/t-1", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			var body struct {
				Success bool     `json:"success"`
				Data    *Terapis `json:"data"`
			}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body.Success).To(gomega.BeTrue())
			gomega.Expect(body.Data).NotTo(gomega.BeNil())
			gomega.Expect(body.Data.ID).To(gomega.Equal("t-1"))
			gomega.Expect(body.Data.Nama).To(gomega.Equal("Sari Wulandari"))
		})

		ginkgo.It("leaves the removed row in the audit trail as old data", func() {
			repo := &capturingAuditRepo{}
			recorder := audit.NewRecorder(audit.NewService(repo, slog.Default()), slog.Default(), "/api/v1")

			actor := &auth.User{ID: "user-1", Username: "admin", RoleName: "admin"}
			router := chi.NewRouter()
			router.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), actor)))
				})
			})
			router.Use(recorder.Middleware)
			router.Delete("/api/v1/terapis/{id}", handler.Delete)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/terapis/t-1", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			gomega.Eventually(func() int {
				return len(repo.all())
			}, time.Second, 5*time.Millisecond).Should(gomega.Equal(1))

			entry := repo.all()[0]
			gomega.Expect(entry.Table).To(gomega.Equal("terapis"))
			gomega.Expect(entry.RecordID).To(gomega.Equal("t-1"))
			gomega.Expect(entry.Action).To(gomega.Equal(audit.ActionDelete))
			gomega.Expect(entry.OldData).NotTo(gomega.BeEmpty())
			gomega.Expect(string(entry.OldData)).To(gomega.ContainSubstring("Sari Wulandari"))
		})

		ginkgo.It("returns 404 for an unknown id", func() {
			router := chi.NewRouter()
			router.Delete("/api/v1/terapis/{id}", handler.Delete)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/terapis/missing", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
		})
	})
})
