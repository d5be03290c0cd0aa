package audit

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/medikacare/terapis-management/internal/auth"
)

func TestAudit(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Audit Module Suite")
}

type mockAuditRepository struct {
	mu      sync.Mutex
	entries []*Entry
	failing bool
}

func (m *mockAuditRepository) Create(entry *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errFailing
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditRepository) GetAll(filters Filters, limit, offset int) ([]*Entry, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries, int64(len(m.entries)), nil
}

func (m *mockAuditRepository) GetByRecord(tableName, recordID string) ([]*Entry, error) {
	return nil, nil
}

func (m *mockAuditRepository) DistinctActions() ([]string, error) {
	return []string{"CREATE"}, nil
}

func (m *mockAuditRepository) all() []*Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

var errFailing = errors.New("storage down")

var _ = ginkgo.Describe("Recorder middleware", func() {
	var (
		repo     *mockAuditRepository
		recorder *Recorder
		router   *chi.Mux
	)

	actor := &auth.User{ID: "user-1", Username: "admin", RoleName: "admin"}

	withUser := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), actor)))
		})
	}

	respond := func(status int, body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}
	}

	ginkgo.BeforeEach(func() {
		repo = &mockAuditRepository{}
		recorder = NewRecorder(NewService(repo, slog.Default()), slog.Default(), "/api/v1")
		router = chi.NewRouter()
		router.Use(withUser)
		router.Use(recorder.Middleware)
	})

	waitForEntries := func(n int) []*Entry {
		gomega.Eventually(func() int {
			return len(repo.all())
		}, time.Second, 5*time.Millisecond).Should(gomega.Equal(n))
		return repo.all()
	}

	ginkgo.It("records a CREATE with the id from the response data", func() {
		router.Post("/api/v1/terapis", respond(http.StatusCreated, `{"success":true,"data":{"id":"t-9","nama":"Sari"}}`))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/terapis", strings.NewReader(`{"nama":"Sari"}`)))

		entries := waitForEntries(1)
		gomega.Expect(entries[0].Table).To(gomega.Equal("terapis"))
		gomega.Expect(entries[0].RecordID).To(gomega.Equal("t-9"))
		gomega.Expect(entries[0].Action).To(gomega.Equal(ActionCreate))
		gomega.Expect(entries[0].Username).To(gomega.Equal("admin"))
		gomega.Expect(string(entries[0].NewData)).To(gomega.ContainSubstring("Sari"))
		gomega.Expect(entries[0].OldData).To(gomega.BeNil())
	})

	ginkgo.It("stores the DELETE echo as the old snapshot", func() {
		router.Delete("/api/v1/terapis/{id}", respond(http.StatusOK, `{"success":true,"data":{"id":"t-9","nama":"Sari"}}`))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/terapis/t-9", nil))

		entries := waitForEntries(1)
		gomega.Expect(entries[0].Action).To(gomega.Equal(ActionDelete))
		gomega.Expect(entries[0].OldData).NotTo(gomega.BeNil())
		gomega.Expect(entries[0].NewData).To(gomega.BeNil())
	})

	ginkgo.It("falls back to the URL parameter when the response has no data id", func() {
		router.Put("/api/v1/roles/{id}", respond(http.StatusOK, `{"success":true,"message":"updated"}`))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/roles/r-3", strings.NewReader(`{"description":"x"}`)))

		entries := waitForEntries(1)
		gomega.Expect(entries[0].Table).To(gomega.Equal("roles"))
		gomega.Expect(entries[0].RecordID).To(gomega.Equal("r-3"))
		gomega.Expect(entries[0].Action).To(gomega.Equal(ActionUpdate))
	})

	ginkgo.It("falls back to the request body id last", func() {
		router.Post("/api/v1/tna", respond(http.StatusOK, `{"success":true}`))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tna", strings.NewReader(`{"id":"doc-7"}`)))

		entries := waitForEntries(1)
		gomega.Expect(entries[0].RecordID).To(gomega.Equal("doc-7"))
	})

	ginkgo.It("ignores reads", func() {
		router.Get("/api/v1/terapis", respond(http.StatusOK, `{"success":true,"data":{"id":"t-9"}}`))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/terapis", nil))

		gomega.Consistently(func() int {
			return len(repo.all())
		}, 50*time.Millisecond, 5*time.Millisecond).Should(gomega.BeZero())
	})

	ginkgo.It("ignores failed requests", func() {
		router.Post("/api/v1/terapis", respond(http.StatusBadRequest, `{"success":false,"error":"nope"}`))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/terapis", strings.NewReader(`{"id":"x"}`)))

		gomega.Consistently(func() int {
			return len(repo.all())
		}, 50*time.Millisecond, 5*time.Millisecond).Should(gomega.BeZero())
	})

	ginkgo.It("ignores unauthenticated mutations", func() {
		bare := chi.NewRouter()
		bare.Use(recorder.Middleware)
		bare.Post("/api/v1/terapis", respond(http.StatusCreated, `{"success":true,"data":{"id":"t-9"}}`))

		rec := httptest.NewRecorder()
		bare.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/terapis", nil))

		gomega.Consistently(func() int {
			return len(repo.all())
		}, 50*time.Millisecond, 5*time.Millisecond).Should(gomega.BeZero())
	})

	ginkgo.It("never alters the response when persistence fails", func() {
		repo.failing = true
		router.Post("/api/v1/terapis", respond(http.StatusCreated, `{"success":true,"data":{"id":"t-9"}}`))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/terapis", nil))

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusCreated))
		gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"success":true`))
	})
})
