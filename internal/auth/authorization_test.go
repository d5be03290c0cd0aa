package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/medikacare/terapis-management/internal/role"
)

var _ = ginkgo.Describe("Authorization middleware", func() {
	var (
		authz *Authorization
		next  http.Handler
	)

	ginkgo.BeforeEach(func() {
		authz = NewAuthorization(slog.Default())
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	request := func(u *User) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/roles", nil)
		if u != nil {
			req = req.WithContext(ContextWithUser(req.Context(), u))
		}
		return req
	}

	ginkgo.Describe("RequireAdmin", func() {
		ginkgo.It("passes the literal admin role name", func() {
			rec := httptest.NewRecorder()
			authz.RequireAdmin()(next).ServeHTTP(rec, request(&User{ID: "u1", RoleName: "admin"}))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("rejects any other role even with an all grant", func() {
			rec := httptest.NewRecorder()
			user := &User{ID: "u2", RoleName: "supervisor", Permissions: role.PermissionMap{"all": true}}
			authz.RequireAdmin()(next).ServeHTTP(rec, request(user))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
		})

		ginkgo.It("rejects a case variant of admin", func() {
			rec := httptest.NewRecorder()
			authz.RequireAdmin()(next).ServeHTTP(rec, request(&User{ID: "u3", RoleName: "Admin"}))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
		})

		ginkgo.It("returns 401 without an authenticated user", func() {
			rec := httptest.NewRecorder()
			authz.RequireAdmin()(next).ServeHTTP(rec, request(nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Describe("RequirePermission", func() {
		ginkgo.It("passes an explicit grant", func() {
			rec := httptest.NewRecorder()
			user := &User{ID: "u4", RoleName: "staff", Permissions: role.PermissionMap{"terapis": true}}
			authz.RequirePermission("terapis")(next).ServeHTTP(rec, request(user))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("passes an all grant", func() {
			rec := httptest.NewRecorder()
			user := &User{ID: "u5", RoleName: "staff", Permissions: role.PermissionMap{"all": true}}
			authz.RequirePermission("roles")(next).ServeHTTP(rec, request(user))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("names the missing permission in the 403 body", func() {
			rec := httptest.NewRecorder()
			user := &User{ID: "u6", RoleName: "staff", Permissions: role.PermissionMap{}}
			authz.RequirePermission("audit")(next).ServeHTTP(rec, request(user))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("missing permission: audit"))
		})
	})
})
