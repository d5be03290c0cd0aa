package auth

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/medikacare/terapis-management/internal"
	"github.com/medikacare/terapis-management/internal/role"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	credentials map[string]string // username -> password hash
	userIDs     map[string]string // username -> userID
	usersByID   map[string]*User
	lastLogins  map[string]int
	created     []RegisterDTO
	failWith    error
}

func newMockUserRepository() *mockUserRepository {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)

	return &mockUserRepository{
		credentials: map[string]string{
			"admin": string(hash),
			"staff": string(hash),
		},
		userIDs: map[string]string{
			"admin": "user-1",
			"staff": "user-2",
		},
		usersByID: map[string]*User{
			"user-1": {
				ID: "user-1", Username: "admin", RoleID: "role-1", RoleName: "admin",
				Permissions: role.PermissionMap{"all": true}, IsSystem: true,
			},
			"user-2": {
				ID: "user-2", Username: "staff", RoleID: "role-2", RoleName: "staff",
				Permissions: role.PermissionMap{"terapis": true},
			},
		},
		lastLogins: map[string]int{},
	}
}

func (m *mockUserRepository) GetCredentials(username string) (string, string, error) {
	if m.failWith != nil {
		return "", "", m.failWith
	}
	if hash, ok := m.credentials[username]; ok {
		return m.userIDs[username], hash, nil
	}
	return "", "", errors.New("user not found")
}

func (m *mockUserRepository) GetPasswordHash(userID string) (string, error) {
	for username, id := range m.userIDs {
		if id == userID {
			return m.credentials[username], nil
		}
	}
	return "", errors.New("user not found")
}

func (m *mockUserRepository) GetUserWithRole(userID string) (*User, error) {
	if u, ok := m.usersByID[userID]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockUserRepository) UsernameExists(username string) (bool, error) {
	_, ok := m.credentials[username]
	return ok, nil
}

func (m *mockUserRepository) CreateUser(dto RegisterDTO, passwordHash, createdBy string) (*User, error) {
	m.created = append(m.created, dto)
	u := &User{ID: "user-new", Username: dto.Username, RoleID: dto.RoleID, RoleName: "staff"}
	m.usersByID[u.ID] = u
	m.credentials[dto.Username] = passwordHash
	m.userIDs[dto.Username] = u.ID
	return u, nil
}

func (m *mockUserRepository) UpdatePassword(userID, passwordHash string) error {
	for username, id := range m.userIDs {
		if id == userID {
			m.credentials[username] = passwordHash
			return nil
		}
	}
	return errors.New("user not found")
}

func (m *mockUserRepository) UpdateLastLogin(userID string) error {
	m.lastLogins[userID]++
	return nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
		secret   = "test-secret-0123456789"
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator(secret, time.Hour)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost, slog.Default())
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("returns a token whose subject resolves back to the same user", func() {
			resp, err := service.Login(LoginDTO{Username: "admin", Password: "admin123"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(resp.Token).NotTo(gomega.BeEmpty())
			gomega.Expect(resp.User.ID).To(gomega.Equal("user-1"))

			claims, err := service.ValidateAccessToken(resp.Token)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal("user-1"))

			me, err := service.GetCurrentUser(claims.UserID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(me.Username).To(gomega.Equal("admin"))
		})

		ginkgo.It("records the login timestamp", func() {
			_, err := service.Login(LoginDTO{Username: "admin", Password: "admin123"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(mockRepo.lastLogins["user-1"]).To(gomega.Equal(1))
		})

		ginkgo.It("rejects a wrong password with the uniform credentials error", func() {
			_, err := service.Login(LoginDTO{Username: "admin", Password: "wrong"})
			gomega.Expect(err).To(gomega.Equal(apperrors.ErrInvalidCredentials))
		})

		ginkgo.It("rejects an unknown username with the same error as a wrong password", func() {
			_, unknownErr := service.Login(LoginDTO{Username: "ghost", Password: "admin123"})
			_, wrongErr := service.Login(LoginDTO{Username: "admin", Password: "wrong"})
			gomega.Expect(unknownErr).To(gomega.Equal(wrongErr))
		})

		ginkgo.It("rejects empty credentials before touching the repository", func() {
			mockRepo.failWith = errors.New("must not be called")
			_, err := service.Login(LoginDTO{})
			appErr, ok := apperrors.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(apperrors.ErrorTypeValidation))
		})
	})

	ginkgo.Describe("Token verification", func() {
		ginkgo.It("rejects a tampered token", func() {
			token, err := tokenGen.GenerateToken("user-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			parts := strings.Split(token, ".")
			tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

			_, err = service.ValidateAccessToken(tampered)
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})

		ginkgo.It("rejects an expired token", func() {
			expiredGen := &JWTTokenGenerator{Secret: []byte(secret), TokenTTL: -time.Minute}
			token, err := expiredGen.GenerateToken("user-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})

		ginkgo.It("rejects a token signed with a different secret", func() {
			otherGen := NewJWTTokenGenerator("another-secret-altogether", time.Hour)
			token, err := otherGen.GenerateToken("user-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("creates a user with a hashed password", func() {
			u, err := service.Register(RegisterDTO{
				Username: "newbie", Password: "secret1", RoleID: "role-2",
			}, "user-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(u.Username).To(gomega.Equal("newbie"))

			stored := mockRepo.credentials["newbie"]
			gomega.Expect(stored).NotTo(gomega.Equal("secret1"))
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(stored), []byte("secret1"))).To(gomega.Succeed())
		})

		ginkgo.It("rejects a duplicate username", func() {
			_, err := service.Register(RegisterDTO{
				Username: "admin", Password: "secret1", RoleID: "role-2",
			}, "user-1")
			gomega.Expect(err).To(gomega.Equal(apperrors.ErrDuplicateUsername))
		})
	})

	ginkgo.Describe("ChangePassword", func() {
		ginkgo.It("requires the current password", func() {
			err := service.ChangePassword("user-1", ChangePasswordDTO{
				OldPassword: "wrong", NewPassword: "brandnew",
			})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("stores the new hash when the old password matches", func() {
			err := service.ChangePassword("user-1", ChangePasswordDTO{
				OldPassword: "admin123", NewPassword: "brandnew",
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			stored := mockRepo.credentials["admin"]
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(stored), []byte("brandnew"))).To(gomega.Succeed())
		})
	})

	ginkgo.Describe("User permissions", func() {
		ginkgo.It("grants the admin role everything regardless of its map", func() {
			admin := &User{RoleName: "admin"}
			gomega.Expect(admin.IsAdmin()).To(gomega.BeTrue())
			gomega.Expect(admin.HasPermission("anything")).To(gomega.BeTrue())
		})

		ginkgo.It("never treats a non-admin role name as admin", func() {
			almost := &User{RoleName: "Admin", Permissions: role.PermissionMap{"all": true}}
			gomega.Expect(almost.IsAdmin()).To(gomega.BeFalse())
			// but the all key still grants the permission itself
			gomega.Expect(almost.HasPermission("terapis")).To(gomega.BeTrue())
		})

		ginkgo.It("checks named permissions against the map", func() {
			staff := &User{RoleName: "staff", Permissions: role.PermissionMap{"terapis": true}}
			gomega.Expect(staff.HasPermission("terapis")).To(gomega.BeTrue())
			gomega.Expect(staff.HasPermission("roles")).To(gomega.BeFalse())
		})
	})
})
