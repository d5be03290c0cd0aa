package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/medikacare/terapis-management/internal/role"
)

// User is the identity resolved by the authenticator and attached to the
// request context for downstream handlers.
type User struct {
	ID          string             `json:"id"`
	Username    string             `json:"username"`
	Email       string             `json:"email,omitempty"`
	FullName    string             `json:"fullName,omitempty"`
	RoleID      string             `json:"roleId"`
	RoleName    string             `json:"roleName"`
	Permissions role.PermissionMap `json:"permissions"`
	IsSystem    bool               `json:"isSystem"`
}

// IsAdmin reports whether the resolved role is the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.RoleName == role.AdminRoleName
}

// HasPermission checks the permission map, with admin bypassing the map.
func (u *User) HasPermission(name string) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	return u.Permissions.Has(name)
}

// Claims represents JWT token claims.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates bearer tokens.
type TokenGenerator interface {
	GenerateToken(userID string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserInactive       = errors.New("user is inactive")
)

// JWTTokenGenerator signs stateless HS256 tokens. Revocation is only by the
// user becoming inactive or the secret changing.
type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

// NewJWTTokenGenerator creates a token generator with the given secret and TTL.
func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

// GenerateToken mints a signed token embedding the user id and expiry.
func (j *JWTTokenGenerator) GenerateToken(userID string) (string, error) {
	expiresAt := time.Now().Add(j.TokenTTL)

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.Secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken checks signature and expiry. Every failure mode collapses to
// ErrInvalidToken so callers leak nothing about which check rejected it.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

type ctxKey string

const ContextUserKey ctxKey = "user"

// UserFromContext returns the authenticated user attached by AuthMiddleware.
func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

// ContextWithUser attaches a resolved user to the context.
func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}
