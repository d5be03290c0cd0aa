package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medikacare/terapis-management/internal/auth"
	"github.com/medikacare/terapis-management/internal/role"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetCredentials(username string) (string, string, error) {
	var userID, passwordHash string
	query := `SELECT id, password_hash FROM users WHERE username = ? AND is_active = ?`

	row := r.db.Raw(query, username, true).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", auth.ErrInvalidCredentials
		}
		return "", "", err
	}
	return userID, passwordHash, nil
}

func (r *Repository) GetPasswordHash(userID string) (string, error) {
	var passwordHash string
	query := `SELECT password_hash FROM users WHERE id = ? AND is_active = ?`

	row := r.db.Raw(query, userID, true).Row()
	if err := row.Scan(&passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", auth.ErrInvalidCredentials
		}
		return "", err
	}
	return passwordHash, nil
}

// GetUserWithRole joins the user with its role so the permission state is
// always fresh. Inactive users are indistinguishable from missing ones.
func (r *Repository) GetUserWithRole(userID string) (*auth.User, error) {
	var (
		user        auth.User
		email       sql.NullString
		fullName    sql.NullString
		permissions role.PermissionMap
	)

	query := `SELECT u.id, u.username, u.email, u.full_name, u.role_id, r.name, r.permissions, r.is_system
	          FROM users u
	          JOIN roles r ON r.id = u.role_id
	          WHERE u.id = ? AND u.is_active = ?`

	row := r.db.Raw(query, userID, true).Row()
	if err := row.Scan(&user.ID, &user.Username, &email, &fullName, &user.RoleID, &user.RoleName, &permissions, &user.IsSystem); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	user.Email = email.String
	user.FullName = fullName.String
	user.Permissions = permissions
	return &user, nil
}

func (r *Repository) UsernameExists(username string) (bool, error) {
	var count int64
	if err := r.db.Raw(`SELECT COUNT(*) FROM users WHERE username = ?`, username).Row().Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateUser(dto auth.RegisterDTO, passwordHash, createdBy string) (*auth.User, error) {
	id := uuid.NewString()
	now := time.Now()

	err := r.db.Exec(
		`INSERT INTO users (id, username, password_hash, email, full_name, role_id, is_active, created_by, updated_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, dto.Username, passwordHash, nullable(dto.Email), nullable(dto.FullName), dto.RoleID, true, createdBy, createdBy, now, now,
	).Error
	if err != nil {
		return nil, err
	}

	return r.GetUserWithRole(id)
}

func (r *Repository) UpdatePassword(userID, passwordHash string) error {
	return r.db.Exec(`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`, passwordHash, time.Now(), userID).Error
}

func (r *Repository) UpdateLastLogin(userID string) error {
	now := time.Now()
	return r.db.Exec(`UPDATE users SET last_login_at = ?, updated_at = ? WHERE id = ?`, now, now, userID).Error
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
