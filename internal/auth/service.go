package auth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/medikacare/terapis-management/internal"
)

// UserRepository is the credential store the auth service reads and writes.
// Lookups only ever return active users; soft-deleted users behave exactly
// like nonexistent ones.
type UserRepository interface {
	GetCredentials(username string) (userID, passwordHash string, err error)
	GetPasswordHash(userID string) (string, error)
	GetUserWithRole(userID string) (*User, error)
	UsernameExists(username string) (bool, error)
	CreateUser(dto RegisterDTO, passwordHash, createdBy string) (*User, error)
	UpdatePassword(userID, passwordHash string) error
	UpdateLastLogin(userID string) error
}

// Service performs authentication-related business logic.
type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
	logger         *slog.Logger
}

// NewService creates a new auth service.
func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Login validates credentials and returns a token with the resolved user.
func (s *Service) Login(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	userID, storedHash, err := s.userRepo.GetCredentials(dto.Username)
	if err != nil {
		s.logger.Warn("login failed: user lookup", "username", dto.Username)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch", "username", dto.Username)
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserWithRole(userID)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.GenerateToken(userID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate token", err)
	}

	if err := s.userRepo.UpdateLastLogin(userID); err != nil {
		// Login still succeeds; the timestamp is best-effort.
		s.logger.Warn("failed to update last login", "user_id", userID, "error", err)
	}

	s.logger.Info("login successful", "user_id", userID, "username", user.Username)

	return &LoginResponse{Token: token, User: user}, nil
}

// Register creates a new user account. Route-level guards restrict this to
// administrators.
func (s *Service) Register(dto RegisterDTO, actorID string) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.UsernameExists(dto.Username)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to check username", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user, err := s.userRepo.CreateUser(dto, string(hash), actorID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username, "created_by", actorID)

	return user, nil
}

// GetCurrentUser resolves a user id to its full identity bundle.
func (s *Service) GetCurrentUser(userID string) (*User, error) {
	user, err := s.userRepo.GetUserWithRole(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// ChangePassword verifies the old password before storing the new hash.
func (s *Service) ChangePassword(userID string, dto ChangePasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	storedHash, err := s.userRepo.GetPasswordHash(userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.OldPassword)); err != nil {
		return apperrors.NewValidationFieldError("oldPassword", "old password is incorrect", apperrors.ErrCodeInvalidCredentials)
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError("failed to hash password", err)
	}

	if err := s.userRepo.UpdatePassword(userID, string(newHash)); err != nil {
		return apperrors.NewInternalError("failed to update password", err)
	}

	s.logger.Info("password changed", "user_id", userID)

	return nil
}

// ValidateAccessToken validates a token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// ResolveUser loads the fresh user+role bundle for a verified token subject.
// This runs on every protected request so permission changes take effect
// immediately.
func (s *Service) ResolveUser(userID string) (*User, error) {
	return s.userRepo.GetUserWithRole(userID)
}

// HashPassword creates a bcrypt hash of the password.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
