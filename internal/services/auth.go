package services

import (
	"errors"
	"fmt"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/auth"
	"marseille-immobilier/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Hash of an arbitrary string, compared against when the username does not
// exist so that lookup misses cost the same as a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService checks admin credentials. Session handling stays at the HTTP
// layer; this service only maps credentials to an identity.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Login returns the caller identity for valid credentials. Bad username
// and bad password produce the same error.
func (s *AuthService) Login(username, password string) (auth.Identity, error) {
	if username == "" || password == "" {
		return auth.Identity{}, fmt.Errorf("%w: missing credentials", apperr.ErrValidation)
	}

	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// burn a comparison anyway
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return auth.Identity{}, apperr.ErrUnauthenticated
		}
		return auth.Identity{}, fmt.Errorf("%w: lookup user: %v", apperr.ErrStorage, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return auth.Identity{}, apperr.ErrUnauthenticated
	}

	return auth.Identity{UserID: user.ID, Username: user.Username}, nil
}

// ChangePassword updates the caller's own password after re-checking the
// current one.
func (s *AuthService) ChangePassword(identity auth.Identity, current, newPassword, confirm string) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	if current == "" || newPassword == "" || confirm == "" {
		return fmt.Errorf("%w: all fields are required", apperr.ErrValidation)
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: new password must be at least 6 characters", apperr.ErrValidation)
	}
	if newPassword != confirm {
		return fmt.Errorf("%w: passwords do not match", apperr.ErrValidation)
	}

	var user models.User
	if err := s.db.First(&user, identity.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", apperr.ErrNotFound, identity.UserID)
		}
		return fmt.Errorf("%w: lookup user: %v", apperr.ErrStorage, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return apperr.ErrUnauthenticated
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: hash password: %v", apperr.ErrStorage, err)
	}

	if err := s.db.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		return fmt.Errorf("%w: update password: %v", apperr.ErrStorage, err)
	}
	return nil
}
