package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"diettracker/apperrors"
	"diettracker/models"
	"diettracker/utils"
)

// AuthService is the credential store: it registers users and verifies
// email/password pairs.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register hashes the password and creates the user. The duplicate check
// and the insert run in one transaction, so a concurrent registration of
// the same email cannot leave two rows.
func (s *AuthService) Register(email, password, name string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" || name == "" {
		return nil, apperrors.Validationf("email, password and name are required")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Error("failed to hash password")
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrDuplicateEmail
		}
		return tx.Create(user).Error
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) || errors.Is(err, gorm.ErrDuplicatedKey) {
			logrus.WithField("email", email).Warn("registration rejected: email taken")
			return nil, apperrors.ErrDuplicateEmail
		}
		logrus.WithError(err).Error("failed to create user")
		return nil, err
	}

	logrus.WithField("user_id", user.ID).Info("user registered")
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies an email/password pair. Unknown email and wrong
// password return the same error, and a dummy hash comparison runs on the
// unknown-email path to keep the two timings close.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).Error("failed to look up user")
			return nil, err
		}
		utils.CheckPasswordHash(password, dummyHash)
		logrus.WithField("email", email).Warn("login failed: unknown email")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logrus.WithField("user_id", user.ID).Warn("login failed: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// FindByID resolves a user id from a validated token back to a full user
// record.
func (s *AuthService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// A valid bcrypt hash of an unguessable value, compared against on the
// unknown-email path of Authenticate.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
