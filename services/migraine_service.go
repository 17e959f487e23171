package services

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"diettracker/apperrors"
	"diettracker/models"
	"diettracker/utils"
)

// MigraineInput is a new episode to log. StartTime and EndTime are
// ISO-8601-like strings; EndTime is optional.
type MigraineInput struct {
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Intensity  int      `json:"intensity"`
	Symptoms   []string `json:"symptoms"`
	Triggers   []string `json:"triggers"`
	Medication string   `json:"medication"`
	Notes      string   `json:"notes"`
}

// MigraineService is the tracking store for migraine episodes, scoped to
// the owning user.
type MigraineService struct {
	db *gorm.DB
}

func NewMigraineService(db *gorm.DB) *MigraineService {
	return &MigraineService{db: db}
}

// Add validates and persists one episode. Symptom and trigger lists
// round-trip in order through List.
func (s *MigraineService) Add(user *models.User, in MigraineInput) (*models.Migraine, error) {
	if in.Intensity < 1 || in.Intensity > 10 {
		return nil, apperrors.Validationf("intensity must be between 1 and 10")
	}

	start, err := utils.ParseTimestamp(in.StartTime)
	if err != nil {
		return nil, apperrors.Validationf("invalid start_time: %v", err)
	}

	var end *time.Time
	if in.EndTime != "" {
		t, err := utils.ParseTimestamp(in.EndTime)
		if err != nil {
			return nil, apperrors.Validationf("invalid end_time: %v", err)
		}
		if t.Before(start) {
			return nil, apperrors.Validationf("end_time must not precede start_time")
		}
		end = &t
	}

	migraine := &models.Migraine{
		UserID:     user.ID,
		StartTime:  start,
		EndTime:    end,
		Intensity:  in.Intensity,
		Medication: in.Medication,
		Notes:      in.Notes,
	}
	if err := migraine.SetSymptoms(in.Symptoms); err != nil {
		return nil, apperrors.Validationf("invalid symptoms: %v", err)
	}
	if err := migraine.SetTriggers(in.Triggers); err != nil {
		return nil, apperrors.Validationf("invalid triggers: %v", err)
	}

	if err := s.db.Create(migraine).Error; err != nil {
		logrus.WithError(err).Error("failed to create migraine")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "migraine_id": migraine.ID}).Info("migraine added")
	return migraine, nil
}

// List returns the user's episodes, newest start time first.
func (s *MigraineService) List(user *models.User) ([]models.Migraine, error) {
	var migraines []models.Migraine
	err := s.db.
		Where("user_id = ?", user.ID).
		Order("start_time DESC").
		Find(&migraines).Error
	if err != nil {
		logrus.WithError(err).Error("failed to list migraines")
		return nil, err
	}
	return migraines, nil
}

// Delete removes one of the user's episodes. Existence and ownership are
// checked together: a migraine that is missing or belongs to someone
// else is the same ErrNotFound, so the caller gets no existence oracle.
func (s *MigraineService) Delete(user *models.User, migraineID uint) error {
	var migraine models.Migraine
	err := s.db.Where("id = ? AND user_id = ?", migraineID, user.ID).First(&migraine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	if err := s.db.Delete(&migraine).Error; err != nil {
		logrus.WithError(err).Error("failed to delete migraine")
		return err
	}
	return nil
}
