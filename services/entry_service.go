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

// EntryItemInput is one food within a new entry.
type EntryItemInput struct {
	CategoryID uint    `json:"category_id"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

// EntryInput is a new meal to log. Date is "2006-01-02"; Time is an
// optional "15:04" clock, defaulting to midnight.
type EntryInput struct {
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	MealType string           `json:"meal_type"`
	Notes    string           `json:"notes"`
	Items    []EntryItemInput `json:"food_items"`
}

// EntryService is the tracking store for food entries and their items.
// Every operation is scoped to the owning user.
type EntryService struct {
	db *gorm.DB
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db}
}

// Add validates the input and persists the entry with all its items as
// one transaction. Nothing is written unless every item is valid.
func (s *EntryService) Add(user *models.User, in EntryInput) (*models.FoodEntry, error) {
	if strings.TrimSpace(in.MealType) == "" {
		return nil, apperrors.Validationf("meal_type is required")
	}
	if len(in.Items) == 0 {
		return nil, apperrors.Validationf("at least one food item is required")
	}

	eatenAt, err := utils.CombineDateTime(in.Date, in.Time)
	if err != nil {
		return nil, apperrors.Validationf("%v", err)
	}

	entry := &models.FoodEntry{
		UserID:   user.ID,
		EatenAt:  eatenAt,
		MealType: in.MealType,
		Notes:    in.Notes,
	}
	for _, item := range in.Items {
		if item.Quantity < 0 {
			return nil, apperrors.Validationf("quantity must be non-negative")
		}
		if strings.TrimSpace(item.Unit) == "" {
			return nil, apperrors.Validationf("unit is required")
		}
		entry.Items = append(entry.Items, models.FoodItem{
			CategoryID: item.CategoryID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range entry.Items {
			var count int64
			if err := tx.Model(&models.FoodCategory{}).Where("id = ?", item.CategoryID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return apperrors.Validationf("unknown category %d", item.CategoryID)
			}
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		logrus.WithError(err).Error("failed to create food entry")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "entry_id": entry.ID}).Info("food entry added")
	return entry, nil
}

// List returns the user's entries newest first, items and categories
// expanded.
func (s *EntryService) List(user *models.User) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.
		Preload("Items.Category").
		Where("user_id = ?", user.ID).
		Order("eaten_at DESC").
		Find(&entries).Error
	if err != nil {
		logrus.WithError(err).Error("failed to list food entries")
		return nil, err
	}
	return entries, nil
}

// Delete removes an entry and all its items atomically. A missing entry
// is ErrNotFound; an entry owned by someone else is ErrForbidden.
func (s *EntryService) Delete(user *models.User, entryID uint) error {
	var entry models.FoodEntry
	if err := s.db.First(&entry, entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if entry.UserID != user.ID {
		logrus.WithFields(logrus.Fields{"user_id": user.ID, "entry_id": entryID}).Warn("delete refused: not owner")
		return apperrors.ErrForbidden
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ?", entry.ID).Delete(&models.FoodItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entry).Error
	})
	if err != nil {
		logrus.WithError(err).Error("failed to delete food entry")
		return err
	}
	return nil
}
