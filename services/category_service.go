package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"diettracker/models"
)

// CategoryService serves the global food-category catalog.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// The fixed catalog seeded at startup. Trigger flags mark categories
// commonly associated with migraine onset.
var defaultCategories = []models.FoodCategory{
	{Name: "Coffee", IsCommonTrigger: true},
	{Name: "Tea", IsCommonTrigger: true},
	{Name: "Chocolate", IsCommonTrigger: true},
	{Name: "Alcohol", IsCommonTrigger: true},
	{Name: "Dairy", IsCommonTrigger: true},
	{Name: "Fruits", IsCommonTrigger: false},
	{Name: "Vegetables", IsCommonTrigger: false},
	{Name: "Meats", IsCommonTrigger: false},
	{Name: "Starches", IsCommonTrigger: false},
	{Name: "Beverages", IsCommonTrigger: false},
	{Name: "Snacks", IsCommonTrigger: false},
}

// Seed inserts any missing default categories. Safe to run on every
// startup: existing rows are left untouched.
func (s *CategoryService) Seed() error {
	for _, cat := range defaultCategories {
		var existing models.FoodCategory
		err := s.db.Where("name = ?", cat.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		record := cat
		if err := s.db.Create(&record).Error; err != nil {
			return err
		}
	}
	logrus.Info("food categories seeded")
	return nil
}

// List returns the full catalog. Public, no authentication required.
func (s *CategoryService) List() ([]models.FoodCategory, error) {
	var categories []models.FoodCategory
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
