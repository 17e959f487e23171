package models

import "time"

// FoodEntry is one logged meal. Items live and die with their entry:
// deleting an entry removes every child item in the same transaction.
type FoodEntry struct {
	ID       uint       `gorm:"primaryKey"`
	UserID   uint       `gorm:"index;not null"` // FK → users.id
	EatenAt  time.Time  `gorm:"index;not null"`
	MealType string     `gorm:"not null"`
	Notes    string     `gorm:"type:text"`
	Items    []FoodItem `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
}

func (FoodEntry) TableName() string {
	return "food_entries"
}

// FoodItem is one food within a meal. It references its parent entry and
// its category by id only.
type FoodItem struct {
	ID         uint         `gorm:"primaryKey"`
	EntryID    uint         `gorm:"index;not null"` // FK → food_entries.id
	CategoryID uint         `gorm:"not null"`       // FK → food_categories.id
	Name       string       // optional free text, e.g. "espresso"
	Quantity   float64      `gorm:"not null"`
	Unit       string       `gorm:"not null"`
	Category   FoodCategory `gorm:"foreignKey:CategoryID"`
}

func (FoodItem) TableName() string {
	return "food_items"
}
