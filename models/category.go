package models

// FoodCategory is a global classification for logged foods. Categories
// flagged as common triggers are surfaced to help correlate diet with
// migraine onset. The catalog is seeded at startup and never user-owned.
type FoodCategory struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"uniqueIndex;not null" json:"name"`
	IsCommonTrigger bool   `json:"is_common_trigger"`
}

func (FoodCategory) TableName() string {
	return "food_categories"
}
