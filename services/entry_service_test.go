package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diettracker/apperrors"
	"diettracker/models"
	"diettracker/services"
)

func TestAddEntryWithItems(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db)
	user := registerUser(t, db, "ann@example.com", "pw", "Ann")
	entries := services.NewEntryService(db)

	entry, err := entries.Add(user, services.EntryInput{
		Date:     "2024-01-01",
		Time:     "08:30",
		MealType: "breakfast",
		Notes:    "first coffee of the day",
		Items: []services.EntryItemInput{
			{CategoryID: cats["Coffee"].ID, Name: "espresso", Quantity: 1, Unit: "cup"},
			{CategoryID: cats["Fruits"].ID, Quantity: 2, Unit: "pieces"},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC), entry.EatenAt)
	assert.Len(t, entry.Items, 2)
}

func TestAddEntryDefaultsToMidnight(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db)
	user := registerUser(t, db, "ann@example.com", "pw", "Ann")
	entries := services.NewEntryService(db)

	entry, err := entries.Add(user, services.EntryInput{
		Date:     "2024-01-01",
		MealType: "dinner",
		Items: []services.EntryItemInput{
			{CategoryID: cats["Meats"].ID, Quantity: 150, Unit: "g"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), entry.EatenAt)
}

func TestAddEntryUnknownCategoryRollsBack(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db)
	user := registerUser(t, db, "ann@example.com", "pw", "Ann")
	entries := services.NewEntryService(db)

	_, err := entries.Add(user, services.EntryInput{
		Date:     "2024-01-01",
		MealType: "lunch",
		Items: []services.EntryItemInput{
			{CategoryID: cats["Coffee"].ID, Quantity: 1, Unit: "cup"},
			{CategoryID: 9999, Quantity: 1, Unit: "cup"},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Nothing persisted: no half-written entry, no orphan items.
	var entryCount, itemCount int64
	require.NoError(t, db.Model(&models.FoodEntry{}).Count(&entryCount).Error)
	require.NoError(t, db.Model(&models.FoodItem{}).Count(&itemCount).Error)
	assert.Zero(t, entryCount)
	assert.Zero(t, itemCount)
}

func TestAddEntryValidation(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db)
	user := registerUser(t, db, "ann@example.com", "pw", "Ann")
	entries := services.NewEntryService(db)

	cases := []struct {
		name  string
		input services.EntryInput
	}{
		{"missing meal type", services.EntryInput{
			Date:  "2024-01-01",
			Items: []services.EntryItemInput{{CategoryID: cats["Tea"].ID, Quantity: 1, Unit: "cup"}},
		}},
		{"no items", services.EntryInput{
			Date: "2024-01-01", MealType: "lunch",
		}},
		{"bad date", services.EntryInput{
			Date: "01/01/2024", MealType: "lunch",
			Items: []services.EntryItemInput{{CategoryID: cats["Tea"].ID, Quantity: 1, Unit: "cup"}},
		}},
		{"negative quantity", services.EntryInput{
			Date: "2024-01-01", MealType: "lunch",
			Items: []services.EntryItemInput{{CategoryID: cats["Tea"].ID, Quantity: -1, Unit: "cup"}},
		}},
		{"missing unit", services.EntryInput{
			Date: "2024-01-01", MealType: "lunch",
			Items: []services.EntryItemInput{{CategoryID: cats["Tea"].ID, Quantity: 1}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entries.Add(user, tc.input)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestListEntriesNewestFirstAndOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db)
	ann := registerUser(t, db, "ann@example.com", "pw", "Ann")
	bob := registerUser(t, db, "bob@example.com", "pw", "Bob")
	entries := services.NewEntryService(db)

	item := []services.EntryItemInput{{CategoryID: cats["Snacks"].ID, Quantity: 1, Unit: "bag"}}
	_, err := entries.Add(ann, services.EntryInput{Date: "2024-01-01", MealType: "lunch", Items: item})
	require.NoError(t, err)
	_, err = entries.Add(ann, services.EntryInput{Date: "2024-03-01", MealType: "dinner", Items: item})
	require.NoError(t, err)
	_, err = entries.Add(bob, services.EntryInput{Date: "2024-02-01", MealType: "lunch", Items: item})
	require.NoError(t, err)

	got, err := entries.List(ann)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "dinner", got[0].MealType)
	assert.Equal(t, "lunch", got[1].MealType)
	assert.True(t, got[0].EatenAt.After(got[1].EatenAt))

	// Items and categories come back expanded.
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, "Snacks", got[0].Items[0].Category.Name)
}

func TestDeleteEntryCascadesToItems(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db)
	user := registerUser(t, db, "ann@example.com", "pw", "Ann")
	entries := services.NewEntryService(db)

	entry, err := entries.Add(user, services.EntryInput{
		Date: "2024-01-01", MealType: "lunch",
		Items: []services.EntryItemInput{
			{CategoryID: cats["Coffee"].ID, Quantity: 1, Unit: "cup"},
			{CategoryID: cats["Dairy"].ID, Quantity: 200, Unit: "ml"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, entries.Delete(user, entry.ID))

	var itemCount int64
	require.NoError(t, db.Model(&models.FoodItem{}).Where("entry_id = ?", entry.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	err = db.First(&models.FoodEntry{}, entry.ID).Error
	assert.Error(t, err)
}

func TestDeleteEntryDistinguishesMissingFromForeign(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db)
	ann := registerUser(t, db, "ann@example.com", "pw", "Ann")
	bob := registerUser(t, db, "bob@example.com", "pw", "Bob")
	entries := services.NewEntryService(db)

	entry, err := entries.Add(ann, services.EntryInput{
		Date: "2024-01-01", MealType: "lunch",
		Items: []services.EntryItemInput{{CategoryID: cats["Tea"].ID, Quantity: 1, Unit: "cup"}},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, entries.Delete(bob, entry.ID), apperrors.ErrForbidden)
	assert.ErrorIs(t, entries.Delete(ann, entry.ID+999), apperrors.ErrNotFound)

	// The refused delete changed nothing.
	require.NoError(t, db.First(&models.FoodEntry{}, entry.ID).Error)
}
