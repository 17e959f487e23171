package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"diettracker/middlewares"
	"diettracker/models"
	"diettracker/services"
	"diettracker/utils"
)

type FoodController struct {
	entries *services.EntryService
}

func NewFoodController(entries *services.EntryService) *FoodController {
	return &FoodController{entries: entries}
}

func (ctrl *FoodController) AddEntry(c *gin.Context) {
	var input services.EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	entry, err := ctrl.entries.Add(user, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Entry added successfully",
		"entry_id": entry.ID,
	})
}

func (ctrl *FoodController) ListEntries(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	entries, err := ctrl.entries.List(user)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entryResponse(entry))
	}
	c.JSON(http.StatusOK, out)
}

func (ctrl *FoodController) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry id"})
		return
	}

	user := middlewares.CurrentUser(c)
	if err := ctrl.entries.Delete(user, uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}

func entryResponse(entry models.FoodEntry) gin.H {
	items := make([]gin.H, 0, len(entry.Items))
	for _, item := range entry.Items {
		items = append(items, gin.H{
			"id":       item.ID,
			"name":     item.Name,
			"quantity": item.Quantity,
			"unit":     item.Unit,
			"category": gin.H{
				"id":                item.Category.ID,
				"name":              item.Category.Name,
				"is_common_trigger": item.Category.IsCommonTrigger,
			},
		})
	}
	return gin.H{
		"id":         entry.ID,
		"datetime":   utils.FormatUTC(entry.EatenAt),
		"meal_type":  entry.MealType,
		"notes":      entry.Notes,
		"food_items": items,
	}
}
