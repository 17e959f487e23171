package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diettracker/services"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// List returns the global catalog. No authentication required.
func (ctrl *CategoryController) List(c *gin.Context) {
	categories, err := ctrl.categories.List()
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		out = append(out, gin.H{
			"id":         cat.ID,
			"name":       cat.Name,
			"is_trigger": cat.IsCommonTrigger,
		})
	}
	c.JSON(http.StatusOK, out)
}
