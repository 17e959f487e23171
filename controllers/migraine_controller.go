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

type MigraineController struct {
	migraines *services.MigraineService
}

func NewMigraineController(migraines *services.MigraineService) *MigraineController {
	return &MigraineController{migraines: migraines}
}

func (ctrl *MigraineController) AddMigraine(c *gin.Context) {
	var input services.MigraineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	migraine, err := ctrl.migraines.Add(user, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":      "success",
		"migraine_id": migraine.ID,
	})
}

func (ctrl *MigraineController) ListMigraines(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	migraines, err := ctrl.migraines.List(user)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(migraines))
	for _, m := range migraines {
		resp, err := migraineResponse(m)
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

func (ctrl *MigraineController) DeleteMigraine(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid migraine id"})
		return
	}

	user := middlewares.CurrentUser(c)
	if err := ctrl.migraines.Delete(user, uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Migraine deleted"})
}

func migraineResponse(m models.Migraine) (gin.H, error) {
	symptoms, err := m.SymptomList()
	if err != nil {
		return nil, err
	}
	triggers, err := m.TriggerList()
	if err != nil {
		return nil, err
	}

	var endTime interface{}
	if m.EndTime != nil {
		endTime = utils.FormatUTC(*m.EndTime)
	}

	return gin.H{
		"id":         m.ID,
		"start_time": utils.FormatUTC(m.StartTime),
		"end_time":   endTime,
		"intensity":  m.Intensity,
		"symptoms":   symptoms,
		"triggers":   triggers,
		"medication": m.Medication,
		"notes":      m.Notes,
	}, nil
}
