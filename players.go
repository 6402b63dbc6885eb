package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

// createPlayerHandler registers a player. Omitted dues fall back to the club defaults.
func createPlayerHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Annual   *int64 `json:"annual" binding:"omitempty,gte=0"`
		Monthly  *int64 `json:"monthly" binding:"omitempty,gte=0"`
		Pitch    *int64 `json:"pitch" binding:"omitempty,gte=0"`
		MatchDay *int64 `json:"matchDay" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	player := models.Player{
		Name:        req.Name,
		Phone:       req.Phone,
		AnnualDue:   models.DefaultAnnualDue,
		MonthlyDue:  models.DefaultMonthlyDue,
		PitchDue:    models.DefaultPitchDue,
		MatchDayDue: req.MatchDay,
	}
	if req.Annual != nil {
		player.AnnualDue = *req.Annual
	}
	if req.Monthly != nil {
		player.MonthlyDue = *req.Monthly
	}
	if req.Pitch != nil {
		player.PitchDue = *req.Pitch
	}
	if err := db.Create(&player).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player"})
		return
	}
	c.JSON(http.StatusCreated, player)
}

func listPlayersHandler(c *gin.Context) {
	skip := atoiDefault(c.Query("skip"), 0)
	limit := atoiDefault(c.Query("limit"), 100)
	q := db.Model(&models.Player{}).Order("name asc").Offset(skip).Limit(limit)
	if search := c.Query("search"); search != "" {
		q = q.Where("name ILIKE ? OR phone LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	var players []models.Player
	if err := q.Find(&players).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
		return
	}
	c.JSON(http.StatusOK, players)
}

func getPlayerHandler(c *gin.Context) {
	var player models.Player
	if err := db.First(&player, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}
	c.JSON(http.StatusOK, player)
}

// updatePlayerHandler applies a partial update; absent fields are left untouched.
func updatePlayerHandler(c *gin.Context) {
	var player models.Player
	if err := db.First(&player, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}
	var req struct {
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		Annual   *int64  `json:"annual" binding:"omitempty,gte=0"`
		Monthly  *int64  `json:"monthly" binding:"omitempty,gte=0"`
		Pitch    *int64  `json:"pitch" binding:"omitempty,gte=0"`
		MatchDay *int64  `json:"matchDay" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Annual != nil {
		updates["annual"] = *req.Annual
	}
	if req.Monthly != nil {
		updates["monthly"] = *req.Monthly
	}
	if req.Pitch != nil {
		updates["pitch"] = *req.Pitch
	}
	if req.MatchDay != nil {
		updates["match_day"] = *req.MatchDay
	}
	if len(updates) > 0 {
		if err := db.Model(&player).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update player"})
			return
		}
	}
	c.JSON(http.StatusOK, player)
}

func deletePlayerHandler(c *gin.Context) {
	if err := db.Delete(&models.Player{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player"})
		return
	}
	c.Status(http.StatusNoContent)
}
