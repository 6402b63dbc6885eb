package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

// createMatchDayHandler schedules a match day. Match-day payments attach by
// date equality, so at most one match day may exist per calendar date.
func createMatchDayHandler(c *gin.Context) {
	var req struct {
		MatchDate string `json:"matchDate" binding:"required"`
		Opponent  string `json:"opponent"`
		Venue     string `json:"venue"`
		MatchType string `json:"matchType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.MatchDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid matchDate, expected YYYY-MM-DD"})
		return
	}
	var count int64
	db.Model(&models.MatchDay{}).Where("match_date = ?", date.Format(dateLayout)).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Match day already exists for this date"})
		return
	}
	matchDay := models.MatchDay{
		MatchDate: date,
		Opponent:  req.Opponent,
		Venue:     req.Venue,
		MatchType: req.MatchType,
	}
	if err := db.Create(&matchDay).Error; err != nil {
		if isUniqueConstraintError(err) { // race with a concurrent create
			c.JSON(http.StatusBadRequest, gin.H{"error": "Match day already exists for this date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match day"})
		return
	}
	c.JSON(http.StatusCreated, matchDay)
}

func listMatchDaysHandler(c *gin.Context) {
	skip := atoiDefault(c.Query("skip"), 0)
	limit := atoiDefault(c.Query("limit"), 100)
	var matchDays []models.MatchDay
	if err := db.Model(&models.MatchDay{}).Order("match_date desc").Offset(skip).Limit(limit).Find(&matchDays).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch match days"})
		return
	}
	c.JSON(http.StatusOK, matchDays)
}

func getMatchDayHandler(c *gin.Context) {
	var matchDay models.MatchDay
	if err := db.First(&matchDay, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match day not found"})
		return
	}
	c.JSON(http.StatusOK, matchDay)
}

func updateMatchDayHandler(c *gin.Context) {
	var matchDay models.MatchDay
	if err := db.First(&matchDay, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match day not found"})
		return
	}
	var req struct {
		MatchDate *string `json:"matchDate"`
		Opponent  *string `json:"opponent"`
		Venue     *string `json:"venue"`
		MatchType *string `json:"matchType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if req.MatchDate != nil {
		date, err := parseDate(*req.MatchDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid matchDate, expected YYYY-MM-DD"})
			return
		}
		updates["match_date"] = date
	}
	if req.Opponent != nil {
		updates["opponent"] = *req.Opponent
	}
	if req.Venue != nil {
		updates["venue"] = *req.Venue
	}
	if req.MatchType != nil {
		updates["match_type"] = *req.MatchType
	}
	if len(updates) > 0 {
		if err := db.Model(&matchDay).Updates(updates).Error; err != nil {
			if isUniqueConstraintError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Match day already exists for this date"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update match day"})
			return
		}
	}
	c.JSON(http.StatusOK, matchDay)
}

func deleteMatchDayHandler(c *gin.Context) {
	if err := db.Delete(&models.MatchDay{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete match day"})
		return
	}
	c.Status(http.StatusNoContent)
}
