package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

// createExpenseHandler records an operational expense. Category is free-form.
func createExpenseHandler(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
		Category    string `json:"category" binding:"required"`
		Amount      int64  `json:"amount" binding:"required,gt=0"`
		ExpenseDate string `json:"expenseDate"`
		MatchDayID  *uint  `json:"matchDayId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.ExpenseDate != "" {
		var err error
		date, err = parseDate(req.ExpenseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expenseDate, expected YYYY-MM-DD"})
			return
		}
	}
	email, _ := c.Get("email")
	createdBy, _ := email.(string)
	expense := models.Expense{
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		ExpenseDate: date,
		MatchDayID:  req.MatchDayID,
		CreatedBy:   createdBy,
	}
	if err := db.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func listExpensesHandler(c *gin.Context) {
	skip := atoiDefault(c.Query("skip"), 0)
	limit := atoiDefault(c.Query("limit"), 100)
	q := db.Model(&models.Expense{}).Order("expense_date desc, created_at desc").Offset(skip).Limit(limit)
	if v := c.Query("category"); v != "" {
		q = q.Where("category = ?", v)
	}
	if v := c.Query("match_day_id"); v != "" {
		q = q.Where("match_day_id = ?", v)
	}
	if v := c.Query("start_date"); v != "" {
		q = q.Where("expense_date >= ?", v)
	}
	if v := c.Query("end_date"); v != "" {
		q = q.Where("expense_date <= ?", v)
	}
	var expenses []models.Expense
	if err := q.Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func getExpenseHandler(c *gin.Context) {
	var expense models.Expense
	if err := db.First(&expense, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	c.JSON(http.StatusOK, expense)
}

func updateExpenseHandler(c *gin.Context) {
	var expense models.Expense
	if err := db.First(&expense, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	var req struct {
		Description *string `json:"description"`
		Category    *string `json:"category"`
		Amount      *int64  `json:"amount" binding:"omitempty,gt=0"`
		ExpenseDate *string `json:"expenseDate"`
		MatchDayID  *uint   `json:"matchDayId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.ExpenseDate != nil {
		date, err := parseDate(*req.ExpenseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expenseDate, expected YYYY-MM-DD"})
			return
		}
		updates["expense_date"] = date
	}
	if req.MatchDayID != nil {
		updates["match_day_id"] = *req.MatchDayID
	}
	if len(updates) > 0 {
		if err := db.Model(&expense).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
			return
		}
	}
	c.JSON(http.StatusOK, expense)
}

func deleteExpenseHandler(c *gin.Context) {
	if err := db.Delete(&models.Expense{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}
	c.Status(http.StatusNoContent)
}
