package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

// createPaymentHandler records a dues payment. PlayerName is snapshotted by
// the client at creation time so later renames do not rewrite history.
func createPaymentHandler(c *gin.Context) {
	var req struct {
		PlayerID    uint   `json:"playerId" binding:"required"`
		PlayerName  string `json:"playerName" binding:"required"`
		PaymentType string `json:"paymentType" binding:"required"`
		Amount      int64  `json:"amount" binding:"required,gt=0"`
		Date        string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		var err error
		date, err = parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
	}
	email, _ := c.Get("email")
	createdBy, _ := email.(string)
	payment := models.Payment{
		PlayerID:    req.PlayerID,
		PlayerName:  req.PlayerName,
		PaymentType: req.PaymentType,
		Amount:      req.Amount,
		Date:        date,
		CreatedBy:   createdBy,
	}
	if err := db.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func listPaymentsHandler(c *gin.Context) {
	skip := atoiDefault(c.Query("skip"), 0)
	limit := atoiDefault(c.Query("limit"), 100)
	q := db.Model(&models.Payment{}).Order("date desc, created_at desc").Offset(skip).Limit(limit)
	if v := c.Query("player_id"); v != "" {
		q = q.Where("player_id = ?", v)
	}
	if v := c.Query("payment_type"); v != "" {
		q = q.Where("payment_type = ?", v)
	}
	if v := c.Query("start_date"); v != "" {
		q = q.Where("date >= ?", v)
	}
	if v := c.Query("end_date"); v != "" {
		q = q.Where("date <= ?", v)
	}
	var payments []models.Payment
	if err := q.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func getPaymentHandler(c *gin.Context) {
	var payment models.Payment
	if err := db.First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, payment)
}

// updatePaymentHandler exists for administrative corrections only; payments
// are otherwise immutable once created.
func updatePaymentHandler(c *gin.Context) {
	var payment models.Payment
	if err := db.First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	var req struct {
		PlayerName  *string `json:"playerName"`
		PaymentType *string `json:"paymentType"`
		Amount      *int64  `json:"amount" binding:"omitempty,gt=0"`
		Date        *string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if req.PlayerName != nil {
		updates["player_name"] = *req.PlayerName
	}
	if req.PaymentType != nil {
		updates["payment_type"] = *req.PaymentType
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		updates["date"] = date
	}
	if len(updates) > 0 {
		if err := db.Model(&payment).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
			return
		}
	}
	c.JSON(http.StatusOK, payment)
}

func deletePaymentHandler(c *gin.Context) {
	if err := db.Delete(&models.Payment{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}
	c.Status(http.StatusNoContent)
}
