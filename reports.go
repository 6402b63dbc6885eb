package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kasasatrevor256/ProFootball-Manager/pkg/reports"
)

func annualReportHandler(c *gin.Context) {
	year := atoiDefault(c.Query("year"), time.Now().Year())
	report, err := reportEngine.Annual(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func pitchReportHandler(c *gin.Context) {
	year := atoiDefault(c.Query("year"), time.Now().Year())
	month := reports.AllMonths
	if v := c.Query("month"); v != "" && v != "all" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12 or 'all'"})
			return
		}
		month = m
	}
	report, err := reportEngine.Pitch(c.Request.Context(), month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func dailyReportHandler(c *gin.Context) {
	v := c.Query("date")
	if v == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date parameter is required"})
		return
	}
	date, err := parseDate(v)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	report, err := reportEngine.Daily(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// matchDayReportHandler serves both modes: match_day_id selects a single match
// day with raw records, otherwise every match day in the optional date range.
func matchDayReportHandler(c *gin.Context) {
	if v := c.Query("match_day_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match_day_id"})
			return
		}
		detail, err := reportEngine.MatchDay(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, reports.ErrMatchDayNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Match day not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
			return
		}
		c.JSON(http.StatusOK, detail)
		return
	}

	var start, end *time.Time
	if v := c.Query("start_date"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
			return
		}
		start = &d
	}
	if v := c.Query("end_date"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
			return
		}
		end = &d
	}
	list, err := reportEngine.MatchDays(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func upcomingPaymentsHandler(c *gin.Context) {
	limit := atoiDefault(c.Query("limit"), reports.DefaultUpcomingLimit)
	statuses, err := reportEngine.UpcomingPayments(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}
	c.JSON(http.StatusOK, statuses)
}

func paymentSummaryHandler(c *gin.Context) {
	summary, err := reportEngine.PaymentTypeTotals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
