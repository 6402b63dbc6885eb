package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

const dateLayout = "2006-01-02"

func setupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/users/login", loginHandler)
	api.POST("/refresh", refreshHandler)
	api.POST("/revoke_refresh", revokeRefreshHandler)

	auth := api.Group("")
	auth.Use(jwtAuthMiddleware())
	auth.POST("/users/register", registerHandler)
	auth.GET("/users", listUsersHandler)
	auth.GET("/users/me", meHandler)

	auth.POST("/players", createPlayerHandler)
	auth.GET("/players", listPlayersHandler)
	auth.GET("/players/:id", getPlayerHandler)
	auth.PUT("/players/:id", updatePlayerHandler)
	auth.DELETE("/players/:id", deletePlayerHandler)

	auth.POST("/payments", createPaymentHandler)
	auth.GET("/payments", listPaymentsHandler)
	auth.GET("/payments/:id", getPaymentHandler)
	auth.PUT("/payments/:id", updatePaymentHandler)
	auth.DELETE("/payments/:id", deletePaymentHandler)

	auth.POST("/expenses", createExpenseHandler)
	auth.GET("/expenses", listExpensesHandler)
	auth.GET("/expenses/:id", getExpenseHandler)
	auth.PUT("/expenses/:id", updateExpenseHandler)
	auth.DELETE("/expenses/:id", deleteExpenseHandler)

	auth.POST("/match-days", createMatchDayHandler)
	auth.GET("/match-days", listMatchDaysHandler)
	auth.GET("/match-days/:id", getMatchDayHandler)
	auth.PUT("/match-days/:id", updateMatchDayHandler)
	auth.DELETE("/match-days/:id", deleteMatchDayHandler)

	auth.GET("/reports/annual", annualReportHandler)
	auth.GET("/reports/pitch", pitchReportHandler)
	auth.GET("/reports/daily", dailyReportHandler)
	auth.GET("/reports/match-day", matchDayReportHandler)
	auth.GET("/statistics/upcoming-payments", upcomingPaymentsHandler)
	auth.GET("/statistics/payment-summary", paymentSummaryHandler)
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			c.Abort()
			return
		}
		sub, _ := claims["sub"].(float64)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		c.Set("userID", uint(sub))
		c.Set("email", email)
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}
}

// getUserFromContext fetches the currently authenticated user using the id set by jwtAuthMiddleware
func getUserFromContext(c *gin.Context) (*models.User, bool) {
	idVal, _ := c.Get("userID")
	id, ok := idVal.(uint)
	if !ok || id == 0 {
		return nil, false
	}
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, false
	}
	return &user, true
}

func loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   float64(user.ID),
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	refreshToken, err := createAndStoreRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "user": user, "token": tokenString, "refresh_token": refreshToken})
}

// refreshHandler exchanges a refresh token for a new access token and rotates the refresh token
func refreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil || rt.Revoked || time.Now().After(rt.ExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}
	var user models.User
	if err := db.First(&user, rt.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   float64(user.ID),
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	// rotate refresh token: revoke existing and create new one
	db.Model(&models.RefreshToken{}).Where("id = ?", rt.ID).Update("revoked", true)
	newRT, err := createAndStoreRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString, "refresh_token": newRT})
}

// revokeRefreshHandler revokes a given refresh token (useful on logout)
func revokeRefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "refresh token not found"})
		return
	}
	rt.Revoked = true
	if err := db.Save(rt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "refresh token revoked"})
}

// registerHandler creates a new account. Admin only.
func registerHandler(c *gin.Context) {
	role, _ := c.Get("role")
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := RegisterUser(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func listUsersHandler(c *gin.Context) {
	skip := atoiDefault(c.Query("skip"), 0)
	limit := atoiDefault(c.Query("limit"), 100)
	var users []models.User
	q := db.Model(&models.User{}).Order("created_at desc").Offset(skip).Limit(limit)
	if search := c.Query("search"); search != "" {
		q = q.Where("name ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if err := q.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func meHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// parseDate parses a YYYY-MM-DD query value into a UTC date.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
