package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sahabat-belanja/internal/budget"
	"sahabat-belanja/internal/harga"
	"sahabat-belanja/internal/planner"
	"sahabat-belanja/internal/report"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "sahabat-belanja",
		"version": report.AppVersion,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be JSON with a phone field"})
		return
	}

	user, token, err := s.auth.Login(c.Request.Context(), req.Phone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

func (s *Server) handleRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    s.app.RegionTable().RegionNames(),
	})
}

// prefsFromQuery reads a preference snapshot from query parameters so
// the client can re-check feasibility on every form change.
func prefsFromQuery(c *gin.Context) budget.UserPreferences {
	atoi := func(key string, fallback int) int {
		n, err := strconv.Atoi(c.Query(key))
		if err != nil {
			return fallback
		}
		return n
	}
	budgetValue, _ := strconv.ParseFloat(c.Query("budget"), 64)

	return budget.UserPreferences{
		Budget:          budgetValue,
		DurationDays:    atoi("durationDays", 7),
		PortionsPerMeal: atoi("portionsPerMeal", 1),
		NumberOfPeople:  atoi("numberOfPeople", 1),
		Lifestyle:       budget.ParseLifestyle(c.Query("lifestyle")),
		City:            c.Query("city"),
	}
}

func (s *Server) handleFeasibility(c *gin.Context) {
	prefs := prefsFromQuery(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    s.app.Feasibility(prefs),
	})
}

func (s *Server) handleGeneratePlan(c *gin.Context) {
	var prefs budget.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be a preferences object"})
		return
	}
	prefs.Lifestyle = budget.ParseLifestyle(string(prefs.Lifestyle))

	user := currentUser(c)
	plan, err := s.app.GeneratePlan(c.Request.Context(), user.Phone, prefs)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrBudgetInfeasible):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, planner.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": planner.ErrUnavailable.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    plan,
	})
}

func (s *Server) handleHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	user := currentUser(c)
	items, err := s.app.History(c.Request.Context(), user.Phone, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

func (s *Server) handleGetPlan(c *gin.Context) {
	plan, err := s.app.ReviewPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    plan,
	})
}

// handleCommonIngredients serves the fixed suggestion list for the
// correction form, so contributed spellings stay consistent.
func (s *Server) handleCommonIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    harga.CommonIngredients,
	})
}

func (s *Server) handleCorrectPrice(c *gin.Context) {
	var req struct {
		Region     string  `json:"region"`
		Ingredient string  `json:"ingredient"`
		Price      float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must have region, ingredient, and price"})
		return
	}
	if req.Region == "" || req.Ingredient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "region and ingredient must not be empty"})
		return
	}

	if err := s.app.CorrectPrice(c.Request.Context(), req.Region, req.Ingredient, req.Price); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleRegionPrices(c *gin.Context) {
	prices, err := s.app.RegionOverrides(c.Request.Context(), c.Param("city"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    prices,
		"count":   len(prices),
	})
}

func (s *Server) handleReferencePrices(c *gin.Context) {
	prices, err := s.app.ReferencePrices(c.Request.Context(), c.Param("city"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    prices,
		"count":   len(prices),
	})
}

func (s *Server) handleExportHistory(c *gin.Context) {
	user := currentUser(c)
	data, err := s.app.ExportHistoryWorkbook(c.Request.Context(), user.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="riwayat-belanja.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (s *Server) handleStorageReport(c *gin.Context) {
	reportData, err := s.app.StorageReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reportData,
	})
}

func (s *Server) handleDiagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    s.app.Diagnostics(c.Request.Context()),
	})
}

func (s *Server) handleDailyUsage(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil || days <= 0 {
		days = 7
	}

	usage, err := s.app.DailyUsage(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    usage,
	})
}

func (s *Server) handleExportDatabase(c *gin.Context) {
	data, err := s.app.ExportDatabase(c.Request.Context(), currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sahabat-belanja-export.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

func (s *Server) handleRefreshHarga(c *gin.Context) {
	var req struct {
		Region string `json:"region"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must have a region field"})
		return
	}

	count, err := s.app.RefreshReferencePrices(c.Request.Context(), req.Region)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
	})
}
