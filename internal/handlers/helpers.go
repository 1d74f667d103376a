package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"affiliatehub/internal/models"
)

// periodFromQuery reads ?period=, writing a 400 and returning false for unknown values.
func periodFromQuery(c *gin.Context) (models.Period, bool) {
	p, ok := models.ParsePeriod(c.Query("period"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period, expected one of 7d, 30d, all"})
		return "", false
	}
	return p, true
}

// limitFromQuery returns ?limit= as an int, or 0 (service default) when absent or unparsable.
func limitFromQuery(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
