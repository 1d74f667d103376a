package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"affiliatehub/internal/metrics"
	"affiliatehub/internal/middleware"
	"affiliatehub/internal/utils"
)

type KvkHandler struct {
	Client *utils.KvkClient
}

func NewKvkHandler(client *utils.KvkClient) *KvkHandler {
	return &KvkHandler{Client: client}
}

// Lookup godoc
// @Summary      KVK company lookup
// @Description  Resolves a Chamber of Commerce number to company name and main address
// @Tags         KVK
// @Produce      json
// @Param        kvkNummer  query     string  true  "8-digit KVK number"
// @Success      200        {object}  models.CompanyProfile
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      503        {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/kvk [get]
func (h *KvkHandler) Lookup(c *gin.Context) {
	number := c.Param("kvkNummer")
	if number == "" {
		number = c.Query("kvkNummer")
	}
	number = strings.TrimSpace(number)

	profile, err := h.Client.Lookup(c.Request.Context(), number)
	if err != nil {
		le := utils.AsLookupError(err)
		metrics.RecordKvkLookup(lookupResult(le.Status))
		log.Printf("[kvk][lookup] request=%s kvk=%q status=%d: %v", middleware.RequestID(c), number, le.Status, le)

		body := gin.H{"error": le.Message}
		if le.Details != "" && le.Status >= http.StatusInternalServerError {
			body["details"] = le.Details
		}
		c.JSON(le.Status, body)
		return
	}
	metrics.RecordKvkLookup("found")
	c.JSON(http.StatusOK, profile)
}

func lookupResult(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusServiceUnavailable:
		return "unavailable"
	}
	return "error"
}
