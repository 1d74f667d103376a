package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"affiliatehub/internal/services"
)

type ContentHandler struct {
	Service *services.ContentService
}

func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{Service: service}
}

// ListSections godoc
// @Summary      Navigation and content sections
// @Tags         Content
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /api/content [get]
func (h *ContentHandler) ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"navigation": h.Service.Navigation(),
		"sections":   h.Service.Sections(),
	})
}

// GetSection godoc
// @Summary      Content section
// @Tags         Content
// @Produce      json
// @Param        section  path      string  true  "academy, tools, support or simulators"
// @Success      200      {object}  models.ContentSection
// @Failure      404      {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/content/{section} [get]
func (h *ContentHandler) GetSection(c *gin.Context) {
	sec := h.Service.Section(c.Param("section"))
	if sec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "section not found"})
		return
	}
	c.JSON(http.StatusOK, sec)
}
