package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"affiliatehub/internal/identity"
	"affiliatehub/internal/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// GetDashboard godoc
// @Summary      Dashboard bundle
// @Description  Stats, recent activity and recent leads for the selected period in one call
// @Tags         Dashboard
// @Produce      json
// @Param        period  query     string  false  "7d, 30d or all"  default(7d)
// @Success      200     {object}  models.DashboardBundle
// @Failure      400     {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, h.Service.Bundle(ctx, identity.Account(ctx), period))
}

// GetStats godoc
// @Summary      Dashboard stats
// @Description  Lead counts, commission and change versus the previous window. null when unavailable.
// @Tags         Dashboard
// @Produce      json
// @Param        period  query     string  false  "7d, 30d or all"  default(7d)
// @Success      200     {object}  models.DashboardStats
// @Failure      400     {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, h.Service.Stats(ctx, identity.Account(ctx), period))
}

// GetActivity godoc
// @Summary      Recent activity
// @Tags         Dashboard
// @Produce      json
// @Param        period  query     string  false  "7d, 30d or all"  default(7d)
// @Param        limit   query     int     false  "max items (1-100)"  default(20)
// @Success      200     {array}   models.RecentActivityItem
// @Failure      400     {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/dashboard/activity [get]
func (h *DashboardHandler) GetActivity(c *gin.Context) {
	period, ok := periodFromQuery(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, h.Service.RecentActivity(ctx, identity.Account(ctx), period, limitFromQuery(c)))
}

// GetRecentLeads godoc
// @Summary      Recent leads
// @Tags         Dashboard
// @Produce      json
// @Param        limit  query     int  false  "max items (1-50)"  default(6)
// @Success      200    {array}   models.RecentLeadItem
// @Security     BearerAuth
// @Router       /api/dashboard/leads [get]
func (h *DashboardHandler) GetRecentLeads(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, h.Service.RecentLeads(ctx, identity.Account(ctx), limitFromQuery(c)))
}
