package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"affiliatehub/internal/identity"
	"affiliatehub/internal/middleware"
	"affiliatehub/internal/models"
)

type AccountHandler struct{}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// Me godoc
// @Summary      Caller's account profile
// @Description  onboarded=false means the identity has no account manager record yet
// @Tags         Account
// @Produce      json
// @Success      200  {object}  models.AccountProfile
// @Failure      500  {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/me [get]
func (h *AccountHandler) Me(c *gin.Context) {
	if middleware.AccountLookupFailed(c) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load account"})
		return
	}
	acc := identity.Account(c.Request.Context())
	if acc == nil {
		c.JSON(http.StatusOK, models.AccountProfile{})
		return
	}
	c.JSON(http.StatusOK, models.AccountProfile{
		Onboarded:       true,
		AccountID:       acc.ID,
		CommissionTotal: acc.CommissionTotal,
	})
}
