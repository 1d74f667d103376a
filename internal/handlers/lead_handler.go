package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"affiliatehub/internal/middleware"
	"affiliatehub/internal/models"
	"affiliatehub/internal/services"
)

const (
	msgNotAuthenticated = "Je moet ingelogd zijn om een lead aan te maken."
	msgNoAccount        = "Geen account manager gevonden. Voltooi eerst je profiel."
	msgCheckFields      = "Controleer de velden."
	msgSomethingWrong   = "Er is iets misgegaan."
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// CreateLead godoc
// @Summary      Create lead
// @Description  Registers a lead for the caller's account and logs a LEAD_CREATED activity. Accepts JSON or form data.
// @Tags         Leads
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        lead  body      services.CreateLeadInput  true  "Lead form"
// @Success      201   {object}  models.CreateLeadState
// @Failure      401   {object}  models.CreateLeadState
// @Failure      403   {object}  models.CreateLeadState
// @Failure      422   {object}  models.CreateLeadState
// @Failure      500   {object}  models.CreateLeadState
// @Security     BearerAuth
// @Router       /api/leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var in services.CreateLeadInput
	if err := c.ShouldBind(&in); err != nil {
		// an unreadable body is validated as empty so caller checks still come first
		log.Printf("[lead][create] request=%s bind: %v", middleware.RequestID(c), err)
		in = services.CreateLeadInput{}
	}
	if middleware.AccountLookupFailed(c) {
		c.JSON(http.StatusInternalServerError, models.CreateLeadState{Error: msgSomethingWrong})
		return
	}

	lead, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		status, state := leadErrorState(err)
		if status == http.StatusInternalServerError {
			log.Printf("[lead][create] request=%s error: %v", middleware.RequestID(c), err)
		}
		c.JSON(status, state)
		return
	}
	c.JSON(http.StatusCreated, models.CreateLeadState{Success: true, LeadID: lead.ID})
}

func leadErrorState(err error) (int, models.CreateLeadState) {
	var verrs services.ValidationErrors
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized, models.CreateLeadState{Error: msgNotAuthenticated}
	case errors.Is(err, services.ErrAccountNotFound):
		return http.StatusForbidden, models.CreateLeadState{Error: msgNoAccount}
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity, models.CreateLeadState{Error: msgCheckFields, FieldErrors: verrs}
	}
	return http.StatusInternalServerError, models.CreateLeadState{Error: msgSomethingWrong}
}
