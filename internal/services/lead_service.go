package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"affiliatehub/internal/identity"
	"affiliatehub/internal/metrics"
	"affiliatehub/internal/models"
	"affiliatehub/internal/utils"
)

type LeadService struct {
	Repo     LeadStore
	Notifier EmailService
	Now      func() time.Time
}

// NewLeadService wires the lead store; notifier may be nil.
func NewLeadService(repo LeadStore, notifier EmailService) *LeadService {
	return &LeadService{Repo: repo, Notifier: notifier, Now: time.Now}
}

// Create registers a lead for the account on ctx. It returns ErrUnauthenticated,
// ErrAccountNotFound, ValidationErrors or a wrapped store error.
func (s *LeadService) Create(ctx context.Context, in CreateLeadInput) (*models.Lead, error) {
	if identity.Subject(ctx) == "" {
		return nil, ErrUnauthenticated
	}
	acc := identity.Account(ctx)
	if acc == nil {
		return nil, ErrAccountNotFound
	}

	in = in.normalized()
	if verrs := ValidateLead(in); verrs != nil {
		metrics.RecordLeadValidationFailure()
		return nil, verrs
	}

	now := s.Now()
	lead := &models.Lead{
		AccountID:              acc.ID,
		CompanyName:            in.CompanyName,
		KvkNumber:              in.KvkNumber,
		ContactPersonFirstname: in.ContactPersonFirstname,
		ContactPersonLastname:  in.ContactPersonLastname,
		ContactEmail:           in.ContactEmail,
		ContactPhone:           in.ContactPhone,
		Notes:                  in.Notes,
		Status:                 models.LeadStatusNew,
		CreatedAt:              now,
	}
	activity := models.Activity{
		ID:          utils.NewID(),
		Type:        models.ActivityLeadCreated,
		Description: "Lead aangemaakt: " + in.CompanyName,
		Metadata:    models.ActivityMetadata{CompanyName: in.CompanyName},
		CreatedAt:   now,
	}
	if err := s.Repo.CreateWithActivity(ctx, lead, activity); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	metrics.RecordLeadCreated()
	log.Printf("[lead][create] account=%s lead=%s company=%q", acc.ID, lead.ID, lead.CompanyName)

	if s.Notifier != nil {
		if err := s.Notifier.SendLeadNotification(lead); err != nil {
			log.Printf("[lead][create] warning: notification for lead=%s failed: %v", lead.ID, err)
		}
	}
	return lead, nil
}
