package models

import "time"

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NIEUW"
	LeadStatusContacted LeadStatus = "CONTACT_OPGENOMEN"
	LeadStatusQuoted    LeadStatus = "OFFERTE"
	LeadStatusWon       LeadStatus = "GEWONNEN"
	LeadStatusLost      LeadStatus = "VERLOREN"
)

// PendingStatuses are the statuses of leads that are still in the pipeline.
var PendingStatuses = []LeadStatus{LeadStatusNew, LeadStatusContacted, LeadStatusQuoted}

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQuoted, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// Lead is a prospect registered by an account manager. Leads are never edited here.
type Lead struct {
	ID                     string     `json:"id"`
	AccountID              string     `json:"account_id"`
	CompanyName            string     `json:"company_name"`
	KvkNumber              string     `json:"kvk_number,omitempty"`
	ContactPersonFirstname string     `json:"contact_person_firstname"`
	ContactPersonLastname  string     `json:"contact_person_lastname"`
	ContactEmail           string     `json:"contact_email"`
	ContactPhone           string     `json:"contact_phone"`
	Notes                  string     `json:"notes,omitempty"`
	Status                 LeadStatus `json:"status"`
	CreatedAt              time.Time  `json:"created_at"`
}

// LeadFilter narrows lead queries. AccountID is mandatory; nil bounds are open.
type LeadFilter struct {
	AccountID string
	From      *time.Time
	To        *time.Time
	Statuses  []LeadStatus
}

// CreateLeadState is the result of a lead submission as the form expects it.
type CreateLeadState struct {
	Success     bool              `json:"success"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	LeadID      string            `json:"leadId,omitempty"`
}
