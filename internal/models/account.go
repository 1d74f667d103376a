package models

import "time"

// ActivityLogCap is the number of activity entries kept per account.
const ActivityLogCap = 200

const ActivityLeadCreated = "LEAD_CREATED"

// Account is an affiliate/account manager, linked to the identity provider by ExternalID.
type Account struct {
	ID              string     `json:"id"`
	ExternalID      string     `json:"external_id"`
	CommissionTotal float64    `json:"commission_total"`
	LeadIDs         []string   `json:"lead_ids,omitempty"`
	Activities      []Activity `json:"activities,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ActivityMetadata struct {
	LeadID      string `json:"lead_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// Activity is one entry of the account's newest-first activity log.
type Activity struct {
	ID          string           `json:"id,omitempty"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Metadata    ActivityMetadata `json:"metadata"`
	CreatedAt   time.Time        `json:"created_at"`
}

// PrependActivity puts a at the head of log and drops everything past limit.
func PrependActivity(log []Activity, a Activity, limit int) []Activity {
	out := make([]Activity, 0, len(log)+1)
	out = append(out, a)
	out = append(out, log...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
