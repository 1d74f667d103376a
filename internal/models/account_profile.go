package models

// AccountProfile tells the front-end whether the caller has completed onboarding.
type AccountProfile struct {
	Onboarded       bool    `json:"onboarded"`
	AccountID       string  `json:"accountId,omitempty"`
	CommissionTotal float64 `json:"commissionTotal"`
}
