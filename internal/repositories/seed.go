package repositories

import (
	"time"

	"affiliatehub/internal/models"
)

// DemoExternalID is the subject the demo account is linked to.
const DemoExternalID = "user_demo"

var demoLeads = []struct {
	company string
	status  models.LeadStatus
	daysAgo int
}{
	{"Bakkerij Jansen", models.LeadStatusNew, 0},
	{"Fietsenmaker De Spaak", models.LeadStatusContacted, 1},
	{"Kapsalon Knip", models.LeadStatusWon, 3},
	{"Installatiebedrijf Van Dam", models.LeadStatusQuoted, 5},
	{"Tandartspraktijk Zuid", models.LeadStatusLost, 9},
	{"Autobedrijf Hendriks", models.LeadStatusWon, 12},
	{"Bloemenhuis Flora", models.LeadStatusNew, 18},
	{"Schildersbedrijf Kleur", models.LeadStatusContacted, 26},
	{"Hoveniersbedrijf Groen", models.LeadStatusWon, 41},
}

// SeedDemo fills an empty memory store with one account manager and a spread of
// leads so the dashboard has something to show in local runs.
func SeedDemo(s *MemoryStore, now time.Time) *models.Account {
	acc := s.AddAccount(&models.Account{
		ExternalID:      DemoExternalID,
		CommissionTotal: 1840.50,
		CreatedAt:       now.AddDate(0, -3, 0),
	})
	for i, d := range demoLeads {
		lead := &models.Lead{
			AccountID:              acc.ID,
			CompanyName:            d.company,
			ContactPersonFirstname: "Demo",
			ContactPersonLastname:  "Contact",
			ContactEmail:           "demo@example.com",
			ContactPhone:           "0612345678",
			Status:                 d.status,
			CreatedAt:              now.AddDate(0, 0, -d.daysAgo).Add(-time.Duration(i) * time.Minute),
		}
		s.AddLead(lead)
		acc.LeadIDs = append(acc.LeadIDs, lead.ID)
	}
	s.mu.Lock()
	s.accounts[acc.ID].LeadIDs = append([]string(nil), acc.LeadIDs...)
	s.mu.Unlock()
	return acc
}
