package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"affiliatehub/internal/models"
	"affiliatehub/internal/repositories"
	"affiliatehub/internal/services"
)

var fixedNow = time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

func newDashboard(store *repositories.MemoryStore) *services.DashboardService {
	svc := services.NewDashboardService(store, store, time.UTC)
	svc.Now = func() time.Time { return fixedNow }
	return svc
}

func seedLead(store *repositories.MemoryStore, accountID, company string, status models.LeadStatus, at time.Time) *models.Lead {
	l := &models.Lead{AccountID: accountID, CompanyName: company, Status: status, CreatedAt: at}
	store.AddLead(l)
	return l
}

func TestStatsCountsAndChanges(t *testing.T) {
	store := repositories.NewMemoryStore()
	acc := store.AddAccount(&models.Account{ExternalID: "user_1", CommissionTotal: 1250.5})

	// current 7d window
	seedLead(store, acc.ID, "A", models.LeadStatusNew, fixedNow.Add(-time.Hour))
	seedLead(store, acc.ID, "B", models.LeadStatusWon, fixedNow.AddDate(0, 0, -2))
	seedLead(store, acc.ID, "C", models.LeadStatusQuoted, fixedNow.AddDate(0, 0, -3))
	seedLead(store, acc.ID, "D", models.LeadStatusLost, fixedNow.AddDate(0, 0, -4))
	// previous 7d window
	seedLead(store, acc.ID, "E", models.LeadStatusNew, fixedNow.AddDate(0, 0, -9))
	seedLead(store, acc.ID, "F", models.LeadStatusContacted, fixedNow.AddDate(0, 0, -10))

	stats := newDashboard(store).Stats(context.Background(), acc, models.Period7Days)
	require.NotNil(t, stats)

	assert.Equal(t, 4, stats.TotalLeads)
	assert.Equal(t, 1, stats.Converted)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1250.5, stats.Commission)
	require.NotNil(t, stats.ChangeTotalLeads)
	assert.Equal(t, 100.0, *stats.ChangeTotalLeads)
	require.NotNil(t, stats.ChangeConverted)
	assert.Equal(t, 100.0, *stats.ChangeConverted)
	require.NotNil(t, stats.ChangePending)
	assert.Equal(t, 0.0, *stats.ChangePending)
	assert.Nil(t, stats.ChangeCommission)
}

func TestStatsAllTimeSkipsComparison(t *testing.T) {
	store := repositories.NewMemoryStore()
	acc := store.AddAccount(&models.Account{ExternalID: "user_1"})
	seedLead(store, acc.ID, "Old", models.LeadStatusWon, fixedNow.AddDate(-2, 0, 0))
	seedLead(store, acc.ID, "New", models.LeadStatusNew, fixedNow)

	stats := newDashboard(store).Stats(context.Background(), acc, models.PeriodAll)
	require.NotNil(t, stats)

	assert.Equal(t, 2, stats.TotalLeads)
	assert.Equal(t, 1, stats.Converted)
	assert.Nil(t, stats.ChangeTotalLeads)
	assert.Nil(t, stats.ChangeConverted)
	assert.Nil(t, stats.ChangePending)
}

func TestStatsWithoutAccount(t *testing.T) {
	store := repositories.NewMemoryStore()
	assert.Nil(t, newDashboard(store).Stats(context.Background(), nil, models.Period7Days))
}

type failingLeads struct{ *repositories.MemoryStore }

func (failingLeads) Count(context.Context, models.LeadFilter) (int, error) {
	return 0, errors.New("connection refused")
}

func (failingLeads) List(context.Context, models.LeadFilter, int) ([]*models.Lead, error) {
	return nil, errors.New("connection refused")
}

func TestReadsDegradeOnStoreFailure(t *testing.T) {
	store := repositories.NewMemoryStore()
	acc := store.AddAccount(&models.Account{ExternalID: "user_1"})
	svc := services.NewDashboardService(store, failingLeads{store}, time.UTC)

	assert.Nil(t, svc.Stats(context.Background(), acc, models.Period7Days))
	assert.Empty(t, svc.RecentActivity(context.Background(), acc, models.Period7Days, 0))
	assert.NotNil(t, svc.RecentLeads(context.Background(), acc, 0))
	assert.Empty(t, svc.RecentLeads(context.Background(), acc, 0))
}

func TestRecentActivityUsesLogWhenPresent(t *testing.T) {
	store := repositories.NewMemoryStore()
	var log []models.Activity
	for i := 0; i < 30; i++ {
		log = append(log, models.Activity{
			ID:          fmt.Sprintf("a%02d", i),
			Type:        models.ActivityLeadCreated,
			Description: fmt.Sprintf("entry %d", i),
			// far outside every period window
			CreatedAt: fixedNow.AddDate(-1, 0, -i),
		})
	}
	acc := store.AddAccount(&models.Account{ExternalID: "user_1", Activities: log})
	seedLead(store, acc.ID, "Ignored", models.LeadStatusNew, fixedNow)

	items := newDashboard(store).RecentActivity(context.Background(), acc, models.Period7Days, 5)
	require.Len(t, items, 5)
	for i, it := range items {
		assert.Equal(t, fmt.Sprintf("a%02d", i), it.ID)
		assert.Equal(t, fmt.Sprintf("entry %d", i), it.Description)
	}
}

func TestRecentActivityLegacyIDs(t *testing.T) {
	store := repositories.NewMemoryStore()
	acc := store.AddAccount(&models.Account{
		ExternalID: "user_1",
		Activities: []models.Activity{
			{Type: models.ActivityLeadCreated, Metadata: models.ActivityMetadata{LeadID: "lead-9"}, CreatedAt: fixedNow},
			{Type: "NOTE", CreatedAt: fixedNow.AddDate(0, 0, -1)},
		},
	})

	items := newDashboard(store).RecentActivity(context.Background(), acc, models.PeriodAll, 0)
	require.Len(t, items, 2)
	assert.Equal(t, "lead-9", items[0].ID)
	assert.Equal(t, "Today", items[0].Date)
	assert.Equal(t, "act-1", items[1].ID)
	assert.Equal(t, "Yesterday", items[1].Date)
	assert.Equal(t, "2026-03-14", items[1].DateTime)
}

func TestRecentActivityDerivedFromLeads(t *testing.T) {
	store := repositories.NewMemoryStore()
	acc := store.AddAccount(&models.Account{ExternalID: "user_1"})
	seedLead(store, acc.ID, "Bakkerij Jansen", models.LeadStatusNew, fixedNow.AddDate(0, 0, -1))
	seedLead(store, acc.ID, "Fietsenmaker", models.LeadStatusWon, fixedNow.Add(-time.Hour))
	seedLead(store, acc.ID, "Te oud", models.LeadStatusNew, fixedNow.AddDate(0, 0, -20))

	items := newDashboard(store).RecentActivity(context.Background(), acc, models.Period7Days, 0)
	require.Len(t, items, 2)

	assert.Equal(t, "Lead: Fietsenmaker", items[0].Description)
	assert.Equal(t, models.ActivityLeadCreated, items[0].Type)
	assert.Equal(t, items[0].ID, items[0].LeadID)
	assert.Equal(t, "Today", items[0].Date)
	assert.Equal(t, "Lead: Bakkerij Jansen", items[1].Description)
	assert.Equal(t, "Yesterday", items[1].Date)

	all := newDashboard(store).RecentActivity(context.Background(), acc, models.PeriodAll, 2)
	require.Len(t, all, 2)
	assert.Equal(t, "Fietsenmaker", all[0].CompanyName)
}

func TestRecentLeadsNewestFirst(t *testing.T) {
	store := repositories.NewMemoryStore()
	acc := store.AddAccount(&models.Account{ExternalID: "user_1"})
	for i := 0; i < 8; i++ {
		seedLead(store, acc.ID, fmt.Sprintf("Bedrijf %d", i), models.LeadStatusNew, fixedNow.AddDate(0, 0, -i))
	}

	items := newDashboard(store).RecentLeads(context.Background(), acc, 0)
	require.Len(t, items, services.DefaultLeadsLimit)
	assert.Equal(t, "Bedrijf 0", items[0].Name)
	assert.Equal(t, "15 March 2026", items[0].LastLead.Date)
	assert.Equal(t, "2026-03-15", items[0].LastLead.DateTime)
	assert.Equal(t, models.LeadStatusNew, items[0].LastLead.Status)
	assert.Equal(t, "Bedrijf 5", items[5].CompanyName)

	assert.Len(t, newDashboard(store).RecentLeads(context.Background(), acc, 500), 8)
}

func TestDashboardIsolatesAccounts(t *testing.T) {
	store := repositories.NewMemoryStore()
	mine := store.AddAccount(&models.Account{ExternalID: "user_1"})
	other := store.AddAccount(&models.Account{ExternalID: "user_2"})
	seedLead(store, mine.ID, "Mijn lead", models.LeadStatusWon, fixedNow)
	seedLead(store, other.ID, "Andere lead", models.LeadStatusWon, fixedNow)
	seedLead(store, other.ID, "Andere lead 2", models.LeadStatusNew, fixedNow)

	svc := newDashboard(store)
	bundle := svc.Bundle(context.Background(), mine, models.PeriodAll)

	require.NotNil(t, bundle.Stats)
	assert.Equal(t, 1, bundle.Stats.TotalLeads)
	require.Len(t, bundle.RecentActivity, 1)
	assert.Equal(t, "Mijn lead", bundle.RecentActivity[0].CompanyName)
	require.Len(t, bundle.RecentLeads, 1)
	assert.Equal(t, "Mijn lead", bundle.RecentLeads[0].CompanyName)
}
