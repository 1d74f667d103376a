package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"affiliatehub/internal/models"
)

func TestMemoryStoreFilters(t *testing.T) {
	s := NewMemoryStore()
	acc := s.AddAccount(&models.Account{ExternalID: "user_1"})
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	s.AddLead(&models.Lead{AccountID: acc.ID, CompanyName: "a", Status: models.LeadStatusNew, CreatedAt: now})
	s.AddLead(&models.Lead{AccountID: acc.ID, CompanyName: "b", Status: models.LeadStatusWon, CreatedAt: now.AddDate(0, 0, -3)})
	s.AddLead(&models.Lead{AccountID: acc.ID, CompanyName: "c", Status: models.LeadStatusLost, CreatedAt: now.AddDate(0, 0, -10)})
	s.AddLead(&models.Lead{AccountID: "someone-else", CompanyName: "x", Status: models.LeadStatusNew, CreatedAt: now})

	ctx := context.Background()
	from := now.AddDate(0, 0, -5)

	n, err := s.Count(ctx, models.LeadFilter{AccountID: acc.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = s.Count(ctx, models.LeadFilter{AccountID: acc.ID, From: &from})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	to := now.AddDate(0, 0, -1)
	n, err = s.Count(ctx, models.LeadFilter{AccountID: acc.ID, From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.Count(ctx, models.LeadFilter{AccountID: acc.ID, Statuses: models.PendingStatuses})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	leads, err := s.List(ctx, models.LeadFilter{AccountID: acc.ID}, 2)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "a", leads[0].CompanyName)
	assert.Equal(t, "b", leads[1].CompanyName)
}

func TestMemoryStoreCreateWithActivity(t *testing.T) {
	s := NewMemoryStore()
	acc := s.AddAccount(&models.Account{ExternalID: "user_1"})
	ctx := context.Background()

	lead := &models.Lead{AccountID: acc.ID, CompanyName: "Acme", Status: models.LeadStatusNew, CreatedAt: time.Now()}
	require.NoError(t, s.CreateWithActivity(ctx, lead, models.Activity{ID: "act1", Type: models.ActivityLeadCreated}))
	require.NotEmpty(t, lead.ID)

	full, err := s.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{lead.ID}, full.LeadIDs)
	require.Len(t, full.Activities, 1)
	assert.Equal(t, lead.ID, full.Activities[0].Metadata.LeadID)

	got, err := s.GetByExternalID(ctx, "user_1")
	require.NoError(t, err)
	assert.Empty(t, got.Activities)

	missing := &models.Lead{AccountID: "nope", CompanyName: "Ghost"}
	assert.ErrorIs(t, s.CreateWithActivity(ctx, missing, models.Activity{}), ErrAccountMissing)
	n, err := s.Count(ctx, models.LeadFilter{AccountID: "nope"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryStoreConcurrentCreates(t *testing.T) {
	s := NewMemoryStore()
	acc := s.AddAccount(&models.Account{ExternalID: "user_1"})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 250; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lead := &models.Lead{AccountID: acc.ID, CompanyName: "Acme", CreatedAt: time.Now()}
			assert.NoError(t, s.CreateWithActivity(ctx, lead, models.Activity{Type: models.ActivityLeadCreated}))
		}()
	}
	wg.Wait()

	full, err := s.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Len(t, full.LeadIDs, 250)
	assert.Len(t, full.Activities, models.ActivityLogCap)
}

func TestSeedDemo(t *testing.T) {
	s := NewMemoryStore()
	acc := SeedDemo(s, time.Now())

	got, err := s.GetByExternalID(context.Background(), DemoExternalID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, acc.ID, got.ID)
	assert.Len(t, got.LeadIDs, len(demoLeads))
}
