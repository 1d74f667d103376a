package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"affiliatehub/internal/models"
)

const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
	DefaultLeadsLimit    = 6
	MaxLeadsLimit        = 50
)

// DashboardService builds the read models of the dashboard page. All methods degrade
// to nil/empty results on failure; errors are logged, never returned.
type DashboardService struct {
	Accounts AccountStore
	Leads    LeadStore
	Location *time.Location
	Now      func() time.Time
}

func NewDashboardService(accounts AccountStore, leads LeadStore, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{Accounts: accounts, Leads: leads, Location: loc, Now: time.Now}
}

func (s *DashboardService) now() time.Time {
	return s.Now().In(s.Location)
}

type statusCounts struct {
	total, converted, pending int
}

func (s *DashboardService) countWindow(ctx context.Context, accountID string, from, to *time.Time) (statusCounts, error) {
	var c statusCounts
	base := models.LeadFilter{AccountID: accountID, From: from, To: to}

	var err error
	if c.total, err = s.Leads.Count(ctx, base); err != nil {
		return c, fmt.Errorf("count leads: %w", err)
	}
	won := base
	won.Statuses = []models.LeadStatus{models.LeadStatusWon}
	if c.converted, err = s.Leads.Count(ctx, won); err != nil {
		return c, fmt.Errorf("count converted leads: %w", err)
	}
	pending := base
	pending.Statuses = models.PendingStatuses
	if c.pending, err = s.Leads.Count(ctx, pending); err != nil {
		return c, fmt.Errorf("count pending leads: %w", err)
	}
	return c, nil
}

// Stats returns lead counts for the period and, for bounded periods, the change versus
// the previous window. Commission is the lifetime total whatever the period.
func (s *DashboardService) Stats(ctx context.Context, acc *models.Account, period models.Period) *models.DashboardStats {
	if acc == nil {
		return nil
	}
	rng := ResolvePeriod(period, s.now())

	var from *time.Time
	if rng != nil {
		from = &rng.Start
	}
	cur, err := s.countWindow(ctx, acc.ID, from, nil)
	if err != nil {
		log.Printf("[dashboard][stats] account=%s period=%s: %v", acc.ID, period, err)
		return nil
	}

	stats := &models.DashboardStats{
		TotalLeads: cur.total,
		Converted:  cur.converted,
		Pending:    cur.pending,
		Commission: acc.CommissionTotal,
	}
	if rng == nil {
		return stats
	}

	prev, err := s.countWindow(ctx, acc.ID, &rng.PrevStart, &rng.PrevEnd)
	if err != nil {
		log.Printf("[dashboard][stats] account=%s period=%s previous window: %v", acc.ID, period, err)
		return nil
	}
	stats.ChangeTotalLeads = percentChange(cur.total, prev.total)
	stats.ChangeConverted = percentChange(cur.converted, prev.converted)
	stats.ChangePending = percentChange(cur.pending, prev.pending)
	return stats
}

// feedSource is where the activity feed comes from for one request.
type feedSource interface {
	items(ctx context.Context, s *DashboardService, acc *models.Account, period models.Period, limit int) ([]models.RecentActivityItem, error)
}

// loggedFeed projects the stored activity log. The period does not apply here.
type loggedFeed struct {
	entries []models.Activity
}

// derivedFeed synthesizes LEAD_CREATED items from the account's leads.
type derivedFeed struct{}

func (f loggedFeed) items(_ context.Context, s *DashboardService, _ *models.Account, _ models.Period, limit int) ([]models.RecentActivityItem, error) {
	now := s.now()
	entries := f.entries
	if len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]models.RecentActivityItem, 0, len(entries))
	for i, a := range entries {
		id := a.ID
		if id == "" {
			id = a.Metadata.LeadID
		}
		if id == "" {
			id = fmt.Sprintf("act-%d", i)
		}
		at := a.CreatedAt.In(s.Location)
		out = append(out, models.RecentActivityItem{
			ID:          id,
			Date:        formatRelativeDate(at, now),
			DateTime:    dateKey(at),
			Type:        a.Type,
			Description: a.Description,
			CompanyName: a.Metadata.CompanyName,
			LeadID:      a.Metadata.LeadID,
		})
	}
	return out, nil
}

func (derivedFeed) items(ctx context.Context, s *DashboardService, acc *models.Account, period models.Period, limit int) ([]models.RecentActivityItem, error) {
	now := s.now()
	filter := models.LeadFilter{AccountID: acc.ID}
	if rng := ResolvePeriod(period, now); rng != nil {
		filter.From = &rng.Start
	}
	leads, err := s.Leads.List(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	out := make([]models.RecentActivityItem, 0, len(leads))
	for _, l := range leads {
		at := l.CreatedAt.In(s.Location)
		out = append(out, models.RecentActivityItem{
			ID:          l.ID,
			Date:        formatRelativeDate(at, now),
			DateTime:    dateKey(at),
			Type:        models.ActivityLeadCreated,
			Description: "Lead: " + l.CompanyName,
			CompanyName: l.CompanyName,
			LeadID:      l.ID,
		})
	}
	return out, nil
}

func (s *DashboardService) selectFeed(ctx context.Context, acc *models.Account, limit int) (feedSource, error) {
	entries, err := s.Accounts.ListActivities(ctx, acc.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	if len(entries) > 0 {
		return loggedFeed{entries: entries}, nil
	}
	return derivedFeed{}, nil
}

// RecentActivity returns up to limit feed items, newest first.
func (s *DashboardService) RecentActivity(ctx context.Context, acc *models.Account, period models.Period, limit int) []models.RecentActivityItem {
	empty := []models.RecentActivityItem{}
	if acc == nil {
		return empty
	}
	limit = clampLimit(limit, DefaultActivityLimit, MaxActivityLimit)

	feed, err := s.selectFeed(ctx, acc, limit)
	if err != nil {
		log.Printf("[dashboard][activity] account=%s: %v", acc.ID, err)
		return empty
	}
	items, err := feed.items(ctx, s, acc, period, limit)
	if err != nil {
		log.Printf("[dashboard][activity] account=%s period=%s: %v", acc.ID, period, err)
		return empty
	}
	return items
}

// RecentLeads returns the most recently created leads of the account.
func (s *DashboardService) RecentLeads(ctx context.Context, acc *models.Account, limit int) []models.RecentLeadItem {
	empty := []models.RecentLeadItem{}
	if acc == nil {
		return empty
	}
	limit = clampLimit(limit, DefaultLeadsLimit, MaxLeadsLimit)

	leads, err := s.Leads.List(ctx, models.LeadFilter{AccountID: acc.ID}, limit)
	if err != nil {
		log.Printf("[dashboard][leads] account=%s: %v", acc.ID, err)
		return empty
	}
	out := make([]models.RecentLeadItem, 0, len(leads))
	for _, l := range leads {
		at := l.CreatedAt.In(s.Location)
		out = append(out, models.RecentLeadItem{
			ID:          l.ID,
			Name:        l.CompanyName,
			CompanyName: l.CompanyName,
			LastLead: models.LastLead{
				Date:        formatLongDate(at),
				DateTime:    dateKey(at),
				Status:      l.Status,
				CompanyName: l.CompanyName,
			},
		})
	}
	return out
}

// Bundle loads the whole dashboard page for one period.
func (s *DashboardService) Bundle(ctx context.Context, acc *models.Account, period models.Period) models.DashboardBundle {
	return models.DashboardBundle{
		Stats:          s.Stats(ctx, acc, period),
		RecentActivity: s.RecentActivity(ctx, acc, period, DefaultActivityLimit),
		RecentLeads:    s.RecentLeads(ctx, acc, DefaultLeadsLimit),
	}
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

const longDateLayout = "2 January 2006"

func formatLongDate(t time.Time) string {
	return t.Format(longDateLayout)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// formatRelativeDate compares calendar days in now's location.
func formatRelativeDate(t, now time.Time) string {
	t = t.In(now.Location())
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	ty, tm, td := t.Date()
	day := time.Date(ty, tm, td, 0, 0, 0, 0, now.Location())

	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	return formatLongDate(t)
}
