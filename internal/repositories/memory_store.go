package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"affiliatehub/internal/models"
	"affiliatehub/internal/utils"
)

// MemoryStore keeps accounts and leads in process memory. It backs local runs
// without a database and the service tests.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
	leads    map[string]*models.Lead
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*models.Account),
		leads:    make(map[string]*models.Lead),
	}
}

// AddAccount registers an account manager; used for seeding.
func (s *MemoryStore) AddAccount(acc *models.Account) *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *acc
	if cp.ID == "" {
		cp.ID = utils.NewID()
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	cp.LeadIDs = append([]string(nil), acc.LeadIDs...)
	cp.Activities = append([]models.Activity(nil), acc.Activities...)
	s.accounts[cp.ID] = &cp
	out := cp
	return &out
}

// AddLead inserts a lead as-is without touching the account log; used for seeding.
func (s *MemoryStore) AddLead(lead *models.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *lead
	if cp.ID == "" {
		cp.ID = utils.NewID()
	}
	if !cp.Status.Valid() {
		cp.Status = models.LeadStatusNew
	}
	s.leads[cp.ID] = &cp
	lead.ID = cp.ID
}

func (s *MemoryStore) GetByExternalID(_ context.Context, externalID string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.ExternalID == externalID {
			cp := *acc
			cp.LeadIDs = append([]string(nil), acc.LeadIDs...)
			cp.Activities = nil
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID returns a full copy of the account including its log.
func (s *MemoryStore) GetByID(_ context.Context, id string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *acc
	cp.LeadIDs = append([]string(nil), acc.LeadIDs...)
	cp.Activities = append([]models.Activity(nil), acc.Activities...)
	return &cp, nil
}

func (s *MemoryStore) ListActivities(_ context.Context, accountID string, limit int) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, nil
	}
	n := len(acc.Activities)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]models.Activity(nil), acc.Activities[:n]...), nil
}

func matchLead(l *models.Lead, f models.LeadFilter) bool {
	if l.AccountID != f.AccountID {
		return false
	}
	if f.From != nil && l.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && l.CreatedAt.After(*f.To) {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, st := range f.Statuses {
		if l.Status == st {
			return true
		}
	}
	return false
}

func (s *MemoryStore) Count(_ context.Context, f models.LeadFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, l := range s.leads {
		if matchLead(l, f) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) List(_ context.Context, f models.LeadFilter, limit int) ([]*models.Lead, error) {
	s.mu.RLock()
	var out []*models.Lead
	for _, l := range s.leads {
		if matchLead(l, f) {
			cp := *l
			out = append(out, &cp)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) CreateWithActivity(_ context.Context, lead *models.Lead, activity models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[lead.AccountID]
	if !ok {
		return ErrAccountMissing
	}
	if lead.ID == "" {
		lead.ID = utils.NewID()
	}
	cp := *lead
	s.leads[cp.ID] = &cp

	acc.LeadIDs = append(acc.LeadIDs, cp.ID)
	activity.Metadata.LeadID = cp.ID
	acc.Activities = models.PrependActivity(acc.Activities, activity, models.ActivityLogCap)
	return nil
}
