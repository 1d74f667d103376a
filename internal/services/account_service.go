package services

import (
	"context"
	"fmt"

	"affiliatehub/internal/models"
)

type AccountService struct {
	Repo AccountStore
}

func NewAccountService(repo AccountStore) *AccountService {
	return &AccountService{Repo: repo}
}

// Resolve maps an identity-provider subject to its account. A subject without an
// account yields (nil, nil).
func (s *AccountService) Resolve(ctx context.Context, subject string) (*models.Account, error) {
	if subject == "" {
		return nil, nil
	}
	acc, err := s.Repo.GetByExternalID(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("resolve account: %w", err)
	}
	return acc, nil
}
