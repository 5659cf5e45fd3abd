package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/backfrontdevops/banking-api/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// ListByOwner returns every account whose owner_id matches ownerID.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Account, error)
	// FindOwned retrieves an account by IBAN scoped to its owner. The query
	// is filtered by both iban and owner_id so an account belonging to
	// someone else is indistinguishable from one that does not exist.
	FindOwned(ctx context.Context, iban, ownerID string) (*domain.Account, error)
	// Credit atomically adds amount to the balance of the caller's account
	// with the given IBAN and returns the new balance. The ownership check
	// and the mutation are a single statement, so concurrent deposits to
	// the same account cannot lose updates. Returns ErrAccountNotFound
	// when no owned account matches.
	Credit(ctx context.Context, iban, ownerID string, amount decimal.Decimal) (decimal.Decimal, error)
}
