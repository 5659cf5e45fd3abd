package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/backfrontdevops/banking-api/internal/core/domain"
)

// CreateAccountInput carries all data needed to open a new account.
type CreateAccountInput struct {
	OwnerID string
	Name    string
	IBAN    string
}

// DepositInput carries the parameters of a deposit request.
type DepositInput struct {
	OwnerID string
	IBAN    string
	Amount  decimal.Decimal
}

// DepositResult is returned by the service after a successful deposit.
type DepositResult struct {
	IBAN       string
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
}

// AccountDetail is the full account view returned by GetAccountDetail.
// OngoingTransactions is always empty and History is a fixed placeholder
// list; the system keeps no transaction ledger.
type AccountDetail struct {
	Name                string
	CreatedAt           time.Time
	IBAN                string
	OwnerID             string
	Balance             decimal.Decimal
	OngoingTransactions []domain.TransactionEntry
	History             []domain.TransactionEntry
}

// AccountService defines use-case operations for accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	ListOwned(ctx context.Context, ownerID string) ([]*domain.Account, error)
	Deposit(ctx context.Context, input DepositInput) (*DepositResult, error)
	GetAccountDetail(ctx context.Context, ownerID, iban string) (*AccountDetail, error)
}
