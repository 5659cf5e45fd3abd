package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/backfrontdevops/banking-api/internal/core/domain"
	"github.com/backfrontdevops/banking-api/internal/core/ports"
)

// AccountService implements account creation, listing, deposits and the
// detail view.
type AccountService struct {
	repo ports.AccountRepository
	log  zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, log: log}
}

// CreateAccount opens a new account owned by the caller. The IBAN is taken
// as-is: no format validation and no uniqueness check, matching the
// accepted-input behaviour of the original system. The balance is left to
// the storage default of zero.
func (s *AccountService) CreateAccount(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	account := &domain.Account{
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		IBAN:      input.IBAN,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create account")
		return nil, err
	}

	s.log.Info().Str("account_id", created.ID).Str("owner_id", created.OwnerID).Msg("account created")
	return created, nil
}

// ListOwned returns every account owned by ownerID.
func (s *AccountService) ListOwned(ctx context.Context, ownerID string) ([]*domain.Account, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Deposit credits an owned account. The amount must be strictly positive;
// nothing is read or written otherwise. The ownership gate and the balance
// update are one atomic repository call, so a deposit against an IBAN the
// caller does not own fails without touching any balance.
func (s *AccountService) Deposit(ctx context.Context, input ports.DepositInput) (*ports.DepositResult, error) {
	if input.Amount.Sign() <= 0 {
		return nil, domain.ErrNonPositiveAmount
	}

	newBalance, err := s.repo.Credit(ctx, input.IBAN, input.OwnerID, input.Amount)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("owner_id", input.OwnerID).
		Str("iban", input.IBAN).
		Str("amount", input.Amount.String()).
		Str("balance", newBalance.String()).
		Msg("deposit applied")

	return &ports.DepositResult{
		IBAN:       input.IBAN,
		Amount:     input.Amount,
		NewBalance: newBalance,
	}, nil
}

// GetAccountDetail returns the detail view of an owned account. The
// transaction lists are stubs: ongoing is always empty and the history is
// the fixed placeholder set, never derived from deposits.
func (s *AccountService) GetAccountDetail(ctx context.Context, ownerID, iban string) (*ports.AccountDetail, error) {
	account, err := s.repo.FindOwned(ctx, iban, ownerID)
	if err != nil {
		return nil, err
	}

	return &ports.AccountDetail{
		Name:                account.Name,
		CreatedAt:           account.CreatedAt,
		IBAN:                account.IBAN,
		OwnerID:             account.OwnerID,
		Balance:             account.Balance,
		OngoingTransactions: []domain.TransactionEntry{},
		History:             domain.PlaceholderHistory(),
	}, nil
}
