package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/backfrontdevops/banking-api/internal/core/domain"
)

// AccountRepository implements ports.AccountRepository on PostgreSQL.
// Balances travel as NUMERIC and are scanned through strings into
// decimal.Decimal so no float arithmetic ever touches an amount.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	// The balance column is intentionally absent: creation relies on the
	// storage default of 0.
	query :=
		`INSERT INTO accounts (id, owner_id, name, iban, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, owner_id, name, iban, balance, created_at
		 `

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), account.OwnerID, account.Name, account.IBAN, account.CreatedAt)

	created, err := scanAccount(row)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

func (r *AccountRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Account, error) {
	query :=
		`SELECT id, owner_id, name, iban, balance, created_at FROM accounts
		 WHERE owner_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return accounts, nil
}

func (r *AccountRepository) FindOwned(ctx context.Context, iban, ownerID string) (*domain.Account, error) {
	// Ownership and existence collapse into one filter: an account owned
	// by someone else answers exactly like a missing one.
	query :=
		`SELECT id, owner_id, name, iban, balance, created_at FROM accounts
		 WHERE iban = $1 AND owner_id = $2
		 ORDER BY created_at
		 LIMIT 1
		 `

	row := r.db.QueryRowContext(ctx, query, iban, ownerID)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) Credit(ctx context.Context, iban, ownerID string, amount decimal.Decimal) (decimal.Decimal, error) {
	// Single atomic statement: the ownership gate and the balance update
	// cannot interleave with a concurrent deposit, and the row lock taken
	// by UPDATE serialises concurrent credits to the same account. The
	// LIMIT 1 subquery picks the oldest account when duplicate IBANs
	// exist, matching the historical lookup order.
	query :=
		`UPDATE accounts SET balance = balance + $1
		 WHERE id = (
		     SELECT id FROM accounts
		     WHERE iban = $2 AND owner_id = $3
		     ORDER BY created_at
		     LIMIT 1
		 )
		 RETURNING balance
		 `

	var raw string
	err := r.db.QueryRowContext(ctx, query, amount.String(), iban, ownerID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, domain.ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("db error: %w", err)
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse balance: %w", err)
	}
	return balance, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	account := &domain.Account{}
	var raw string
	if err := row.Scan(&account.ID, &account.OwnerID, &account.Name, &account.IBAN, &raw, &account.CreatedAt); err != nil {
		return nil, err
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}
	account.Balance = balance
	return account, nil
}
