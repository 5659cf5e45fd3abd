package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrNonPositiveAmount = errors.New("amount must be greater than zero")

// Account is a bank account owned by exactly one user. OwnerID is set once
// at creation and never changes. The IBAN carries no uniqueness guarantee:
// the original system accepted duplicate values and callers rely on the
// oldest matching account being picked.
type Account struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Name      string          `json:"name"`
	IBAN      string          `json:"iban"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
