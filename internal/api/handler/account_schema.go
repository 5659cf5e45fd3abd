package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/backfrontdevops/banking-api/internal/core/domain"
)

type createAccountRequest struct {
	Name string `json:"nom" validate:"required"`
	IBAN string `json:"iban" validate:"required"`
}

type accountResponse struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"user_id"`
	Name      string          `json:"nom"`
	IBAN      string          `json:"iban"`
	Balance   decimal.Decimal `json:"solde"`
	CreatedAt time.Time       `json:"date_creation"`
}

type depositRequest struct {
	Amount string `json:"amount" query:"amount"`
	IBAN   string `json:"iban" query:"iban"`
}

type depositResponse struct {
	Message string          `json:"message"`
	Balance decimal.Decimal `json:"solde"`
}

// meResponse reproduces the original payload, owned-account count key
// included.
type meResponse struct {
	User         identityResponse `json:"user"`
	AccountCount int              `json:"Nombre de compte"`
}

type identityResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// accountDetailResponse keeps the original field names; the transaction
// lists are placeholders, not ledger data.
type accountDetailResponse struct {
	Name      string                    `json:"name"`
	CreatedAt time.Time                 `json:"date_creation"`
	IBAN      string                    `json:"iban"`
	OwnerID   string                    `json:"user"`
	Balance   decimal.Decimal           `json:"solde"`
	Ongoing   []domain.TransactionEntry `json:"transactions_on_going"`
	History   []domain.TransactionEntry `json:"transactions_historique"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		OwnerID:   a.OwnerID,
		Name:      a.Name,
		IBAN:      a.IBAN,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt.UTC(),
	}
}
