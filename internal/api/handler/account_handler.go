package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/backfrontdevops/banking-api/internal/api/metrics"
	"github.com/backfrontdevops/banking-api/internal/core/domain"
	"github.com/backfrontdevops/banking-api/internal/core/ports"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Create handles POST /account_add/.
//
// @Summary      Open a new account for the caller
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccountRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /account_add/ [post]
func (h *AccountHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.CreateAccount(c.Request().Context(), ports.CreateAccountInput{
		OwnerID: userID,
		Name:    req.Name,
		IBAN:    req.IBAN,
	})
	if err != nil {
		return err
	}

	metrics.AccountsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// Me handles GET /me, returning the caller identity and owned-account count.
//
// @Summary      Caller identity and account count
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	userID, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	accounts, err := h.service.ListOwned(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		User:         identityResponse{ID: userID, Email: email},
		AccountCount: len(accounts),
	})
}

// Deposit handles POST /deposit.
//
// @Summary      Credit an owned account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      depositRequest  true  "Deposit amount and target IBAN"
// @Success      200   {object}  depositResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /deposit [post]
func (h *AccountHandler) Deposit(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req depositRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	// The original accepted the parameters on the query string.
	if req.Amount == "" {
		req.Amount = c.QueryParam("amount")
	}
	if req.IBAN == "" {
		req.IBAN = c.QueryParam("iban")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return domain.ErrNonPositiveAmount
	}

	result, err := h.service.Deposit(c.Request().Context(), ports.DepositInput{
		OwnerID: userID,
		IBAN:    req.IBAN,
		Amount:  amount,
	})
	if err != nil {
		metrics.DepositsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.DepositsTotal.WithLabelValues("success").Inc()
	amt, _ := result.Amount.Float64()
	metrics.DepositedAmount.Observe(amt)

	return c.JSON(http.StatusOK, depositResponse{
		Message: fmt.Sprintf("Dépot de %s euros réussi. Il vous reste %s.", result.Amount, result.NewBalance),
		Balance: result.NewBalance,
	})
}

// Detail handles GET /compte/:iban.
//
// @Summary      Account detail view
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        iban  path      string  true  "Account IBAN"
// @Success      200   {object}  accountDetailResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /compte/{iban} [get]
func (h *AccountHandler) Detail(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetAccountDetail(c.Request().Context(), userID, c.Param("iban"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, accountDetailResponse{
		Name:      detail.Name,
		CreatedAt: detail.CreatedAt.UTC(),
		IBAN:      detail.IBAN,
		OwnerID:   detail.OwnerID,
		Balance:   detail.Balance,
		Ongoing:   detail.OngoingTransactions,
		History:   detail.History,
	})
}
