package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/backfrontdevops/banking-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes, keeping the
//     original user-facing message text.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Failed credentials answer 404 with the same message for a wrong password
// and an unknown email, so the endpoint cannot be used to enumerate users.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "L'email est déjà utilisé"
	case errors.Is(err, domain.ErrPasswordRequired):
		return http.StatusBadRequest, "Le mot de passe est requis"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusNotFound, "Email ou mdp incorrect"
	case errors.Is(err, domain.ErrTooManyLoginAttempts):
		return http.StatusTooManyRequests, "Trop de tentatives de connexion"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "Compte introuvable"
	case errors.Is(err, domain.ErrNonPositiveAmount):
		return http.StatusBadRequest, "Le montant doit être supérieur à zéro"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
