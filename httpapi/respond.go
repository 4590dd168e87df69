package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mithaq/agreement"
	"mithaq/auth"
	"mithaq/catalog"
	"mithaq/dispute"
	"mithaq/invite"
	"mithaq/ticket"
)

// ErrorBody is the standardized error object.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// domainError maps service sentinel errors onto HTTP statuses. Anything
// unmatched is a 500.
func domainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, agreement.ErrAgreementNotFound),
		errors.Is(err, dispute.ErrNotFound),
		errors.Is(err, invite.ErrInviteNotFound),
		errors.Is(err, ticket.ErrTicketNotFound),
		errors.Is(err, auth.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, agreement.ErrNotOwner),
		errors.Is(err, agreement.ErrNotCounterparty),
		errors.Is(err, dispute.ErrForbidden):
		respondError(c, http.StatusForbidden, "forbidden", err.Error(), nil)
	case errors.Is(err, agreement.ErrStateGuard),
		errors.Is(err, agreement.ErrNotRendered),
		errors.Is(err, agreement.ErrNotFullyExecuted),
		errors.Is(err, agreement.ErrCounterpartySigned),
		errors.Is(err, agreement.ErrNotEditable),
		errors.Is(err, invite.ErrOwnInvite),
		errors.Is(err, invite.ErrInviteUsed),
		errors.Is(err, dispute.ErrBadStatus),
		errors.Is(err, auth.ErrDuplicateEmail):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case errors.Is(err, agreement.ErrScholarDispatch):
		respondError(c, http.StatusBadGateway, "dispatch_failed", err.Error(), nil)
	case errors.Is(err, catalog.ErrKindNotFound),
		errors.Is(err, agreement.ErrCommentRequired),
		errors.Is(err, auth.ErrWeakPassword):
		respondError(c, http.StatusBadRequest, "bad_request", err.Error(), nil)
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
