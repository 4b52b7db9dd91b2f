package http

import (
	"errors"
	"net/http"

	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

const (
	reasonMalformed     = "Malformed data"
	reasonNotAuthorized = "Not authorized"
	reasonInternal      = "Internal error"
)

// MapError переводит доменные ошибки в HTTP статус и тело APIError
func MapError(err error) (int, APIError) {
	switch {
	case errors.Is(err, bsvc.ErrMalformedPayload):
		return http.StatusBadRequest, APIError{Reason: reasonMalformed}

	// RoleGate: клиент не различает причины
	case bsvc.IsAuthError(err):
		return http.StatusForbidden, APIError{Reason: reasonNotAuthorized}

	// Challenge
	case errors.Is(err, bsvc.ErrChallengeInvalid):
		return http.StatusBadRequest, APIError{Reason: "Invalid token"}
	case errors.Is(err, bsvc.ErrChallengeExpired):
		return http.StatusBadRequest, APIError{Reason: "Token expired"}
	case errors.Is(err, bsvc.ErrChallengeAudienceMismatch):
		return http.StatusBadRequest, APIError{Reason: "This captcha wasn't issued to you"}
	case errors.Is(err, bsvc.ErrChallengeWrongAnswer):
		return http.StatusBadRequest, APIError{Reason: "You have mistyped the captcha"}

	// Posting
	case errors.Is(err, bsvc.ErrPostingAuthInvalid):
		return http.StatusBadRequest, APIError{Reason: "Invalid authorization"}
	case errors.Is(err, bsvc.ErrPostingAuthExpired):
		return http.StatusBadRequest, APIError{Reason: "Authorization expired."}
	case errors.Is(err, bsvc.ErrPostingAuthMismatch):
		return http.StatusBadRequest, APIError{Reason: "This authorization wasn't issued to you"}
	case errors.Is(err, bsvc.ErrTooFast):
		return http.StatusTooManyRequests, APIError{Reason: "You're posting too fast."}

	// Staff
	case errors.Is(err, bsvc.ErrNoSuchUser):
		return http.StatusBadRequest, APIError{Reason: "No such user"}
	case errors.Is(err, bsvc.ErrAuthFailed):
		return http.StatusUnauthorized, APIError{Reason: "Authentification failed"}
	case errors.Is(err, bsvc.ErrUserExists):
		return http.StatusConflict, APIError{Reason: "User already exists"}

	// Forum
	case errors.Is(err, bsvc.ErrBoardExists):
		return http.StatusConflict, APIError{Reason: "Board already exists"}
	case errors.Is(err, bsvc.ErrBoardNotFound):
		return http.StatusNotFound, APIError{Reason: "Unknown board"}
	case errors.Is(err, bsvc.ErrThreadNotFound):
		return http.StatusNotFound, APIError{Reason: "No such thread"}
	case errors.Is(err, bsvc.ErrPostNotFound):
		return http.StatusNotFound, APIError{Reason: "No such post"}
	case errors.Is(err, bsvc.ErrPostIDTaken):
		return http.StatusConflict, APIError{Reason: "Post number taken, try again"}
	}
	return http.StatusInternalServerError, APIError{Reason: reasonInternal}
}
