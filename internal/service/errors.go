package service

import "errors"

var (
	ErrMalformedPayload = errors.New("malformed_payload")

	ErrAuthRequired         = errors.New("auth_required")
	ErrAuthInvalid          = errors.New("auth_invalid")
	ErrAuthExpired          = errors.New("auth_expired")
	ErrAuthInsufficientRole = errors.New("auth_insufficient_role")

	ErrChallengeInvalid          = errors.New("challenge_invalid")
	ErrChallengeExpired          = errors.New("challenge_expired")
	ErrChallengeAudienceMismatch = errors.New("challenge_audience_mismatch")
	ErrChallengeWrongAnswer      = errors.New("challenge_wrong_answer")

	ErrPostingAuthInvalid  = errors.New("posting_auth_invalid")
	ErrPostingAuthExpired  = errors.New("posting_auth_expired")
	ErrPostingAuthMismatch = errors.New("posting_auth_mismatch")
	ErrTooFast             = errors.New("too_fast")

	ErrNoSuchUser = errors.New("no_such_user")
	ErrAuthFailed = errors.New("auth_failed")
	ErrUserExists = errors.New("user_exists")

	ErrBoardNotFound  = errors.New("board_not_found")
	ErrBoardExists    = errors.New("board_exists")
	ErrThreadNotFound = errors.New("thread_not_found")
	ErrPostNotFound   = errors.New("post_not_found")
	// ErrPostIDTaken — id треда из count+1 уже занят (параллельные посты)
	ErrPostIDTaken = errors.New("post_id_taken")

	ErrStorageUnavailable = errors.New("storage_unavailable")
)

// IsAuthError — любая из ошибок RoleGate; клиенту они неразличимы
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthRequired) ||
		errors.Is(err, ErrAuthInvalid) ||
		errors.Is(err, ErrAuthExpired) ||
		errors.Is(err, ErrAuthInsufficientRole)
}

// storage оборачивает ошибку хранилища, сохраняя доменные sentinel-ошибки
func storage(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrBoardNotFound, ErrBoardExists, ErrThreadNotFound, ErrPostNotFound, ErrPostIDTaken, ErrNoSuchUser, ErrUserExists} {
		if errors.Is(err, known) {
			return err
		}
	}
	return errors.Join(ErrStorageUnavailable, err)
}
