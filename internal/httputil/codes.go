package httputil

// Machine-readable error codes returned alongside error messages so that
// clients can branch without parsing human-readable text.
const (
	CodeInvalidRequestBody = "invalid_request_body"
	CodeInternalError      = "internal_error"
	CodeTooManyRequests    = "too_many_requests"

	CodeUsernameRequired   = "username_required"
	CodeEmailRequired      = "email_required"
	CodePasswordRequired   = "password_required"
	CodeInvalidEmailFormat = "invalid_email_format"
	CodeUsernameTaken      = "username_taken"
	CodeInvalidCredentials = "invalid_credentials"
	CodeAccountNotEnabled  = "account_not_enabled"
	CodeInvalidToken       = "invalid_token"
	CodeTokenExpired       = "token_expired"
	CodeMissingAuth        = "missing_auth"
	CodeInvalidAuthHeader  = "invalid_auth_header"
	CodeVerificationFailed = "verification_failed"
	CodeUserNotFound       = "user_not_found"

	CodeNotFound     = "not_found"
	CodeNameTaken    = "name_taken"
	CodeAlreadyVoted = "already_voted"
	CodeInvalidVote  = "invalid_vote"
	CodeNameRequired = "name_required"
	CodeTextRequired = "text_required"
)
