package usecase

// Result is the outcome of a command operation. Validation failures and
// storage failures are both reported this way, never as a panic; the Code
// tells callers which class they got.
type Result struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

const (
	CodeInvalidInput  = "invalid_input"
	CodeNotFound      = "not_found"
	CodeConflict      = "conflict"
	CodeUnavailable   = "unavailable"
	CodeLimitExceeded = "limit_exceeded"
	CodeNotBorrowed   = "not_borrowed"
	CodeStorageError  = "storage_error"
)

func failure(code, message string) Result {
	return Result{Code: code, Message: message}
}

func success(message string) Result {
	return Result{OK: true, Message: message}
}
