package usecase

// DomainError covers client input problems and not-found conditions:
// states the caller must render, never retried.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError covers infrastructure failures (store unreachable,
// upload failed) surfaced as 500 at the handler boundary.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func NewTechnicalError(code, message string) *TechnicalError {
	return &TechnicalError{Code: code, Message: message}
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
