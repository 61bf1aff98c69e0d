package domain

import "errors"

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrInvalidSubmission  = errors.New("invalid listing submission")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrSessionNotFound    = errors.New("session not found")
	ErrTokenInvalid       = errors.New("invalid jwt token")
	ErrInvalidCatalog     = errors.New("invalid catalog data")
)
