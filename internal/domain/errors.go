package domain

import "errors"

var (
	// ErrCatalogNotFound signals a missing or unreadable catalog file.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrArtifactsMissing signals missing or corrupt persisted artifacts.
	ErrArtifactsMissing = errors.New("artifacts missing or corrupt")
	// ErrResourceExhausted signals that fitting exceeded the matrix entry budget.
	ErrResourceExhausted = errors.New("resource exhausted")
	// ErrRateLimited signals a rate limit at the intent provider.
	ErrRateLimited = errors.New("rate limited")
	// ErrIntentProviderError signals an intent provider failure.
	ErrIntentProviderError = errors.New("intent provider error")
	// ErrRowCountMismatch signals a catalog/matrix row count divergence.
	ErrRowCountMismatch = errors.New("matrix row count does not match catalog")
)
