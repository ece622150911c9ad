package ports

import "context"

// ExplanationCache stores explanations so repeated topics skip the provider.
type ExplanationCache interface {
	// Get returns the cached explanation for a topic key.
	// Returns domain.ErrCacheMiss if no entry exists.
	Get(ctx context.Context, key string) (string, error)

	// Set stores an explanation under a topic key.
	Set(ctx context.Context, key string, text string) error

	// Delete removes an entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
