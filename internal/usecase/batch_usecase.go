package usecase

import "context"

// BatchUsecase walks the configured identity list strictly in order, one
// registration run at a time, with a pacing delay between identities.
type BatchUsecase interface {
	// Run processes every identity and returns only on configuration-level
	// failures (unreadable input files); per-identity failures are logged
	// and never stop the batch.
	Run(ctx context.Context) error
}
