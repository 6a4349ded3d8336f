// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"soulclaim/internal/domain/entity"
	"soulclaim/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines one identity's registration attempt.
type RegisterInput struct {
	Signer service.Signer // The identity's signing capability.
	Domain string         // Starting candidate soul name.
	Pool   []string       // Replacement candidates, consumed at most once each.
	Years  int            // Registration period in years.
}

// --- Output DTOs ---

// RegisterOutput carries the terminal result of a run. Expected failures are
// outcomes, not errors; an error from Register means something genuinely
// unexpected happened.
type RegisterOutput struct {
	Outcome     entity.Outcome
	Transaction *entity.TransactionRecord // Non-nil when a purchase was submitted.
}

// RegistrationUsecase runs the single-identity, single-pass registration
// state machine.
type RegistrationUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
}
