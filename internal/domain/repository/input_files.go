package repository

import "context"

// CredentialRepository loads the operator-supplied private keys, one per
// identity, in batch order. Load failures are configuration-level and abort
// the whole batch.
type CredentialRepository interface {
	LoadKeys(ctx context.Context) ([]string, error)
}

// DomainPoolRepository loads the candidate soul name pool.
type DomainPoolRepository interface {
	LoadDomains(ctx context.Context) ([]string, error)
}
