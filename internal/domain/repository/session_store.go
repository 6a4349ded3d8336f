// Package repository defines the persistence contracts consumed by the use
// cases. Implementations live under internal/infra/persistence.
package repository

import "context"

// SessionStore is the durable address -> session-cookie mapping. It is loaded
// once at process start and fully re-serialized after every new login.
// Single-writer: the batch processes identities strictly sequentially.
type SessionStore interface {
	// Get returns the cached cookie for an address, if any. Never performs I/O.
	Get(address string) (string, bool)

	// Put records a freshly minted cookie and persists the whole mapping
	// durably before returning.
	Put(ctx context.Context, address, cookie string) error
}
