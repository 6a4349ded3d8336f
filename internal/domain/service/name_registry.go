// Package service defines the external-collaborator contracts the use cases
// depend on: the registry contracts, the middleware gateway, signing and the
// operator prompt.
package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NameRegistry answers read-only questions against the soul name contract.
type NameRegistry interface {
	// IsAvailable reports whether a soul name is free to purchase. An RPC
	// failure is returned as an error, never as "unavailable".
	IsAvailable(ctx context.Context, name string) (bool, error)

	// IdentityOf returns the first identity token owned by the address.
	// Any lookup failure, including the out-of-range revert on an empty
	// collection, reads as "no identity".
	IdentityOf(ctx context.Context, owner common.Address) (*big.Int, bool)

	// OwnedNames returns the number of soul name tokens the address owns,
	// or -1 when the query fails so "owns none" stays distinguishable
	// from "count unknown".
	OwnedNames(ctx context.Context, owner common.Address) int
}

// WalletReader exposes the native-currency balance of an account.
type WalletReader interface {
	Balance(ctx context.Context, addr common.Address) (*big.Int, error)
}
