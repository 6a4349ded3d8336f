package service

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Signer wraps one identity's signing capability. Keys are supplied by the
// operator, already generated; nothing here creates or persists them.
type Signer interface {
	// Address returns the account derived from the private key.
	Address() common.Address

	// SignMessage produces a hex-encoded EIP-191 personal signature over
	// the message bytes.
	SignMessage(message []byte) (string, error)

	// SignTx signs a transaction for the given chain.
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// SignerFactory builds a Signer from an operator-supplied private key.
type SignerFactory interface {
	FromPrivateKey(hexKey string) (Signer, error)
}
