package entity

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// MetadataSuffix is appended to a bare name when asking the middleware to
// store the token metadata.
const MetadataSuffix = ".soul"

// TokenURIPrefix prefixes the Arweave transaction id handed to the purchase
// call.
const TokenURIPrefix = "ar://"

// PurchaseQuote is a priced purchase offer returned by the store contract.
type PurchaseQuote struct {
	Name     string
	Years    int
	PriceWei *big.Int // Native-currency price; becomes the transaction value.
}

// PurchaseVariant selects the store method used for a purchase.
type PurchaseVariant string

const (
	// VariantIdentityAndName mints both the identity token and the name;
	// used for the address's first registration.
	VariantIdentityAndName PurchaseVariant = "purchaseIdentityAndName"

	// VariantNameOnly mints only the name; used once the address already
	// holds an identity token.
	VariantNameOnly PurchaseVariant = "purchaseName"
)

// TxStatus tracks the lifecycle of an on-chain submission.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
)

// TransactionRecord describes one on-chain submission. It transitions
// pending -> confirmed on a successful receipt, pending -> failed on a
// submission or confirmation error.
type TransactionRecord struct {
	Hash     common.Hash
	GasPrice *big.Int
	GasLimit uint64
	ValueWei *big.Int
	Status   TxStatus
}
