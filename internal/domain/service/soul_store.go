package service

import (
	"context"

	"soulclaim/internal/domain/entity"
)

// SoulStore executes purchases against the store contract.
type SoulStore interface {
	// Quote prices a (name, years) purchase. The quoted native-currency
	// amount becomes the transaction value.
	Quote(ctx context.Context, name string, years int) (*entity.PurchaseQuote, error)

	// Purchase submits the purchase transaction with a freshly margined
	// gas price and returns a pending record immediately after submission.
	// Any failure before submission yields an error and no record; the
	// caller treats that as a recoverable step failure.
	Purchase(ctx context.Context, signer Signer, quote *entity.PurchaseQuote, metadataRef string, variant entity.PurchaseVariant) (*entity.TransactionRecord, error)

	// WaitMined blocks until the record's transaction is mined, updating
	// its status to confirmed or failed.
	WaitMined(ctx context.Context, record *entity.TransactionRecord) error
}
