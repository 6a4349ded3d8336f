package chain

import (
	"context"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"soulclaim/config"
	"soulclaim/internal/domain/entity"
	"soulclaim/internal/domain/service"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// soulStoreABI covers the quote view and the two purchase variants of the
// store contract. The zero payment-method address selects native-currency
// payment.
const soulStoreABI = `[
	{"type":"function","name":"purchaseNameInfo","stateMutability":"view",
	 "inputs":[{"name":"name","type":"string"},{"name":"yearsPeriod","type":"uint256"}],
	 "outputs":[{"name":"priceInETH","type":"uint256"}]},
	{"type":"function","name":"purchaseIdentityAndName","stateMutability":"payable",
	 "inputs":[{"name":"paymentMethod","type":"address"},{"name":"name","type":"string"},
	           {"name":"yearsPeriod","type":"uint256"},{"name":"tokenURI","type":"string"}],
	 "outputs":[]},
	{"type":"function","name":"purchaseName","stateMutability":"payable",
	 "inputs":[{"name":"paymentMethod","type":"address"},{"name":"name","type":"string"},
	           {"name":"yearsPeriod","type":"uint256"},{"name":"tokenURI","type":"string"}],
	 "outputs":[]}
]`

// soulStore implements service.SoulStore against the store contract.
type soulStore struct {
	client       *Client
	address      common.Address
	abi          abi.ABI
	gasLimit     uint64
	gasMargin    int64
	confirmAfter time.Duration
	pollEvery    time.Duration
	logger       *slog.Logger
}

// NewSoulStore is the constructor for soulStore.
func NewSoulStore(client *Client, cfg *config.Config, logger *slog.Logger) (service.SoulStore, error) {
	parsed, err := abi.JSON(strings.NewReader(soulStoreABI))
	if err != nil {
		return nil, errors.Wrap(err, "parse soul store abi")
	}

	return &soulStore{
		client:       client,
		address:      common.HexToAddress(cfg.Chain.SoulStoreContract),
		abi:          parsed,
		gasLimit:     cfg.Chain.GasLimit,
		gasMargin:    cfg.Chain.GasMarginPercent,
		confirmAfter: cfg.Chain.ConfirmTimeout,
		pollEvery:    cfg.Chain.ConfirmPollInterval,
		logger:       logger,
	}, nil
}

// Quote implements service.SoulStore.
func (s *soulStore) Quote(ctx context.Context, name string, years int) (*entity.PurchaseQuote, error) {
	data, err := s.abi.Pack("purchaseNameInfo", name, big.NewInt(int64(years)))
	if err != nil {
		return nil, errors.Wrap(err, "pack purchaseNameInfo")
	}

	callCtx, cancel := s.client.callCtx(ctx)
	defer cancel()

	raw, err := s.client.eth.CallContract(callCtx, ethereum.CallMsg{To: &s.address, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "call purchaseNameInfo")
	}

	values, err := s.abi.Unpack("purchaseNameInfo", raw)
	if err != nil {
		return nil, errors.Wrap(err, "unpack purchaseNameInfo")
	}

	price, ok := values[0].(*big.Int)
	if !ok {
		return nil, errors.Errorf("unexpected purchaseNameInfo result %T", values[0])
	}

	return &entity.PurchaseQuote{Name: name, Years: years, PriceWei: price}, nil
}

// Purchase implements service.SoulStore. The gas price is fetched and
// margined here, at submission time, never reused from an earlier quote or
// transaction.
func (s *soulStore) Purchase(
	ctx context.Context,
	signer service.Signer,
	quote *entity.PurchaseQuote,
	metadataRef string,
	variant entity.PurchaseVariant,
) (*entity.TransactionRecord, error) {
	callCtx, cancel := s.client.callCtx(ctx)
	defer cancel()

	suggested, err := s.client.eth.SuggestGasPrice(callCtx)
	if err != nil {
		return nil, errors.Wrap(err, "suggest gas price")
	}
	gasPrice := marginGasPrice(suggested, s.gasMargin)

	nonce, err := s.client.eth.PendingNonceAt(callCtx, signer.Address())
	if err != nil {
		return nil, errors.Wrap(err, "pending nonce")
	}

	data, err := s.abi.Pack(string(variant),
		common.Address{}, quote.Name, big.NewInt(int64(quote.Years)), entity.TokenURIPrefix+metadataRef)
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s", variant)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      s.gasLimit,
		To:       &s.address,
		Value:    quote.PriceWei,
		Data:     data,
	})

	signed, err := signer.SignTx(tx, s.client.chainID)
	if err != nil {
		return nil, errors.Wrap(err, "sign transaction")
	}

	if err := s.client.eth.SendTransaction(callCtx, signed); err != nil {
		return nil, errors.Wrapf(err, "send %s transaction", variant)
	}

	s.logger.Info("Transaction sent",
		slog.String("method", string(variant)),
		slog.String("hash", signed.Hash().Hex()),
		slog.String("gas_price", gasPrice.String()))

	return &entity.TransactionRecord{
		Hash:     signed.Hash(),
		GasPrice: gasPrice,
		GasLimit: s.gasLimit,
		ValueWei: quote.PriceWei,
		Status:   entity.TxPending,
	}, nil
}

// WaitMined implements service.SoulStore: receipt polling under the
// confirmation timeout.
func (s *soulStore) WaitMined(ctx context.Context, record *entity.TransactionRecord) error {
	ctx, cancel := context.WithTimeout(ctx, s.confirmAfter)
	defer cancel()

	ticker := time.NewTicker(s.pollEvery)
	defer ticker.Stop()

	for {
		receipt, err := s.client.eth.TransactionReceipt(ctx, record.Hash)
		switch {
		case err == nil && receipt.Status == types.ReceiptStatusSuccessful:
			record.Status = entity.TxConfirmed

			return nil
		case err == nil:
			record.Status = entity.TxFailed

			return errors.Errorf("transaction %s reverted", record.Hash.Hex())
		case !errors.Is(err, ethereum.NotFound):
			record.Status = entity.TxFailed

			return errors.Wrapf(err, "receipt of %s", record.Hash.Hex())
		}

		select {
		case <-ctx.Done():
			record.Status = entity.TxFailed

			return errors.Wrapf(ctx.Err(), "waiting for %s", record.Hash.Hex())
		case <-ticker.C:
		}
	}
}

// marginGasPrice applies the configured percentage to a suggested gas price,
// e.g. 110 -> suggested * 110 / 100.
func marginGasPrice(suggested *big.Int, percent int64) *big.Int {
	margined := new(big.Int).Mul(suggested, big.NewInt(percent))

	return margined.Div(margined, big.NewInt(100))
}
