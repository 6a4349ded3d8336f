// Package chain adapts the domain's registry, store, wallet and signing
// contracts onto a JSON-RPC Ethereum endpoint via go-ethereum.
package chain

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	"soulclaim/config"
	"soulclaim/internal/domain/service"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

// Client wraps one ethclient connection with the per-call-class timeouts the
// adapters share.
type Client struct {
	eth         *ethclient.Client
	chainID     *big.Int
	callTimeout time.Duration
	logger      *slog.Logger
}

// New dials the configured RPC endpoint and resolves the chain id once.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, cfg.Chain.RPCURL)
	if err != nil {
		return nil, errors.Wrap(err, "dial rpc endpoint")
	}

	dialCtx, cancel := context.WithTimeout(ctx, cfg.Chain.CallTimeout)
	defer cancel()

	chainID, err := eth.ChainID(dialCtx)
	if err != nil {
		return nil, errors.Wrap(err, "resolve chain id")
	}

	logger.Info("Connected to chain",
		slog.String("rpc", cfg.Chain.RPCURL),
		slog.String("chain_id", chainID.String()))

	return &Client{
		eth:         eth,
		chainID:     chainID,
		callTimeout: cfg.Chain.CallTimeout,
		logger:      logger,
	}, nil
}

// callCtx bounds a view call with the configured RPC call timeout.
func (c *Client) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.callTimeout)
}

// Balance implements service.WalletReader.
func (c *Client) Balance(ctx context.Context, addr common.Address) (*big.Int, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	balance, err := c.eth.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "balance of %s", addr.Hex())
	}

	return balance, nil
}

// NewWalletReader exposes the client under its domain contract for wiring.
func NewWalletReader(c *Client) service.WalletReader {
	return c
}
