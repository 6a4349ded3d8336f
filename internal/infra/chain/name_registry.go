package chain

import (
	"context"
	"log/slog"
	"math/big"
	"strings"

	"soulclaim/config"
	"soulclaim/internal/domain/service"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// soulNameABI covers the three view calls the workflow needs from the soul
// name contract.
const soulNameABI = `[
	{"type":"function","name":"isAvailable","stateMutability":"view",
	 "inputs":[{"name":"name","type":"string"}],
	 "outputs":[{"name":"available","type":"bool"}]},
	{"type":"function","name":"tokenOfOwnerByIndex","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"},{"name":"index","type":"uint256"}],
	 "outputs":[{"name":"tokenId","type":"uint256"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"}],
	 "outputs":[{"name":"balance","type":"uint256"}]}
]`

// nameRegistry implements service.NameRegistry against the soul name contract.
type nameRegistry struct {
	client  *Client
	address common.Address
	abi     abi.ABI
	logger  *slog.Logger
}

// NewNameRegistry is the constructor for nameRegistry.
func NewNameRegistry(client *Client, cfg *config.Config, logger *slog.Logger) (service.NameRegistry, error) {
	parsed, err := abi.JSON(strings.NewReader(soulNameABI))
	if err != nil {
		return nil, errors.Wrap(err, "parse soul name abi")
	}

	return &nameRegistry{
		client:  client,
		address: common.HexToAddress(cfg.Chain.SoulNameContract),
		abi:     parsed,
		logger:  logger,
	}, nil
}

// view packs, executes and unpacks one read-only contract call.
func (r *nameRegistry) view(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := r.abi.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s", method)
	}

	ctx, cancel := r.client.callCtx(ctx)
	defer cancel()

	raw, err := r.client.eth.CallContract(ctx, ethereum.CallMsg{To: &r.address, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "call %s", method)
	}

	values, err := r.abi.Unpack(method, raw)
	if err != nil {
		return nil, errors.Wrapf(err, "unpack %s", method)
	}

	return values, nil
}

// IsAvailable implements service.NameRegistry. RPC failures propagate; they
// are never read as "unavailable".
func (r *nameRegistry) IsAvailable(ctx context.Context, name string) (bool, error) {
	values, err := r.view(ctx, "isAvailable", name)
	if err != nil {
		return false, err
	}

	available, ok := values[0].(bool)
	if !ok {
		return false, errors.Errorf("unexpected isAvailable result %T", values[0])
	}

	return available, nil
}

// IdentityOf implements service.NameRegistry. The call reverts out-of-range
// when the address owns nothing; that and every other failure reads as "no
// identity".
func (r *nameRegistry) IdentityOf(ctx context.Context, owner common.Address) (*big.Int, bool) {
	values, err := r.view(ctx, "tokenOfOwnerByIndex", owner, big.NewInt(0))
	if err != nil {
		r.logger.Debug("Identity lookup failed, treating as no identity",
			slog.String("owner", owner.Hex()), slog.Any("error", err))

		return nil, false
	}

	id, ok := values[0].(*big.Int)
	if !ok {
		return nil, false
	}

	return id, true
}

// OwnedNames implements service.NameRegistry, returning the -1 sentinel when
// the count cannot be read.
func (r *nameRegistry) OwnedNames(ctx context.Context, owner common.Address) int {
	values, err := r.view(ctx, "balanceOf", owner)
	if err != nil {
		r.logger.Warn("Token balance query failed",
			slog.String("owner", owner.Hex()), slog.Any("error", err))

		return -1
	}

	count, ok := values[0].(*big.Int)
	if !ok || !count.IsInt64() {
		return -1
	}

	return int(count.Int64())
}
