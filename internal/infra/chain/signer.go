package chain

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"soulclaim/internal/domain/service"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// walletSigner implements service.Signer for one secp256k1 private key.
type walletSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

type signerFactory struct{}

// NewSignerFactory is the constructor for the wallet signer factory.
func NewSignerFactory() service.SignerFactory {
	return signerFactory{}
}

// FromPrivateKey implements service.SignerFactory.
func (signerFactory) FromPrivateKey(hexKey string) (service.Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "parse private key")
	}

	return &walletSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address implements service.Signer.
func (s *walletSigner) Address() common.Address {
	return s.address
}

// SignMessage implements service.Signer with an EIP-191 personal signature.
func (s *walletSigner) SignMessage(message []byte) (string, error) {
	signature, err := crypto.Sign(accounts.TextHash(message), s.key)
	if err != nil {
		return "", errors.Wrap(err, "sign message")
	}

	// Shift V to the 27/28 convention wallets and verifiers expect.
	signature[crypto.RecoveryIDOffset] += 27

	return hexutil.Encode(signature), nil
}

// SignTx implements service.Signer.
func (s *walletSigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return nil, errors.Wrap(err, "sign transaction")
	}

	return signed, nil
}
