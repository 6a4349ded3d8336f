package chain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Throwaway key with a well-known derived address.
const (
	testKeyHex  = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testKeyAddr = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestSignerFactory_FromPrivateKey(t *testing.T) {
	factory := NewSignerFactory()

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "bare hex", key: testKeyHex},
		{name: "0x prefix", key: "0x" + testKeyHex},
		{name: "surrounding whitespace", key: "  " + testKeyHex + "\n"},
		{name: "not hex", key: "zz0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", wantErr: true},
		{name: "too short", key: "abcdef", wantErr: true},
		{name: "empty", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer, err := factory.FromPrivateKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, common.HexToAddress(testKeyAddr), signer.Address())
		})
	}
}

func TestWalletSigner_SignMessage(t *testing.T) {
	signer, err := NewSignerFactory().FromPrivateKey(testKeyHex)
	require.NoError(t, err)

	message := []byte("Welcome!\nChallenge: 0xdeadbeef")
	encoded, err := signer.SignMessage(message)
	require.NoError(t, err)

	signature, err := hexutil.Decode(encoded)
	require.NoError(t, err)
	require.Len(t, signature, crypto.SignatureLength)

	// V carries the wallet-style 27/28 convention; shift it back before
	// recovering the signing key.
	assert.Contains(t, []byte{27, 28}, signature[crypto.RecoveryIDOffset])
	signature[crypto.RecoveryIDOffset] -= 27

	pubkey, err := crypto.SigToPub(accounts.TextHash(message), signature)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), crypto.PubkeyToAddress(*pubkey))
}

func TestWalletSigner_SignTx(t *testing.T) {
	signer, err := NewSignerFactory().FromPrivateKey(testKeyHex)
	require.NoError(t, err)

	chainID := big.NewInt(5)
	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    7,
		GasPrice: big.NewInt(1100),
		Gas:      700000,
		To:       &to,
		Value:    big.NewInt(1),
	})

	signed, err := signer.SignTx(tx, chainID)
	require.NoError(t, err)

	from, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), from)
}

func TestMarginGasPrice(t *testing.T) {
	tests := []struct {
		name      string
		suggested int64
		percent   int64
		want      int64
	}{
		{name: "ten percent margin", suggested: 1000, percent: 110, want: 1100},
		{name: "no margin", suggested: 1000, percent: 100, want: 1000},
		{name: "rounds down", suggested: 33, percent: 110, want: 36},
		{name: "zero suggestion", suggested: 0, percent: 110, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := marginGasPrice(big.NewInt(tt.suggested), tt.percent)
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}
