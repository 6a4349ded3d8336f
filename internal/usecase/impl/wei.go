package impl

import (
	"math/big"

	"github.com/pkg/errors"
)

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// weiFromEther converts a decimal ether string like "0.1" to wei, truncating
// anything below one wei.
func weiFromEther(s string) (*big.Int, error) {
	amount, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, errors.Errorf("invalid ether amount: %q", s)
	}
	if amount.Sign() < 0 {
		return nil, errors.Errorf("negative ether amount: %q", s)
	}

	wei := new(big.Rat).Mul(amount, new(big.Rat).SetInt(weiPerEther))

	return new(big.Int).Quo(wei.Num(), wei.Denom()), nil
}

// formatEther renders a wei amount as a decimal ether string for log output.
func formatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	return new(big.Rat).SetFrac(wei, weiPerEther).FloatString(6)
}
