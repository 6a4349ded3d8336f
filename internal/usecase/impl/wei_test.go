package impl

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeiFromEther(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "whole ether", input: "1", want: "1000000000000000000"},
		{name: "decimal floor", input: "0.1", want: "100000000000000000"},
		{name: "small fraction", input: "0.000000001", want: "1000000000"},
		{name: "zero", input: "0", want: "0"},
		{name: "garbage", input: "ten", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := weiFromEther(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormatEther(t *testing.T) {
	wei, ok := new(big.Int).SetString("1234500000000000000", 10)
	require.True(t, ok)

	assert.Equal(t, "1.234500", formatEther(wei))
	assert.Equal(t, "0.000000", formatEther(big.NewInt(0)))
}
