package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The middleware verifies signatures over these exact renderings; any
// drift breaks login and 2FA.

func TestLoginMessage(t *testing.T) {
	got := LoginMessage("2026-09-01T00:00:00Z", "0xdeadbeef")

	want := "Welcome to 🌽Masa Finance!\n\n" +
		"Login with your soulbound web3 identity to unleash the power of DeFi.\n\n" +
		"Your signature is valid till: 2026-09-01T00:00:00Z.\n" +
		"Challenge: 0xdeadbeef"
	assert.Equal(t, want, got)
}

func TestAttestationMessage(t *testing.T) {
	got := AttestationMessage("42", "+15550001111", "123456")
	assert.Equal(t, "Identity: 42 Phone Number: +15550001111 Code: 123456", got)
}
