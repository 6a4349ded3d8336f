package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Chain.RPCURL = "https://rpc.example.com"
	cfg.Chain.SoulStoreContract = "0x2222222222222222222222222222222222222222"
	cfg.Chain.SoulNameContract = "0x3333333333333333333333333333333333333333"
	cfg.Middleware.BaseURL = "https://middleware.example.com"
	cfg.Registration.PhoneNumber = "+15550001111"
	cfg.applyDefaults()

	return cfg
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, uint64(700000), cfg.Chain.GasLimit)
	assert.Equal(t, int64(110), cfg.Chain.GasMarginPercent)
	assert.Equal(t, 1, cfg.Registration.MaxDomains)
	assert.Equal(t, "0.1", cfg.Registration.MinWalletBalanceEther)
	assert.Equal(t, 2, cfg.Registration.YearsMin)
	assert.Equal(t, 6, cfg.Registration.YearsMax)
	assert.Equal(t, 3*time.Second, cfg.Registration.PacingDelay)
	assert.Equal(t, "keys.txt", cfg.Files.Keys)
	assert.Equal(t, "domains.txt", cfg.Files.Domains)
	assert.Equal(t, "cookies.json", cfg.Files.Cookies)
}

func TestConfig_DefaultsDoNotOverrideExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Chain.GasLimit = 500000
	cfg.Registration.MinWalletBalanceEther = "0.25"
	cfg.applyDefaults()

	assert.Equal(t, uint64(500000), cfg.Chain.GasLimit)
	assert.Equal(t, "0.25", cfg.Registration.MinWalletBalanceEther)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("missing rpc url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Chain.RPCURL = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("malformed contract address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Chain.SoulStoreContract = "not-an-address"
		require.Error(t, cfg.Validate())
	})

	t.Run("gas margin below 100", func(t *testing.T) {
		cfg := validConfig()
		cfg.Chain.GasMarginPercent = 90
		require.Error(t, cfg.Validate())
	})

	t.Run("years range inverted", func(t *testing.T) {
		cfg := validConfig()
		cfg.Registration.YearsMin = 5
		cfg.Registration.YearsMax = 3
		require.Error(t, cfg.Validate())
	})

	t.Run("missing phone number", func(t *testing.T) {
		cfg := validConfig()
		cfg.Registration.PhoneNumber = ""
		require.Error(t, cfg.Validate())
	})
}
