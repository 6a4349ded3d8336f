// Package config loads the runtime configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Chain        ChainConfig        `json:"chain" yaml:"chain"`
	Middleware   MiddlewareConfig   `json:"middleware" yaml:"middleware"`
	Registration RegistrationConfig `json:"registration" yaml:"registration"`
	Files        FilesConfig        `json:"files" yaml:"files"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ChainConfig defines the JSON-RPC endpoint and the registry contracts.
type ChainConfig struct {
	RPCURL            string `json:"rpcUrl" yaml:"rpcUrl" validate:"required,url"`
	SoulStoreContract string `json:"soulStoreContract" yaml:"soulStoreContract" validate:"required,eth_addr"`
	SoulNameContract  string `json:"soulNameContract" yaml:"soulNameContract" validate:"required,eth_addr"`

	// GasLimit is the fixed ceiling applied to every purchase transaction.
	GasLimit uint64 `json:"gasLimit" yaml:"gasLimit"`

	// GasMarginPercent scales the network-suggested gas price, e.g. 110 sends
	// at 1.10x the suggestion. Recomputed at every submission.
	GasMarginPercent int64 `json:"gasMarginPercent" yaml:"gasMarginPercent" validate:"gte=100"`

	CallTimeout         time.Duration `json:"callTimeout" yaml:"callTimeout"`
	ConfirmTimeout      time.Duration `json:"confirmTimeout" yaml:"confirmTimeout"`
	ConfirmPollInterval time.Duration `json:"confirmPollInterval" yaml:"confirmPollInterval"`
}

// MiddlewareConfig defines the HTTP session/2FA service endpoint and the
// browser-emulating headers it requires.
type MiddlewareConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
	Origin         string        `json:"origin" yaml:"origin"`
	Referer        string        `json:"referer" yaml:"referer"`
	UserAgent      string        `json:"userAgent" yaml:"userAgent"`
	AcceptLanguage string        `json:"acceptLanguage" yaml:"acceptLanguage"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// RegistrationConfig tunes the per-identity registration run.
type RegistrationConfig struct {
	// MaxDomains caps purchased names per identity, enforced against the
	// on-chain token balance before any purchase.
	MaxDomains int `json:"maxDomains" yaml:"maxDomains" validate:"gte=1"`

	// MinWalletBalanceEther is the native-currency floor below which no
	// transaction is attempted, as a decimal ether string.
	MinWalletBalanceEther string `json:"minWalletBalanceEther" yaml:"minWalletBalanceEther"`

	YearsMin int `json:"yearsMin" yaml:"yearsMin" validate:"gte=1"`
	YearsMax int `json:"yearsMax" yaml:"yearsMax" validate:"gtefield=YearsMin"`

	PhoneNumber string `json:"phoneNumber" yaml:"phoneNumber" validate:"required"`

	// Maintenance stops each run after the identity check; no 2FA code is
	// requested.
	Maintenance bool `json:"maintenance" yaml:"maintenance"`

	// SkipUnsaved skips identities that have no persisted session cookie
	// without making any network call.
	SkipUnsaved bool `json:"skipUnsaved" yaml:"skipUnsaved"`

	// PacingDelay is inserted between identities to respect external rate
	// limits.
	PacingDelay time.Duration `json:"pacingDelay" yaml:"pacingDelay"`
}

// FilesConfig points at the operator-supplied input files and the durable
// cookie cache.
type FilesConfig struct {
	Keys    string `json:"keys" yaml:"keys"`
	Domains string `json:"domains" yaml:"domains"`
	Cookies string `json:"cookies" yaml:"cookies"`
}

// LoadWithEnv loads <env>.yaml through koanf and applies environment-variable
// overrides, e.g. CHAIN_RPCURL overrides chain.rpcUrl.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// CHAIN_RPCURL -> chain.rpcurl; matching below is
			// case-insensitive so the YAML camelCase keys line up.
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads, defaults and validates the soulclaim configuration.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = "soulclaim"
	}
	if cfg.Chain.GasLimit == 0 {
		cfg.Chain.GasLimit = 700000
	}
	if cfg.Chain.GasMarginPercent == 0 {
		cfg.Chain.GasMarginPercent = 110
	}
	if cfg.Chain.CallTimeout == 0 {
		cfg.Chain.CallTimeout = 15 * time.Second
	}
	if cfg.Chain.ConfirmTimeout == 0 {
		cfg.Chain.ConfirmTimeout = 5 * time.Minute
	}
	if cfg.Chain.ConfirmPollInterval == 0 {
		cfg.Chain.ConfirmPollInterval = 5 * time.Second
	}
	if cfg.Middleware.RequestTimeout == 0 {
		cfg.Middleware.RequestTimeout = 30 * time.Second
	}
	if cfg.Registration.MaxDomains == 0 {
		cfg.Registration.MaxDomains = 1
	}
	if strings.TrimSpace(cfg.Registration.MinWalletBalanceEther) == "" {
		cfg.Registration.MinWalletBalanceEther = "0.1"
	}
	if cfg.Registration.YearsMin == 0 {
		cfg.Registration.YearsMin = 2
	}
	if cfg.Registration.YearsMax == 0 {
		cfg.Registration.YearsMax = 6
	}
	if cfg.Registration.PacingDelay == 0 {
		cfg.Registration.PacingDelay = 3 * time.Second
	}
	if cfg.Files.Keys == "" {
		cfg.Files.Keys = "keys.txt"
	}
	if cfg.Files.Domains == "" {
		cfg.Files.Domains = "domains.txt"
	}
	if cfg.Files.Cookies == "" {
		cfg.Files.Cookies = "cookies.json"
	}
}

// Validate checks the loaded configuration against the struct tags.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	return nil
}
