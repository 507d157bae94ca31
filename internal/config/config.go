package config

import (
	"encoding/hex"

	"github.com/spf13/viper"

	"nzcore/internal/errs"
)

// Config holds the facade-construction options a CLI or embedding
// application typically sources from flags, environment, or a file.
type Config struct {
	Home        string // directory for state/identity files, e.g. $HOME/.nzcore
	ChainID     string // override for identity.chain_id; empty means "use derived"
	InitialTime int64  // starting logical time; 0 means "use default (1)"
	PolicyExpr  string // CEL expression for the validator's policy layer; empty means "no policy"
	LogLevel    string // debug|info|warn|error
	LogFormat   string // json|text
}

// defaults mirrors the zero-value behavior documented on each field.
var defaults = Config{
	InitialTime: 1,
	LogLevel:    "info",
	LogFormat:   "text",
}

// New returns a viper instance pre-seeded with nzcore's defaults and
// environment variable binding (NZCORE_HOME, NZCORE_CHAIN_ID, etc.).
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("nzcore")
	v.AutomaticEnv()
	v.SetDefault("home", "")
	v.SetDefault("chain_id", "")
	v.SetDefault("initial_time", defaults.InitialTime)
	v.SetDefault("policy", "")
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	return v
}

// Load reads a Config out of v, applying defaults for anything unset.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = New()
	}
	cfg := Config{
		Home:        v.GetString("home"),
		ChainID:     v.GetString("chain_id"),
		InitialTime: v.GetInt64("initial_time"),
		PolicyExpr:  v.GetString("policy"),
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
	}
	if cfg.InitialTime < 1 {
		cfg.InitialTime = defaults.InitialTime
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaults.LogFormat
	}
	if cfg.ChainID != "" && len(cfg.ChainID) != 64 {
		return Config{}, errs.Newf(errs.InvalidKey, "chain_id override must be 64 hex characters, got %d", len(cfg.ChainID))
	}
	if _, err := hex.DecodeString(cfg.ChainID); err != nil {
		return Config{}, errs.Newf(errs.InvalidKey, "chain_id override must be 64 hex characters: %v", err)
	}
	return cfg, nil
}
