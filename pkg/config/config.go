package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the custody service configuration.
// It is loaded once at startup and passed by pointer to every component; nothing mutates it afterwards.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Ethereum  EthereumConfig  `yaml:"ethereum"`
	Keys      KeysConfig      `yaml:"keys"`
	Tokens    []TokenConfig   `yaml:"tokens" validate:"dive"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Finalizer FinalizerConfig `yaml:"finalizer"`
	Auth      AuthConfig      `yaml:"auth"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string        `yaml:"host" default:"localhost" validate:"required"`
	Port     int           `yaml:"port" default:"5432" validate:"min=1,max=65535"`
	User     string        `yaml:"user" validate:"required"`
	Password string        `yaml:"password"`
	Database string        `yaml:"database" default:"custody" validate:"required"`
	SSLMode  string        `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
	PoolSize int           `yaml:"pool_size" default:"10" validate:"min=1"`
	Timeout  time.Duration `yaml:"timeout" default:"10s"`
}

// GetConnectionString returns a PostgreSQL DSN with the password masked out.
// It is meant for logs; the driver is configured field by field in pgutil.
func (c DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf("postgres://%s:***@%s:%d/%s?sslmode=%s", c.User, c.Host, c.Port, c.Database, c.SSLMode)
}

// EthereumConfig contains chain gateway settings
type EthereumConfig struct {
	RPCURL          string        `yaml:"rpc_url" validate:"required,url"`
	ChainID         int64         `yaml:"chain_id" validate:"required,gt=0"`
	CallTimeout     time.Duration `yaml:"call_timeout" default:"10s"`
	RateLimit       float64       `yaml:"rate_limit" default:"20"`
	RateBurst       int           `yaml:"rate_burst" default:"10" validate:"min=1"`
	Confirmations   uint64        `yaml:"confirmations" default:"6" validate:"min=1"`
	GasBuffer       float64       `yaml:"gas_buffer" default:"1.2" validate:"gte=1"`
	DefaultTokenGas uint64        `yaml:"default_token_gas" default:"65000" validate:"gt=0"`
}

// KeysConfig names the environment variables holding the two BIP-39 mnemonics.
// The mnemonics themselves never live in the config file.
type KeysConfig struct {
	UserMnemonicEnv   string `yaml:"user_mnemonic_env" default:"USER_MNEMONIC" validate:"required"`
	MasterMnemonicEnv string `yaml:"master_mnemonic_env" default:"MAIN_USER_MNEMONIC" validate:"required"`
}

// TokenConfig describes one supported ERC-20 token
type TokenConfig struct {
	Symbol   string `yaml:"symbol" validate:"required,max=20"`
	Contract string `yaml:"contract" validate:"required,eth_addr"`
	Decimals int32  `yaml:"decimals" validate:"min=0,max=36"`
}

// SchedulerConfig contains settings for the periodic batch jobs
type SchedulerConfig struct {
	Enabled    bool          `yaml:"enabled" default:"true"`
	Interval   time.Duration `yaml:"interval" default:"30s"`
	JobTimeout time.Duration `yaml:"job_timeout" default:"2m"`
	RunOnStart bool          `yaml:"run_on_start"`
}

// FinalizerConfig contains settings for transaction finalization
type FinalizerConfig struct {
	StuckAfter time.Duration `yaml:"stuck_after" default:"2h"`
}

// AuthConfig contains JWKS settings for bearer token validation on the intake API
type AuthConfig struct {
	Enabled bool   `yaml:"enabled"`
	JWKSURL string `yaml:"jwks_url" validate:"omitempty,url"`
	Issuer  string `yaml:"issuer"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load reads the YAML file at configPath, expands ${ENV} references, applies defaults and validates the result.
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse builds a Config from raw YAML bytes.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(cfg.Tokens))
	for _, t := range cfg.Tokens {
		sym := strings.ToUpper(t.Symbol)
		if sym == NativeSymbol {
			return fmt.Errorf("token symbol %s is reserved for the native coin", t.Symbol)
		}
		if _, ok := seen[sym]; ok {
			return fmt.Errorf("duplicate token symbol %s", t.Symbol)
		}
		seen[sym] = struct{}{}
	}

	if cfg.Auth.Enabled && cfg.Auth.JWKSURL == "" {
		return fmt.Errorf("auth.jwks_url is required when auth is enabled")
	}
	if cfg.Scheduler.Enabled && cfg.Scheduler.Interval <= 0 {
		return fmt.Errorf("scheduler.interval must be positive")
	}
	return nil
}

// NativeSymbol is the asset symbol of the chain's native coin.
const NativeSymbol = "ETH"
