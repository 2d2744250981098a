package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                      // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                     // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "dev/secrets.dev.jsonc" // Path to config.json in development environment
)

type Config struct {
	Secrets             Secrets        `json:"-"`
	LogFile             string         `json:"log_file"`
	LogLevel            string         `json:"log_level"`
	ServicePort         uint           `json:"service_port"`
	DbFile              string         `json:"db_file"`
	BlockedAccountsFile string         `json:"blocked_accounts_file"`
	Dispatch            DispatchConfig `json:"dispatch"`
	Strategy            StrategyConfig `json:"strategy"`
	Platform            PlatformConfig `json:"platform"`
}

type DispatchConfig struct {
	PollSec        int `json:"poll_sec"`         // How often the dispatcher looks for due tweets
	MaxParallel    int `json:"max_parallel"`     // Max in-flight platform posts at any time
	BatchSize      int `json:"batch_size"`       // Max due tweets fetched per poll
	BackoffBaseSec int `json:"backoff_base_sec"` // First retry delay; doubles per attempt
	BackoffMaxSec  int `json:"backoff_max_sec"`  // Ceiling on the retry delay
	DailyPostLimit int `json:"daily_post_limit"` // Per-user posts per day; 0 means unlimited
	DefaultRetries int `json:"default_retries"`  // max_retries when a request doesn't specify one
}

type StrategyConfig struct {
	CycleSec         int `json:"cycle_sec"`          // How often active strategies get a cycle
	TargetBatchSize  int `json:"target_batch_size"`  // Max targets considered per strategy per cycle
	TransientWaitSec int `json:"transient_wait_sec"` // Defer delay after a transient engagement error
	ClaimLeaseSec    int `json:"claim_lease_sec"`    // How long a claimed target stays off due queries
}

type PlatformConfig struct {
	BaseUrl    string  `json:"base_url"`
	TimeoutSec int     `json:"timeout_sec"`
	Rps        float64 `json:"rps"`
	Burst      int     `json:"burst"`
}

type Secrets struct {
	PlatformToken string   `json:"platform_token"`
	MetricsAuth   string   `json:"metrics_auth"`
	ApiKeys       []string `json:"api_keys"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	return &config
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
