// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
	"github.com/go-playground/validator/v10"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr               string   `env:"BIND_ADDR"                   flag:"bind-addr"                   flagDesc:"Bind address"                                         validate:"required"`
	SubscriptionKey        string   `env:"OCP_APIM_SUBSCRIPTION_KEY"   flag:"ocp-apim-subscription-key"   flagDesc:"Subscription key for the MoMo developer API"          validate:"required"`
	MoMoBaseURL            string   `env:"MOMO_BASE_URL"               flag:"momo-base-url"               flagDesc:"Base URL of the MoMo API"                             validate:"required,url"`
	TargetEnvironment      string   `env:"MOMO_TARGET_ENVIRONMENT"     flag:"momo-target-environment"     flagDesc:"X-Target-Environment sent with collection calls"      validate:"required"`
	ProviderCallbackHost   string   `env:"MOMO_PROVIDER_CALLBACK_HOST" flag:"momo-provider-callback-host" flagDesc:"Callback host registered against new MoMo API users"  validate:"required"`
	UpstreamTimeoutSeconds int      `env:"UPSTREAM_TIMEOUT_SECONDS"    flag:"upstream-timeout-seconds"    flagDesc:"Timeout for each MoMo call, 0 for none"               validate:"gte=0"`
	IgnoreBalanceFailure   bool     `env:"IGNORE_BALANCE_FAILURE"      flag:"ignore-balance-failure"      flagDesc:"Report success when only the balance check fails"`
	AllowedOrigins         []string `env:"CORS_ALLOWED_ORIGINS"        flag:"cors-allowed-origins"        flagDesc:"Origins allowed to call the API, all when empty"`
	BrokerAddr             []string `env:"KAFKA_BROKER_ADDR"           flag:"kafka-broker-addr"           flagDesc:"Kafka broker address, request-to-pay events are off when empty"`
	SchemaRegistryURL      string   `env:"SCHEMA_REGISTRY_URL"         flag:"schema-registry-url"         flagDesc:"Schema registry url"                                  validate:"required_with=BrokerAddr"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:             ":3001",
		MoMoBaseURL:          "https://sandbox.momodeveloper.mtn.com",
		TargetEnvironment:    "sandbox",
		ProviderCallbackHost: "https://webhook.site/cca6bd44-43b1-4e6a-90a0-ecb31512d4a8",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the values needed to talk to MoMo are present.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
