package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "POSHAK_CONFIG_FILE"

type authCfg struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type genaiCfg struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	OrderEventsTopic   string   `mapstructure:"order_events_topic"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	SQLDB          string     `mapstructure:"sql_db"`
	SessionsDB     string     `mapstructure:"sessions_db"`
	Auth           authCfg    `mapstructure:"auth"`
	GenAI          genaiCfg   `mapstructure:"genai"`
	Broker         broker     `mapstructure:"broker"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	cfg.validate()

	return cfg
}

// validate rejects configs that would only fail later at runtime.
func (c Config) validate() {
	if c.Auth.JWTSecret == "" {
		die(fmt.Errorf("auth.jwt_secret is required"))
	}
	if c.GenAI.Endpoint == "" {
		die(fmt.Errorf("genai.endpoint is required"))
	}
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SQLDB=%q
	SessionsDB=%q

	Auth:
	TokenTTL=%q

	GenAI:
	Endpoint=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	OrderEventsTopic=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SQLDB,
		c.SessionsDB,
		c.Auth.TokenTTL,
		c.GenAI.Endpoint,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.OrderEventsTopic,
	)
}
