package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/openvault/openvault-edge/pkg/common"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Upstream  UpstreamConfig  `mapstructure:"upstream"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	WebSocket WebSocketConfig `mapstructure:"websocket"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	GatewayPort int    `mapstructure:"gateway_port"`
	BridgePort  int    `mapstructure:"bridge_port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type UpstreamConfig struct {
	// BaseURL is the OpenVault platform address every request is forwarded to.
	BaseURL string `mapstructure:"base_url"`
	// APIKey is attached as a bearer token on bridge upstream calls.
	APIKey string `mapstructure:"api_key"`
	// TimeoutSeconds applies to all upstream calls except chat completions.
	TimeoutSeconds     int `mapstructure:"timeout_seconds"`
	ChatTimeoutSeconds int `mapstructure:"chat_timeout_seconds"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type WebSocketConfig struct {
	MaxConnections int `mapstructure:"max_connections"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("⚠️ Warning: Could not load main config file: %v", err)
	}

	setDefaultValues()
	applyEnvOverrides()

	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// env-only operation is supported
			return nil
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Server.Host == "" {
		globalConfig.Server.Host = "0.0.0.0"
	}
	if globalConfig.Server.GatewayPort == 0 {
		globalConfig.Server.GatewayPort = 8000
	}
	if globalConfig.Server.BridgePort == 0 {
		globalConfig.Server.BridgePort = 8001
	}
	if globalConfig.Server.MetricsPort == 0 {
		globalConfig.Server.MetricsPort = 9090
	}
	if globalConfig.Upstream.BaseURL == "" {
		globalConfig.Upstream.BaseURL = "http://localhost:8080"
	}
	if globalConfig.Upstream.TimeoutSeconds == 0 {
		globalConfig.Upstream.TimeoutSeconds = int(common.DefaultUpstreamTimeout / time.Second)
	}
	if globalConfig.Upstream.ChatTimeoutSeconds == 0 {
		globalConfig.Upstream.ChatTimeoutSeconds = int(common.ChatUpstreamTimeout / time.Second)
	}
	if globalConfig.WebSocket.MaxConnections == 0 {
		globalConfig.WebSocket.MaxConnections = 1024
	}
}

// applyEnvOverrides honors the platform's canonical environment variables,
// which take precedence over anything in config.yaml.
func applyEnvOverrides() {
	if baseURL := os.Getenv("OPENVAULT_BASE_URL"); baseURL != "" {
		globalConfig.Upstream.BaseURL = baseURL
	}
	if apiKey := os.Getenv("OPENVAULT_API_KEY"); apiKey != "" {
		globalConfig.Upstream.APIKey = apiKey
	}
	globalConfig.Upstream.BaseURL = strings.TrimRight(globalConfig.Upstream.BaseURL, "/")
}

func GetConfig() *Config {
	return &globalConfig
}
