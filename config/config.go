package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice Commander specifics
	Classifier ClassifierConfig
	Backends   BackendsConfig
	Command    CommandConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ClassifierConfig configures the primary model (translation, intent
// classification, speech-to-text). The service cannot start without it.
type ClassifierConfig struct {
	APIKey string
	Model  string
	APIURL string
}

// ProviderConfig configures a single specialist backend. A backend with
// Enabled=false or an empty APIKey is simply left out of the registry; the
// Router degrades to classifier-only behavior for its intents.
type ProviderConfig struct {
	Enabled bool
	APIKey  string
	Model   string
	BaseURL string
}

// BackendsConfig holds the specialist backends keyed by capability.
type BackendsConfig struct {
	Code     ProviderConfig // Anthropic: coding tasks
	Research ProviderConfig // Perplexity: deep research
	Creative ProviderConfig // OpenAI: creative content, web building, images, email
}

// CommandConfig tunes the routing pipeline.
type CommandConfig struct {
	Timeout         string // overall wall-clock bound per request, e.g. "60s"
	HistorySize     int    // bounded in-memory command history entries
	RateLimitPerMin int    // voice endpoint rate limit
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Classifier (Gemini)
	cfg.Classifier.APIKey = expandEnvVar(viper.GetString("classifier.api_key"))
	cfg.Classifier.Model = viper.GetString("classifier.model")
	cfg.Classifier.APIURL = viper.GetString("classifier.api_url")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Classifier.APIKey = geminiKey
	}

	// Specialist backends
	cfg.Backends.Code = loadProvider("backends.code")
	if anthropicKey := viper.GetString("anthropic_api_key"); anthropicKey != "" {
		cfg.Backends.Code.APIKey = anthropicKey
	}

	cfg.Backends.Research = loadProvider("backends.research")
	if perplexityKey := viper.GetString("perplexity_api_key"); perplexityKey != "" {
		cfg.Backends.Research.APIKey = perplexityKey
	}

	cfg.Backends.Creative = loadProvider("backends.creative")
	if openaiKey := viper.GetString("openai_api_key"); openaiKey != "" {
		cfg.Backends.Creative.APIKey = openaiKey
	}

	// Command pipeline
	cfg.Command.Timeout = viper.GetString("command.timeout")
	cfg.Command.HistorySize = viper.GetInt("command.history_size")
	cfg.Command.RateLimitPerMin = viper.GetInt("command.rate_limit_per_min")

	// The classifier is the one hard requirement: transcription,
	// translation, and intent labeling all run through it.
	if cfg.Classifier.APIKey == "" {
		return nil, fmt.Errorf("classifier API key is required - set classifier.api_key in config.yaml or GEMINI_API_KEY")
	}

	return cfg, nil
}

// loadProvider reads one specialist backend section by key prefix.
func loadProvider(prefix string) ProviderConfig {
	return ProviderConfig{
		Enabled: viper.GetBool(prefix + ".enabled"),
		APIKey:  expandEnvVar(viper.GetString(prefix + ".api_key")),
		Model:   viper.GetString(prefix + ".model"),
		BaseURL: viper.GetString(prefix + ".base_url"),
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backends.code.enabled", true)
	viper.SetDefault("backends.research.enabled", true)
	viper.SetDefault("backends.creative.enabled", true)

	// Command defaults
	viper.SetDefault("command.timeout", "60s") // accommodates slow cold-starting backends
	viper.SetDefault("command.history_size", 100)
	viper.SetDefault("command.rate_limit_per_min", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
