package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration: defaults, an optional
// ./config/config.yaml, and CHATBOT_* environment overrides, in that
// order. API keys keep their conventional variable names.
type Config struct {
	LLM    LLMConfig    `mapstructure:"llm"`
	Chat   ChatConfig   `mapstructure:"chat"`
	Market MarketConfig `mapstructure:"market"`
	Search SearchConfig `mapstructure:"search"`
	API    APIConfig    `mapstructure:"api"`
}

type LLMConfig struct {
	Provider         string `mapstructure:"provider"`       // "openai", "anthropic", "ollama"
	EmbedProvider    string `mapstructure:"embed_provider"` // "openai", "ollama"
	OpenAIKey        string `mapstructure:"openai_key"`
	AnthropicKey     string `mapstructure:"anthropic_key"`
	OllamaURL        string `mapstructure:"ollama_url"`
	OllamaModel      string `mapstructure:"ollama_model"`
	OllamaEmbedModel string `mapstructure:"ollama_embed_model"`
}

type ChatConfig struct {
	ClassifierMode string `mapstructure:"classifier_mode"` // "flags" or "code"
	NewsLimit      int    `mapstructure:"news_limit"`
	CacheTTLSec    int    `mapstructure:"cache_ttl_sec"`
}

type MarketConfig struct {
	FinnhubKey string `mapstructure:"finnhub_key"`
}

type SearchConfig struct {
	GoogleKey string `mapstructure:"google_key"`
	CSEID     string `mapstructure:"cse_id"`
}

type APIConfig struct {
	Port int `mapstructure:"port"`
}

func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CHATBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; defaults plus env vars apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.embed_provider", "openai")
	v.SetDefault("llm.ollama_url", "http://localhost:11434")
	v.SetDefault("llm.ollama_model", "gemma2:2b")
	v.SetDefault("llm.ollama_embed_model", "nomic-embed-text")

	v.SetDefault("chat.classifier_mode", "code")
	v.SetDefault("chat.news_limit", 5)
	v.SetDefault("chat.cache_ttl_sec", 300)

	v.SetDefault("api.port", 8080)
}

// overrideFromEnv reads the secrets under their conventional names so a
// plain .env keeps working without the CHATBOT_ prefix.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.LLM.OpenAIKey = key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		cfg.LLM.AnthropicKey = key
	}
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		cfg.Market.FinnhubKey = key
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		cfg.Search.GoogleKey = key
	}
	if id := os.Getenv("GOOGLE_CSE_ID"); id != "" {
		cfg.Search.CSEID = id
	}
}
