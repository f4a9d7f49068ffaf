package config

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "code", cfg.Chat.ClassifierMode)
	assert.Equal(t, 5, cfg.Chat.NewsLimit)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.OllamaURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CHATBOT_CHAT_CLASSIFIER_MODE", "flags")
	t.Setenv("CHATBOT_LLM_PROVIDER", "ollama")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("FINNHUB_API_KEY", "fh-test")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, "flags", cfg.Chat.ClassifierMode)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAIKey)
	assert.Equal(t, "fh-test", cfg.Market.FinnhubKey)
}
