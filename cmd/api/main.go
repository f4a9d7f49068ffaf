package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/qlanfr/chat-bot/db"
	"github.com/qlanfr/chat-bot/internal/bot"
	"github.com/qlanfr/chat-bot/internal/config"
	"github.com/qlanfr/chat-bot/internal/handler"
	"github.com/qlanfr/chat-bot/internal/repository"
	"github.com/qlanfr/chat-bot/pkg/llm"
	"github.com/qlanfr/chat-bot/pkg/market"
	"github.com/qlanfr/chat-bot/pkg/search"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	corpusRepo := repository.NewCorpusRepository(db.DB)

	completer := newCompleter(cfg)
	embedder := newEmbedder(cfg)

	marketClient := market.NewFinnHubClient(cfg.Market.FinnhubKey)
	searchClient := search.NewGoogleClient(cfg.Search.GoogleKey, cfg.Search.CSEID, cfg.Chat.NewsLimit)

	classifier := bot.NewClassifier(cfg.Chat.ClassifierMode, completer)
	chatBot := bot.New(corpusRepo, embedder, completer, classifier, marketClient, searchClient)

	var cache handler.ReplyCache
	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		cache = db.NewReplyCache()
	}

	cacheTTL := time.Duration(cfg.Chat.CacheTTLSec) * time.Second
	chatHandler := handler.NewChatHandler(chatBot, corpusRepo, cache, cacheTTL)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/chat", chatHandler.Chat)
	r.GET("/health", chatHandler.GetHealth)

	err = r.Run(fmt.Sprintf(":%d", cfg.API.Port))
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newCompleter(cfg *config.Config) llm.Completer {
	switch cfg.LLM.Provider {
	case "anthropic":
		return llm.NewAnthropicClient(cfg.LLM.AnthropicKey)
	case "ollama":
		return llm.NewOllamaClient(cfg.LLM.OllamaURL, cfg.LLM.OllamaModel, cfg.LLM.OllamaEmbedModel)
	default:
		return llm.NewOpenAIClient(cfg.LLM.OpenAIKey)
	}
}

func newEmbedder(cfg *config.Config) llm.Embedder {
	if cfg.LLM.EmbedProvider == "ollama" {
		return llm.NewOllamaClient(cfg.LLM.OllamaURL, cfg.LLM.OllamaModel, cfg.LLM.OllamaEmbedModel)
	}
	return llm.NewOpenAIClient(cfg.LLM.OpenAIKey)
}
