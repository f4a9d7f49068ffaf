package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/qlanfr/chat-bot/db"
	"github.com/qlanfr/chat-bot/internal/config"
	"github.com/qlanfr/chat-bot/internal/model"
	"github.com/qlanfr/chat-bot/internal/repository"
	"github.com/qlanfr/chat-bot/pkg/llm"

	"github.com/joho/godotenv"
)

type corpusEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	path := "corpus.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("error reading corpus file: %v", err)
	}

	var entries []corpusEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatalf("error parsing corpus file: %v", err)
	}

	if len(entries) == 0 {
		slog.Info("no entries in corpus file, exiting")
		return
	}

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	repo := repository.NewCorpusRepository(db.DB)
	embedder := newEmbedder(cfg)

	var saved, duplicated, failed int

	for _, entry := range entries {
		embedding, err := embedder.Embed(entry.Question)
		if err != nil {
			slog.Error("error embedding question", "question", entry.Question, "error", err)
			failed++
			continue
		}

		rec := model.CorpusRecord{
			Question:  entry.Question,
			Answer:    entry.Answer,
			Embedding: embedding,
		}

		success, err := repo.SaveRecord(&rec)
		if err != nil {
			slog.Error("error saving record", "question", entry.Question, "error", err)
			failed++
			continue
		}

		if !success {
			slog.Info("duplicate question skipped", "question", entry.Question)
			duplicated++
			continue
		}

		saved++
	}

	slog.Info("indexing complete", "saved", saved, "duplicated", duplicated, "failed", failed)
}

func newEmbedder(cfg *config.Config) llm.Embedder {
	if cfg.LLM.EmbedProvider == "ollama" {
		return llm.NewOllamaClient(cfg.LLM.OllamaURL, cfg.LLM.OllamaModel, cfg.LLM.OllamaEmbedModel)
	}
	return llm.NewOpenAIClient(cfg.LLM.OpenAIKey)
}
