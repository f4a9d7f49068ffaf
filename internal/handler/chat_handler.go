package handler

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type Responder interface {
	Handle(text string) string
}

type ReplyCache interface {
	CachedReply(key string) (string, error)
	CacheReply(key, reply string, ttl time.Duration) error
}

type CorpusCounter interface {
	CountRecords() (int, error)
}

type ChatHandler struct {
	bot      Responder
	corpus   CorpusCounter
	cache    ReplyCache
	cacheTTL time.Duration
}

// NewChatHandler wires the chat endpoint. cache may be nil, in which case
// every message goes straight to the bot.
func NewChatHandler(bot Responder, corpus CorpusCounter, cache ReplyCache, cacheTTL time.Duration) *ChatHandler {
	return &ChatHandler{bot: bot, corpus: corpus, cache: cache, cacheTTL: cacheTTL}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid chat request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty message"})
		return
	}

	key := replyKey(message)

	if h.cache != nil {
		cached, err := h.cache.CachedReply(key)
		if err != nil {
			slog.Warn("reply cache read failed", "error", err)
		} else if cached != "" {
			c.JSON(http.StatusOK, ChatResponse{Reply: cached})
			return
		}
	}

	reply := h.bot.Handle(message)

	if h.cache != nil {
		if err := h.cache.CacheReply(key, reply, h.cacheTTL); err != nil {
			slog.Warn("reply cache write failed", "error", err)
		}
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

func (h *ChatHandler) GetHealth(c *gin.Context) {
	_, err := h.corpus.CountRecords()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func replyKey(message string) string {
	sum := sha256.Sum256([]byte(message))
	return fmt.Sprintf("%x", sum)[:16]
}
