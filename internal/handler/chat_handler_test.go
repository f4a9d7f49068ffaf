package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeBot struct {
	reply string
	calls int
}

func (f *fakeBot) Handle(text string) string {
	f.calls++
	return f.reply
}

type fakeCorpusCounter struct {
	total int
	err   error
}

func (f *fakeCorpusCounter) CountRecords() (int, error) {
	return f.total, f.err
}

type fakeReplyCache struct {
	entries map[string]string
	getErr  error
}

func (f *fakeReplyCache) CachedReply(key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.entries[key], nil
}

func (f *fakeReplyCache) CacheReply(key, reply string, ttl time.Duration) error {
	f.entries[key] = reply
	return nil
}

func newTestChatRouter(h *ChatHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", h.Chat)
	r.GET("/health", h.GetHealth)
	return r
}

func postChat(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChat_ReturnsBotReply(t *testing.T) {
	bot := &fakeBot{reply: "안녕하세요"}
	r := newTestChatRouter(NewChatHandler(bot, &fakeCorpusCounter{}, nil, 0))

	w := postChat(r, `{"message": "안녕"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ChatResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "안녕하세요", res.Reply)
	assert.Equal(t, 1, bot.calls)
}

func TestChat_InvalidBody(t *testing.T) {
	r := newTestChatRouter(NewChatHandler(&fakeBot{}, &fakeCorpusCounter{}, nil, 0))

	w := postChat(r, `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_EmptyMessage(t *testing.T) {
	bot := &fakeBot{}
	r := newTestChatRouter(NewChatHandler(bot, &fakeCorpusCounter{}, nil, 0))

	w := postChat(r, `{"message": "   "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, bot.calls)
}

func TestChat_CacheHitSkipsBot(t *testing.T) {
	bot := &fakeBot{reply: "fresh"}
	cache := &fakeReplyCache{entries: map[string]string{}}
	r := newTestChatRouter(NewChatHandler(bot, &fakeCorpusCounter{}, cache, time.Minute))

	first := postChat(r, `{"message": "테슬라 자세히"}`)
	second := postChat(r, `{"message": "테슬라 자세히"}`)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, bot.calls)

	var res ChatResponse
	json.Unmarshal(second.Body.Bytes(), &res)
	assert.Equal(t, "fresh", res.Reply)
}

func TestChat_CacheFailureFallsThrough(t *testing.T) {
	bot := &fakeBot{reply: "fresh"}
	cache := &fakeReplyCache{entries: map[string]string{}, getErr: errors.New("redis down")}
	r := newTestChatRouter(NewChatHandler(bot, &fakeCorpusCounter{}, cache, time.Minute))

	w := postChat(r, `{"message": "질문"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, bot.calls)
}

func TestGetHealth(t *testing.T) {
	r := newTestChatRouter(NewChatHandler(&fakeBot{}, &fakeCorpusCounter{total: 3}, nil, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetHealth_DBError(t *testing.T) {
	r := newTestChatRouter(NewChatHandler(&fakeBot{}, &fakeCorpusCounter{err: errors.New("DB down")}, nil, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
