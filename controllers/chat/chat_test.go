package chatControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk-clothing/storefront-api/models"
	"github.com/kk-clothing/storefront-api/services/chat"
	"github.com/kk-clothing/storefront-api/services/mailbox"
	"github.com/kk-clothing/storefront-api/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := storage.NewMemoryStore()
	engine := chat.NewEngine(store, mailbox.New(store))
	t.Cleanup(engine.Close)

	r := gin.New()
	r.POST("/chat/messages", PostMessage(engine))
	r.GET("/chat/messages", GetMessages(engine))
	r.GET("/chat/language", GetDetectedLanguage())
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostMessage(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/chat/messages", `{"text":"silk kurta price"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ChatID string            `json:"chat_id"`
		Reply  models.ChatMessage `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ChatID) // server assigned a fresh conversation
	assert.Equal(t, models.SenderAI, resp.Reply.Sender)
	assert.Contains(t, resp.Reply.Text, "Embroidered Silk Kurta")

	w = doRequest(r, http.MethodPost, "/chat/messages", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMessages(t *testing.T) {
	r := newTestRouter(t)

	doRequest(r, http.MethodPost, "/chat/messages", `{"chat_id":"c1","text":"hello"}`)
	doRequest(r, http.MethodPost, "/chat/messages", `{"chat_id":"c2","text":"hi"}`)

	w := doRequest(r, http.MethodGet, "/chat/messages?chat_id=c1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var msgs []models.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msgs))
	require.Len(t, msgs, 2) // visitor message plus reply
	assert.Equal(t, models.SenderUser, msgs[0].Sender)

	w = doRequest(r, http.MethodGet, "/chat/messages", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msgs))
	assert.Len(t, msgs, 4)
}

func TestGetDetectedLanguage(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/chat/language?text=aap+kaise+hain", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"language":"roman-urdu"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/chat/language", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
