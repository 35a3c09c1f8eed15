package notificationControllers

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

func newTestRouter(t *testing.T) (*gin.Engine, *mailbox.Service, *chat.Engine) {
	gin.SetMode(gin.TestMode)
	store := storage.NewMemoryStore()
	box := mailbox.New(store)
	engine := chat.NewEngine(store, box)
	t.Cleanup(engine.Close)

	r := gin.New()
	r.GET("/admin/notifications", GetAdminNotifications(box))
	r.PUT("/admin/notifications/:id/read", MarkAdminNotificationRead(box))
	r.GET("/admin/notifications/unread-count", GetAdminUnreadCount(box))
	r.POST("/admin/reply", AdminReply(engine))
	r.GET("/user/notifications", GetUserNotifications(box))
	r.PUT("/user/notifications/:id/read", MarkUserNotificationRead(box))
	r.PUT("/user/notifications/read-all", ClearAllUserNotifications(box))
	r.GET("/user/notifications/unread-count", GetUserUnreadCount(box))
	return r, box, engine
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

func TestAdminInbox(t *testing.T) {
	r, box, _ := newTestRouter(t)
	n := box.AddAdminNotification("Ali Raza", "kya aap ki team se baat ho sakti hai", "chat-1")

	w := doRequest(r, http.MethodGet, "/admin/notifications", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.AdminNotification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Ali Raza", list[0].UserName)
	assert.False(t, list[0].IsRead)

	w = doRequest(r, http.MethodGet, "/admin/notifications/unread-count", "")
	assert.JSONEq(t, `{"unread_count":1}`, w.Body.String())

	w = doRequest(r, http.MethodPut, "/admin/notifications/"+n.ID+"/read", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread_count":0}`, w.Body.String())
}

func TestAdminReply(t *testing.T) {
	r, box, engine := newTestRouter(t)
	engine.HandleMessage("chat-7", "do you have lawn suits?")

	w := doRequest(r, http.MethodPost, "/admin/reply", `{"chat_id":"chat-7","message":"Yes, we restock every Friday."}`)
	require.Equal(t, http.StatusOK, w.Code)

	var msg models.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, models.SenderAdmin, msg.Sender)
	assert.Equal(t, "chat-7", msg.ChatID)

	// the visitor gets an inbox entry for the reply
	assert.Equal(t, 1, box.UserUnreadCount())

	w = doRequest(r, http.MethodPost, "/admin/reply", `{"chat_id":"chat-7"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserInbox(t *testing.T) {
	r, box, _ := newTestRouter(t)
	first := box.AddUserNotification("Payment successful! Order 1 confirmed.", false)
	box.AddUserNotification("Our team will reach out shortly.", true)

	w := doRequest(r, http.MethodGet, "/user/notifications", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.UserNotification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.True(t, list[0].IsFromAdmin) // newest first

	w = doRequest(r, http.MethodPut, "/user/notifications/"+first.ID+"/read", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread_count":1}`, w.Body.String())

	w = doRequest(r, http.MethodPut, "/user/notifications/read-all", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/user/notifications/unread-count", "")
	assert.JSONEq(t, `{"unread_count":0}`, w.Body.String())
}
