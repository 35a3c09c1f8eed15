package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk-clothing/storefront-api/models"
	"github.com/kk-clothing/storefront-api/services/mailbox"
	"github.com/kk-clothing/storefront-api/storage"
)

func newTestEngine() (*Engine, *mailbox.Service) {
	store := storage.NewMemoryStore()
	box := mailbox.New(store)
	return NewEngine(store, box), box
}

// The full handoff flow: intent in Roman Urdu, then a name, then a product
// question that is both answered and forwarded to the admin inbox.
func TestHandoffNameCaptureFlow(t *testing.T) {
	e, box := newTestEngine()
	defer e.Close()

	reply := e.HandleMessage("chat-1", "kya aap ki team se baat ho sakti hai")
	assert.Contains(t, reply.Text, "naam")
	assert.Empty(t, box.AdminNotifications(), "no notification before a name is captured")

	reply = e.HandleMessage("chat-1", "Ali Raza")
	assert.Contains(t, reply.Text, "Shukriya")

	queue := box.AdminNotifications()
	require.Len(t, queue, 1)
	assert.Equal(t, "Ali Raza", queue[0].UserName)
	assert.Equal(t, "chat-1", queue[0].ChatID)

	reply = e.HandleMessage("chat-1", "lawn suit price")
	assert.Contains(t, reply.Text, "PKR")

	queue = box.AdminNotifications()
	require.Len(t, queue, 2)
	assert.Equal(t, "lawn suit price", queue[0].UserMessage)
	assert.Equal(t, "Ali Raza", queue[0].UserName)
}

func TestNameHeuristicRejections(t *testing.T) {
	cases := []struct {
		text string
		ok   bool
	}{
		{"Ali Raza", true},
		{"Ali", true},
		{"Muhammad Ali Raza Khan", false}, // four tokens
		{"is this a name?", false},        // question mark
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false}, // 50 chars
		{"   ", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, looksLikeName(tc.text), "input %q", tc.text)
	}
}

// A non-name answer to the name request disarms the capture and gets a
// normal catalog answer instead of becoming a display name.
func TestNonNameAnswerFallsThrough(t *testing.T) {
	e, box := newTestEngine()
	defer e.Close()

	e.HandleMessage("chat-1", "can I speak to someone")
	reply := e.HandleMessage("chat-1", "actually, what embroidered pieces do you have under 5000?")

	assert.Empty(t, box.AdminNotifications())
	assert.Contains(t, reply.Text, "PKR")
}

func TestTranscriptPersistsEveryMessage(t *testing.T) {
	store := storage.NewMemoryStore()
	e := NewEngine(store, mailbox.New(store))
	defer e.Close()

	e.HandleMessage("chat-1", "hello")
	e.AdminReply("chat-1", "hi, how can we help?")

	msgs := e.Messages()
	require.Len(t, msgs, 3) // user, ai, admin
	assert.Equal(t, models.SenderUser, msgs[0].Sender)
	assert.Equal(t, models.SenderAI, msgs[1].Sender)
	assert.Equal(t, models.SenderAdmin, msgs[2].Sender)

	byChat := e.MessagesForChat("chat-1")
	assert.Len(t, byChat, 3)
	assert.Empty(t, e.MessagesForChat("chat-2"))
}

func TestAdminReplyNotifiesVisitor(t *testing.T) {
	e, box := newTestEngine()
	defer e.Close()

	e.AdminReply("chat-1", "your order is on its way")

	queue := box.UserNotifications()
	require.Len(t, queue, 1)
	assert.Equal(t, "your order is on its way", queue[0].Message)
	assert.True(t, queue[0].IsFromAdmin)
}

func TestPaymentKeywordSchedulesInstructions(t *testing.T) {
	e, box := newTestEngine()
	defer e.Close()
	e.SetPaymentDelay(5 * time.Millisecond)

	e.HandleMessage("chat-1", "how do I pay by bank transfer")

	require.Eventually(t, func() bool {
		return box.UserUnreadCount() == 1
	}, time.Second, 5*time.Millisecond)

	msgs := e.MessagesForChat("chat-1")
	last := msgs[len(msgs)-1]
	assert.Equal(t, models.SenderAdmin, last.Sender)
	assert.Contains(t, last.Text, "bank transfer")
}

func TestCloseCancelsPendingNotices(t *testing.T) {
	e, box := newTestEngine()
	e.SetPaymentDelay(20 * time.Millisecond)

	e.HandleMessage("chat-1", "payment options?")
	e.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, box.UserUnreadCount())
}
