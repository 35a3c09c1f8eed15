// Package chat implements the storefront assistant: language detection,
// catalog-aware canned responses, and the human-handoff flow that feeds the
// admin mailbox.
package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kk-clothing/storefront-api/models"
	"github.com/kk-clothing/storefront-api/services/mailbox"
	"github.com/kk-clothing/storefront-api/storage"
)

// handoffWords signal the visitor wants a human, in English, Urdu script and
// Roman Urdu.
var handoffWords = []string{
	"talk", "connect", "speak", "help", "support", "team",
	"بات", "رابطہ", "مدد", "ٹیم",
	"baat", "raabta", "madad",
}

// paymentWords trigger the delayed payment-instructions notice.
var paymentWords = []string{"payment", "pay", "bank", "ادائیگی", "بینک"}

const defaultPaymentDelay = 2 * time.Second

// conversation is the per-chat state the engine keeps for the session.
type conversation struct {
	name         string
	awaitingName bool
	lang         Language
}

type Engine struct {
	store storage.Store
	box   *mailbox.Service

	mu           sync.Mutex
	convs        map[string]*conversation
	timers       map[*time.Timer]struct{}
	paymentDelay time.Duration
	closed       bool

	now func() time.Time
}

func NewEngine(store storage.Store, box *mailbox.Service) *Engine {
	return &Engine{
		store:        store,
		box:          box,
		convs:        make(map[string]*conversation),
		timers:       make(map[*time.Timer]struct{}),
		paymentDelay: defaultPaymentDelay,
		now:          time.Now,
	}
}

// SetPaymentDelay overrides how long the payment-instructions notice waits
// before appearing.
func (e *Engine) SetPaymentDelay(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paymentDelay = d
}

// Close cancels any pending delayed messages. Safe to call more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	for t := range e.timers {
		t.Stop()
	}
	e.timers = make(map[*time.Timer]struct{})
}

// HandleMessage records the visitor message, advances the conversation state
// and returns the assistant reply. Every message, in and out, lands in the
// persisted transcript.
func (e *Engine) HandleMessage(chatID, text string) models.ChatMessage {
	lang := DetectLanguage(text)

	e.mu.Lock()
	defer e.mu.Unlock()

	conv, ok := e.convs[chatID]
	if !ok {
		conv = &conversation{}
		e.convs[chatID] = conv
	}

	e.appendMessage(models.ChatMessage{
		ID:             uuid.NewString(),
		ChatID:         chatID,
		Text:           text,
		Sender:         models.SenderUser,
		Timestamp:      e.now(),
		IsAdminVisible: true,
		Language:       string(lang),
	})

	replyText := e.advance(conv, chatID, text, lang)

	if matchesAny(strings.ToLower(text), paymentWords) {
		e.schedulePaymentNotice(chatID, lang)
	}

	reply := models.ChatMessage{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Text:      replyText,
		Sender:    models.SenderAI,
		Timestamp: e.now(),
		Language:  string(lang),
	}
	e.appendMessage(reply)
	return reply
}

// advance runs the handoff state machine and picks the reply text.
// Caller holds e.mu.
func (e *Engine) advance(conv *conversation, chatID, text string, lang Language) string {
	if conv.awaitingName {
		// Only the message immediately after the name request is considered
		// a name; anything else re-enters normal handling.
		conv.awaitingName = false
		if looksLikeName(text) {
			conv.name = strings.TrimSpace(text)
			e.box.AddAdminNotification(conv.name, text, chatID)
			return translationFor(conv.lang).welcomeNamed
		}
	}

	if conv.name == "" && matchesAny(strings.ToLower(text), handoffWords) {
		conv.awaitingName = true
		conv.lang = lang
		return translationFor(lang).nameRequest
	}

	if conv.name != "" {
		e.box.AddAdminNotification(conv.name, text, chatID)
	}
	return ProductResponse(text)
}

// looksLikeName accepts short, question-free input: at most three tokens,
// under fifty characters, no question mark.
func looksLikeName(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.Contains(trimmed, "?") {
		return false
	}
	if len([]rune(trimmed)) >= 50 {
		return false
	}
	return len(strings.Fields(trimmed)) <= 3
}

// schedulePaymentNotice shows payment instructions after a fixed delay,
// simulating the human follow-up. The timer is cancelable via Close so a
// teardown never acts on stale state. Caller holds e.mu.
func (e *Engine) schedulePaymentNotice(chatID string, lang Language) {
	if e.closed {
		return
	}
	instructions := translationFor(lang).paymentInstructions

	var timer *time.Timer
	timer = time.AfterFunc(e.paymentDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.timers, timer)
		if e.closed {
			return
		}
		e.appendMessage(models.ChatMessage{
			ID:             uuid.NewString(),
			ChatID:         chatID,
			Text:           instructions,
			Sender:         models.SenderAdmin,
			Timestamp:      e.now(),
			IsAdminVisible: true,
			Language:       string(lang),
		})
		e.box.AddUserNotification(instructions, true)
	})
	e.timers[timer] = struct{}{}
}

// AdminReply records an admin message in the transcript and notifies the
// visitor inbox.
func (e *Engine) AdminReply(chatID, text string) models.ChatMessage {
	e.mu.Lock()
	defer e.mu.Unlock()

	msg := models.ChatMessage{
		ID:             uuid.NewString(),
		ChatID:         chatID,
		Text:           text,
		Sender:         models.SenderAdmin,
		Timestamp:      e.now(),
		IsAdminVisible: true,
	}
	e.appendMessage(msg)
	e.box.AddUserNotification(text, true)
	return msg
}

// Messages returns the full persisted transcript in arrival order.
func (e *Engine) Messages() []models.ChatMessage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transcript()
}

// MessagesForChat returns one conversation's transcript in arrival order.
func (e *Engine) MessagesForChat(chatID string) []models.ChatMessage {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.ChatMessage
	for _, m := range e.transcript() {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

// Caller holds e.mu.
func (e *Engine) transcript() []models.ChatMessage {
	var msgs []models.ChatMessage
	storage.GetJSON(e.store, storage.KeyChatMessages, &msgs)
	return msgs
}

// Caller holds e.mu.
func (e *Engine) appendMessage(msg models.ChatMessage) {
	msgs := e.transcript()
	msgs = append(msgs, msg)
	storage.SetJSON(e.store, storage.KeyChatMessages, msgs)
}
