package mailbox

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk-clothing/storefront-api/storage"
)

func newTestService() *Service {
	return New(storage.NewMemoryStore())
}

func TestAdminQueueNewestFirst(t *testing.T) {
	s := newTestService()

	s.AddAdminNotification("Ali Raza", "first message", "chat-1")
	s.AddAdminNotification("Sara", "second message", "chat-2")
	s.AddAdminNotification("Ali Raza", "third message", "chat-1")

	queue := s.AdminNotifications()
	require.Len(t, queue, 3)
	assert.Equal(t, "third message", queue[0].UserMessage)
	assert.Equal(t, "second message", queue[1].UserMessage)
	assert.Equal(t, "first message", queue[2].UserMessage)
}

func TestIDsUniqueWithinQueue(t *testing.T) {
	s := newTestService()
	// Freeze the clock so every add lands in the same millisecond.
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	for i := 0; i < 20; i++ {
		s.AddAdminNotification("Ali", "msg "+strconv.Itoa(i), "chat-1")
	}

	seen := make(map[string]bool)
	for _, n := range s.AdminNotifications() {
		assert.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
	}
}

func TestUnreadCountTracksMarks(t *testing.T) {
	s := newTestService()

	a := s.AddAdminNotification("Ali", "one", "chat-1")
	s.AddAdminNotification("Ali", "two", "chat-1")
	assert.Equal(t, 2, s.AdminUnreadCount())

	s.MarkAdminRead(a.ID)
	assert.Equal(t, 1, s.AdminUnreadCount())

	// Marking twice or marking an unknown id changes nothing.
	s.MarkAdminRead(a.ID)
	s.MarkAdminRead("does-not-exist")
	assert.Equal(t, 1, s.AdminUnreadCount())
}

func TestUserQueueLifecycle(t *testing.T) {
	s := newTestService()

	s.AddUserNotification("Your order has shipped", true)
	s.AddUserNotification("Welcome!", false)

	queue := s.UserNotifications()
	require.Len(t, queue, 2)
	assert.Equal(t, "Welcome!", queue[0].Message)
	assert.False(t, queue[0].IsFromAdmin)
	assert.True(t, queue[1].IsFromAdmin)
	assert.Equal(t, 2, s.UserUnreadCount())

	s.MarkUserRead(queue[1].ID)
	assert.Equal(t, 1, s.UserUnreadCount())

	s.ClearAllUserNotifications()
	assert.Equal(t, 0, s.UserUnreadCount())
	require.Len(t, s.UserNotifications(), 2)
}

func TestSubscribeReceivesEvents(t *testing.T) {
	s := newTestService()

	var events []Event
	s.Subscribe(func(ev Event) { events = append(events, ev) })

	s.AddAdminNotification("Ali", "hello", "chat-1")
	s.AddUserNotification("reply", true)

	require.Len(t, events, 2)
	assert.Equal(t, AudienceAdmin, events[0].Audience)
	require.NotNil(t, events[0].Admin)
	assert.Equal(t, "Ali", events[0].Admin.UserName)
	assert.Equal(t, AudienceUser, events[1].Audience)
	require.NotNil(t, events[1].User)
	assert.Equal(t, "reply", events[1].User.Message)
}

func TestQueuesSurviveServiceRestart(t *testing.T) {
	store := storage.NewMemoryStore()

	s := New(store)
	s.AddAdminNotification("Ali", "hello", "chat-1")

	reopened := New(store)
	queue := reopened.AdminNotifications()
	require.Len(t, queue, 1)
	assert.Equal(t, "hello", queue[0].UserMessage)
}
