// Package mailbox implements the two storefront notification queues: the
// admin inbox fed by chat handoffs and the visitor-facing inbox fed by admin
// replies. Both are append-only, newest first, with per-entry read tracking.
package mailbox

import (
	"strconv"
	"sync"
	"time"

	"github.com/kk-clothing/storefront-api/models"
	"github.com/kk-clothing/storefront-api/storage"
)

// Audience says which queue an event belongs to.
type Audience string

const (
	AudienceAdmin Audience = "admin"
	AudienceUser  Audience = "user"
)

// Event is delivered to subscribers whenever a notification is added.
// Exactly one of Admin/User is set, matching Audience.
type Event struct {
	Audience Audience
	Admin    *models.AdminNotification
	User     *models.UserNotification
}

// Listener receives mailbox events. Delivery is best effort: listeners run
// synchronously on the adding goroutine and must not block.
type Listener func(Event)

type Service struct {
	store storage.Store

	mu        sync.Mutex
	listeners []Listener
	lastID    int64

	now func() time.Time
}

func New(store storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Subscribe registers a listener for all future notifications.
func (s *Service) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// nextID derives an id from the current time in milliseconds, bumping it when
// two adds land in the same millisecond so ids stay unique per process.
func (s *Service) nextID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Service) notify(ev Event) {
	for _, l := range s.listeners {
		l(ev)
	}
}

// AddAdminNotification prepends a new unread entry to the admin inbox.
func (s *Service) AddAdminNotification(userName, userMessage, chatID string) models.AdminNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := models.AdminNotification{
		ID:          s.nextID(),
		UserName:    userName,
		UserMessage: userMessage,
		Timestamp:   s.now(),
		IsRead:      false,
		ChatID:      chatID,
	}

	queue := s.adminQueue()
	queue = append([]models.AdminNotification{n}, queue...)
	storage.SetJSON(s.store, storage.KeyAdminNotifications, queue)

	s.notify(Event{Audience: AudienceAdmin, Admin: &n})
	return n
}

// AdminNotifications returns the admin inbox, newest first.
func (s *Service) AdminNotifications() []models.AdminNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adminQueue()
}

func (s *Service) adminQueue() []models.AdminNotification {
	var queue []models.AdminNotification
	storage.GetJSON(s.store, storage.KeyAdminNotifications, &queue)
	return queue
}

// MarkAdminRead flips the matching entry to read. Unknown ids are a no-op.
func (s *Service) MarkAdminRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.adminQueue()
	for i := range queue {
		if queue[i].ID == id {
			queue[i].IsRead = true
			storage.SetJSON(s.store, storage.KeyAdminNotifications, queue)
			return
		}
	}
}

// AdminUnreadCount counts unread admin entries.
func (s *Service) AdminUnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, entry := range s.adminQueue() {
		if !entry.IsRead {
			n++
		}
	}
	return n
}

// AddUserNotification prepends a new unread entry to the visitor inbox.
func (s *Service) AddUserNotification(message string, isFromAdmin bool) models.UserNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := models.UserNotification{
		ID:          s.nextID(),
		Message:     message,
		Timestamp:   s.now(),
		IsRead:      false,
		IsFromAdmin: isFromAdmin,
	}

	queue := s.userQueue()
	queue = append([]models.UserNotification{n}, queue...)
	storage.SetJSON(s.store, storage.KeyUserNotifications, queue)

	s.notify(Event{Audience: AudienceUser, User: &n})
	return n
}

// UserNotifications returns the visitor inbox, newest first.
func (s *Service) UserNotifications() []models.UserNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userQueue()
}

func (s *Service) userQueue() []models.UserNotification {
	var queue []models.UserNotification
	storage.GetJSON(s.store, storage.KeyUserNotifications, &queue)
	return queue
}

// MarkUserRead flips the matching entry to read. Unknown ids are a no-op.
func (s *Service) MarkUserRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.userQueue()
	for i := range queue {
		if queue[i].ID == id {
			queue[i].IsRead = true
			storage.SetJSON(s.store, storage.KeyUserNotifications, queue)
			return
		}
	}
}

// UserUnreadCount counts unread visitor entries.
func (s *Service) UserUnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, entry := range s.userQueue() {
		if !entry.IsRead {
			n++
		}
	}
	return n
}

// ClearAllUserNotifications marks every visitor entry read in one pass.
func (s *Service) ClearAllUserNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.userQueue()
	for i := range queue {
		queue[i].IsRead = true
	}
	storage.SetJSON(s.store, storage.KeyUserNotifications, queue)
}
