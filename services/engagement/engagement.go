// Package engagement tracks product-page view counters and visitor ratings.
package engagement

import (
	"encoding/json"
	"math/rand"
	"sync"

	"github.com/kk-clothing/storefront-api/storage"
)

// ViewCounts is what a product page renders next to the eye icon.
type ViewCounts struct {
	Total     int `json:"total"`
	ByVisitor int `json:"by_visitor"`
}

type Service struct {
	store storage.Store

	mu sync.Mutex
	// sessionViewed replays the session-scoped dedupe: one counted view per
	// product per session. Entries live for the process lifetime only.
	sessionViewed map[string]bool

	seed func() int
}

func New(store storage.Store) *Service {
	return &Service{
		store:         store,
		sessionViewed: make(map[string]bool),
		// First sight of a product seeds the counter with a plausible
		// historical total, like the storefront always has.
		seed: func() int { return rand.Intn(1000) + 100 },
	}
}

// RecordView bumps the product's counters unless this session already viewed
// it, and returns the counts either way.
func (s *Service) RecordView(productID, sessionID string) ViewCounts {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.readCount(storage.ViewsKey(productID), -1)
	if total < 0 {
		total = s.seed()
	}
	byVisitor := s.readCount(storage.UserViewsKey(productID), 0)

	dedupeKey := "session_viewed_" + sessionID + "_" + productID
	if !s.sessionViewed[dedupeKey] {
		s.sessionViewed[dedupeKey] = true
		total++
		byVisitor++
	}

	storage.SetJSON(s.store, storage.ViewsKey(productID), total)
	storage.SetJSON(s.store, storage.UserViewsKey(productID), byVisitor)
	return ViewCounts{Total: total, ByVisitor: byVisitor}
}

// Views returns the counters without recording anything.
func (s *Service) Views(productID string) ViewCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ViewCounts{
		Total:     s.readCount(storage.ViewsKey(productID), 0),
		ByVisitor: s.readCount(storage.UserViewsKey(productID), 0),
	}
}

// SetRating stores the visitor's star rating for a product.
func (s *Service) SetRating(productID string, stars int) {
	if stars < 1 {
		stars = 1
	}
	if stars > 5 {
		stars = 5
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	storage.SetJSON(s.store, storage.RatingKey(productID), stars)
}

// Rating returns the stored rating, if the visitor rated this product.
func (s *Service) Rating(productID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stars := s.readCount(storage.RatingKey(productID), 0)
	return stars, stars > 0
}

// Caller holds s.mu.
func (s *Service) readCount(key string, absent int) int {
	raw, ok := s.store.Get(key)
	if !ok {
		return absent
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return absent
	}
	return v
}
