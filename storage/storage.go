package storage

import "encoding/json"

// Store is a keyed JSON document store with the same contract the storefront
// state has always had: string key to JSON value, absent keys read as unset.
// Implementations must be safe for use from concurrent handlers, but callers
// keep the single-writer-per-key discipline the data model assumes.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Storefront state keys.
const (
	KeyUsers              = "users"
	KeyCurrentUser        = "currentUser"
	KeyCart               = "cart"
	KeyOrders             = "orders"
	KeyAdminNotifications = "adminNotifications"
	KeyUserNotifications  = "userNotifications"
	KeyChatMessages       = "chatMessages"
)

func RatingKey(productID string) string    { return "rating_" + productID }
func ViewsKey(productID string) string     { return "views_" + productID }
func UserViewsKey(productID string) string { return "user_views_" + productID }

// GetJSON decodes the value under key into out. An absent key or a value
// that fails to parse leaves out at its zero value; storefront reads always
// default to empty rather than failing.
func GetJSON[T any](s Store, key string, out *T) {
	raw, ok := s.Get(key)
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*out = v
}

// SetJSON encodes v and stores it under key.
func SetJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}
