// Package auth implements the mock social login: the visitor picks from a
// static account list and gets a fabricated account plus a session token.
// There is no real identity provider behind it.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kk-clothing/storefront-api/models"
	"github.com/kk-clothing/storefront-api/storage"
)

var ErrUnknownAccount = errors.New("unknown account")

var mockAccounts = []models.User{
	{ID: "google_1", Name: "John Doe", Email: "john.doe@gmail.com", Avatar: "https://ui-avatars.com/api/?name=John+Doe&background=4285f4&color=fff", Provider: "google"},
	{ID: "google_2", Name: "Jane Smith", Email: "jane.smith@gmail.com", Avatar: "https://ui-avatars.com/api/?name=Jane+Smith&background=ea4335&color=fff", Provider: "google"},
	{ID: "google_3", Name: "Mike Johnson", Email: "mike.johnson@gmail.com", Avatar: "https://ui-avatars.com/api/?name=Mike+Johnson&background=34a853&color=fff", Provider: "google"},
}

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Accounts returns the pickable mock accounts.
func (s *Service) Accounts() []models.User {
	out := make([]models.User, len(mockAccounts))
	copy(out, mockAccounts)
	return out
}

// Login selects a mock account, records it as the current user, adds it to
// the known users list once, and issues a session token.
func (s *Service) Login(accountID string) (models.User, string, error) {
	var account models.User
	found := false
	for _, a := range mockAccounts {
		if a.ID == accountID {
			account = a
			found = true
			break
		}
	}
	if !found {
		return models.User{}, "", fmt.Errorf("%w: %s", ErrUnknownAccount, accountID)
	}

	storage.SetJSON(s.store, storage.KeyCurrentUser, account)

	var users []models.User
	storage.GetJSON(s.store, storage.KeyUsers, &users)
	known := false
	for _, u := range users {
		if u.ID == account.ID {
			known = true
			break
		}
	}
	if !known {
		users = append(users, account)
		storage.SetJSON(s.store, storage.KeyUsers, users)
	}

	token, err := issueToken(account)
	if err != nil {
		return models.User{}, "", err
	}
	return account, token, nil
}

// Logout clears the current user.
func (s *Service) Logout() {
	s.store.Delete(storage.KeyCurrentUser)
}

// CurrentUser returns the signed-in account, if any.
func (s *Service) CurrentUser() (models.User, bool) {
	var u models.User
	storage.GetJSON(s.store, storage.KeyCurrentUser, &u)
	return u, u.ID != ""
}

// GET /auth/accounts
func ListAccounts(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Accounts())
	}
}

// POST /auth/social
func SocialLogin(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			AccountID string `json:"account_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, token, err := svc.Login(input.AccountID)
		if err != nil {
			if errors.Is(err, ErrUnknownAccount) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// POST /auth/logout
func Logout(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
