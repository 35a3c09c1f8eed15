package chatControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kk-clothing/storefront-api/services/chat"
)

type MessageInput struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text" binding:"required"`
}

// PostMessage feeds a visitor message through the assistant and returns the
// reply. A missing chat_id starts a new conversation.
// POST /chat/messages
func PostMessage(engine *chat.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.ChatID == "" {
			input.ChatID = uuid.NewString()
		}

		reply := engine.HandleMessage(input.ChatID, input.Text)
		c.JSON(http.StatusOK, gin.H{"chat_id": input.ChatID, "reply": reply})
	}
}

// GetMessages returns a conversation transcript, or the full transcript when
// no chat_id is given.
// GET /chat/messages?chat_id=
func GetMessages(engine *chat.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if chatID := c.Query("chat_id"); chatID != "" {
			c.JSON(http.StatusOK, engine.MessagesForChat(chatID))
			return
		}
		c.JSON(http.StatusOK, engine.Messages())
	}
}

// GetDetectedLanguage exposes the language detector, mainly for the widget to
// pick its placeholder text.
// GET /chat/language?text=
func GetDetectedLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		text := c.Query("text")
		if text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"language": chat.DetectLanguage(text)})
	}
}
