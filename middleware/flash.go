package middleware

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	FlashCookieName = "flash"
	flashKey        = "flashes"
)

type flashes struct {
	messages []string
}

// Flash loads the messages left by the previous response and clears the cookie.
func Flash() gin.HandlerFunc {
	return func(c *gin.Context) {
		f := &flashes{}
		if raw, err := c.Cookie(FlashCookieName); err == nil && raw != "" {
			f.messages = decodeFlashes(raw)
			setFlashCookie(c, "", -1)
		}
		c.Set(flashKey, f)
		c.Next()
	}
}

func AddFlash(c *gin.Context, message string) {
	if f := flashesFrom(c); f != nil {
		f.messages = append(f.messages, message)
	}
}

// PopFlashes returns the pending messages and forgets them.
func PopFlashes(c *gin.Context) []string {
	f := flashesFrom(c)
	if f == nil {
		return nil
	}
	messages := f.messages
	f.messages = nil
	return messages
}

// KeepFlashes writes messages that were not rendered yet to the cookie, so
// they show up after a redirect.
func KeepFlashes(c *gin.Context) {
	messages := PopFlashes(c)
	if len(messages) == 0 {
		return
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		log.Printf("Failed to encode flash messages: %v", err)
		return
	}
	setFlashCookie(c, base64.RawURLEncoding.EncodeToString(raw), 0)
}

func flashesFrom(c *gin.Context) *flashes {
	v, ok := c.Get(flashKey)
	if !ok {
		return nil
	}
	f, _ := v.(*flashes)
	return f
}

func decodeFlashes(raw string) []string {
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var messages []string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil
	}
	return messages
}

func setFlashCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookieName, value, maxAge, "/", "", false, true)
}
