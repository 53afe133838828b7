package middleware

import (
	"errors"
	"log"
	"net/http"

	"blog/config"
	"blog/models"
	"blog/services"
	"blog/utils"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "session"
	userKey           = "current_user"
)

// SessionManager keeps the current principal in a signed cookie that lives
// until the browser session ends or the user logs out.
type SessionManager struct {
	secret string
	secure bool
	users  *services.UserService
}

func NewSessionManager(cfg *config.Config, users *services.UserService) *SessionManager {
	return &SessionManager{
		secret: cfg.SecretKey,
		secure: cfg.SecureCookies,
		users:  users,
	}
}

// Load resolves the session cookie to a user and stores it on the context.
func (m *SessionManager) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := utils.ParseSessionToken(token, m.secret)
		if err != nil {
			log.Printf("Session rejected: %v", err)
			m.clearCookie(c)
			c.Next()
			return
		}

		user, err := m.users.GetUserByID(userID)
		switch {
		case err == nil:
			c.Set(userKey, user)
		case errors.Is(err, services.ErrUserNotFound):
			m.clearCookie(c)
		default:
			_ = c.Error(err)
		}
		c.Next()
	}
}

func (m *SessionManager) Establish(c *gin.Context, user *models.User) error {
	token, err := utils.GenerateSessionToken(user.ID, m.secret)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, 0, "/", "", m.secure, true)
	c.Set(userKey, user)
	return nil
}

func (m *SessionManager) Terminate(c *gin.Context) {
	m.clearCookie(c)
	c.Set(userKey, (*models.User)(nil))
}

func (m *SessionManager) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", m.secure, true)
}

func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			AddFlash(c, "Please log in to access this page.")
			Redirect(c, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly lets through only the first registered user.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAdmin() {
			RenderError(c, http.StatusForbidden, "You shall not pass.")
			c.Abort()
			return
		}
		c.Next()
	}
}
