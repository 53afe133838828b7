package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Render executes a page template with the data every page needs.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	user := CurrentUser(c)
	data["User"] = user
	data["IsAdmin"] = user.IsAdmin()
	data["Flashes"] = PopFlashes(c)
	c.HTML(status, name, data)
}

func Redirect(c *gin.Context, location string) {
	KeepFlashes(c)
	c.Redirect(http.StatusSeeOther, location)
}

func RenderError(c *gin.Context, status int, message string) {
	Render(c, status, "error.html", gin.H{
		"Status":  status,
		"Title":   http.StatusText(status),
		"Message": message,
	})
}
