package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func Logger() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    log.Writer(),
		SkipPaths: []string{"/favicon.ico"},
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("[%s] %s %s %d %s %s\n",
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.StatusCode,
				param.Latency,
				param.ClientIP,
			)
		},
	})
}

// ErrorHandler logs errors attached with c.Error and, when the handler did
// not write a response, renders the 500 page.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, e.Err)
		}
		if !c.Writer.Written() {
			RenderError(c, http.StatusInternalServerError, "Something went wrong on our side.")
		}
	}
}

// Recovery renders the 500 page instead of gin's bare response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong on our side.")
		c.Abort()
	})
}
