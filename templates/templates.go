package templates

import (
	"crypto/md5"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed *.html
var files embed.FS

var richTextPolicy = bluemonday.UGCPolicy()

func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"richtext": RichText,
		"gravatar": Gravatar,
		"year":     func() int { return time.Now().Year() },
	}
}

// RichText renders user supplied HTML with scripts, handlers and other
// unsafe markup stripped.
func RichText(s string) template.HTML {
	return template.HTML(richTextPolicy.Sanitize(s))
}

// Gravatar returns the avatar URL for an email: 100px, rated g, retro fallback.
func Gravatar(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=100&r=g&d=retro", hex.EncodeToString(sum[:]))
}
