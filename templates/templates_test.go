package templates

import (
	"strings"
	"testing"
)

func TestLoadParsesAllPages(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, name := range []string{"index.html", "post.html", "register.html", "login.html", "make-post.html", "about.html", "contact.html", "error.html"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("missing template %s", name)
		}
	}
}

func TestRichTextStripsScripts(t *testing.T) {
	out := string(RichText(`<p>hi <b>there</b></p><script>alert(1)</script><a href="javascript:alert(1)" onclick="x()">x</a>`))
	if !strings.Contains(out, "<p>hi <b>there</b></p>") {
		t.Fatalf("formatting lost: %s", out)
	}
	for _, bad := range []string{"<script", "javascript:", "onclick"} {
		if strings.Contains(out, bad) {
			t.Fatalf("%q survived sanitising: %s", bad, out)
		}
	}
}

func TestGravatar(t *testing.T) {
	want := "https://www.gravatar.com/avatar/743173788aa9166801df2e18f0e7ff24?s=100&r=g&d=retro"
	if got := Gravatar(" A@X.com "); got != want {
		t.Fatalf("gravatar = %s, want %s", got, want)
	}
}
