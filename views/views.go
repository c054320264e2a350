// Package views sunucu tarafında çizilen sayfa şablonlarını gömülü olarak taşır.
package views

import (
	"embed"
	"html/template"
	"net/http"
	"regexp"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts/*.html pages/*.html errors/*.html
var FS embed.FS

var colorPattern = regexp.MustCompile(`^(#[0-9A-Fa-f]{3,8}|rgba?\([0-9., ]+\))$`)

// NewEngine gömülü şablonlarla Fiber view motorunu oluşturur.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFunc("contains", func(list []string, v string) bool {
		for _, s := range list {
			if s == v {
				return true
			}
		}
		return false
	})
	engine.AddFunc("initials", func(s string) string {
		var b strings.Builder
		for _, w := range strings.Fields(s) {
			if w == "&" {
				b.WriteString(" & ")
				continue
			}
			b.WriteString(strings.ToUpper(string([]rune(w)[:1])))
		}
		return strings.TrimSpace(b.String())
	})
	// Tema renkleri style niteliklerine bu fonksiyondan geçerek yazılır.
	engine.AddFunc("color", func(v string) template.CSS {
		if !colorPattern.MatchString(v) {
			return template.CSS("inherit")
		}
		return template.CSS(v)
	})
	return engine
}
