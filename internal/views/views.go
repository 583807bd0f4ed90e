package views

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
)

// Layout wraps every page rendered through the engine.
const Layout = "layouts/base"

//go:embed templates
var templates embed.FS

// New returns the html engine over the embedded templates. Template names are
// paths relative to templates/ without the .html extension.
func New() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(map[string]interface{}{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		// date renders t as "Mon Jan 2006".
		"date": func(t time.Time) string {
			return t.Format("Mon Jan 2006")
		},
		"selected": func(current, value string) bool {
			return current == value
		},
	})
	return engine
}
