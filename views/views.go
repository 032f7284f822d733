package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// NewEngine returns the template engine backed by the embedded page
// templates, ready to plug into fiber.Config.Views.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
