// Package web serves the localized site pages. Page strings come from
// the i18n bundle; event and video data is fetched by the pages
// client-side from the JSON endpoints.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manantialdevida/web/app/i18n"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Pages struct {
	bundle        *i18n.Bundle
	defaultLocale string
}

func NewPages(bundle *i18n.Bundle, defaultLocale string) *Pages {
	return &Pages{bundle: bundle, defaultLocale: defaultLocale}
}

// Register parses the embedded templates into the engine and mounts the
// page routes.
func Register(r *gin.Engine, pages *Pages) {
	tmpl := template.Must(template.ParseFS(templatesFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", pages.render("home.html", "home"))
	r.GET("/acerca", pages.render("about.html", "about"))
	r.GET("/servicios", pages.render("services.html", "services"))
	r.GET("/contacto", pages.render("contact.html", "contact"))
	r.GET("/en-vivo", pages.render("live.html", "live"))
}

func (p *Pages) render(name, active string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := p.defaultLocale
		if lang := c.Query("lang"); lang != "" {
			locale = lang
		}

		c.HTML(http.StatusOK, name, gin.H{
			"L":      p.bundle.Get(locale),
			"Active": active,
		})
	}
}
