package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manantialdevida/web/app/web"
)

// NewServer creates the HTTP engine with all routes configured.
func NewServer(handler *Handler, pages *web.Pages) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS for the API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler, pages)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler, pages *web.Pages) {
	// Data endpoints consumed by the pages (and by the CDN edge cache)
	r.GET("/api/calendar-events", handler.GetCalendarEvents)
	r.GET("/api/calendar-events.ics", handler.GetCalendarFeed)
	r.GET("/api/youtube-data", handler.GetYouTubeData)

	r.GET("/health", handler.GetHealth)

	// Localized site pages
	web.Register(r, pages)

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
