package http

import (
	"github.com/gin-gonic/gin"

	"voice-commander/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The voice
// endpoint is rate limited; the probes are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/voice", mw.RateLimit(), h.Process)
	rg.GET("/voice", h.Status)
	rg.GET("/history", h.History)
}
