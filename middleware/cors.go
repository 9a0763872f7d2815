package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsAllowMethods = []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"}
	corsAllowHeaders = []string{"Content-Type", "Authorization"}
)

// CORS allows any origin. The allow headers go out on every response,
// with or without an Origin header. Preflights carrying an Origin are
// answered by gin-contrib/cors; any other OPTIONS request gets 204 here.
func CORS() gin.HandlerFunc {
	preflight := cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    corsAllowMethods,
		AllowHeaders:    corsAllowHeaders,
		MaxAge:          12 * time.Hour,
	})

	allowMethods := strings.Join(corsAllowMethods, ",")
	allowHeaders := strings.Join(corsAllowHeaders, ",")

	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Headers", allowHeaders)
		header.Set("Access-Control-Allow-Methods", allowMethods)
		preflight(c)
		if !c.IsAborted() && c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
		}
	}
}
