package app

import (
	"time"

	"bay-sanitation/internal/auth"
	"bay-sanitation/internal/config"
	"bay-sanitation/internal/routes"
	"bay-sanitation/internal/sanitation"

	"github.com/gin-gonic/gin"
)

func securityHeaders(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")

	// Disable caching; derived statuses go stale by the day
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Next()
}

// HTTPServer assembles the gin engine over the sanitation engine and the
// injected authenticator.
func HTTPServer(cfg *config.Config, service *sanitation.Service, authenticator auth.Authenticator) *gin.Engine {
	r := gin.Default()

	sessions := auth.NewSessions(cfg.Secret, time.Duration(cfg.Auth.SessionTTL)*time.Hour)
	authEnabled := cfg.Auth.AdminPasswordHash != ""

	r.Use(securityHeaders)
	r.Use(func(c *gin.Context) {
		c.Set(routes.CtxSanitation, service)
		c.Set(routes.CtxSessions, sessions)
		c.Set(routes.CtxAuth, authenticator)
		c.Next()
	})
	r.Use(routes.ErrorHandler())

	routes.Health(&r.RouterGroup)

	api := r.Group("/api")
	routes.AuthRoutes(api.Group("/auth"))

	records := api.Group("/records")
	records.Use(mutationsOnly(routes.RequireAuth(authEnabled)))
	routes.RecordRoutes(records)

	schedules := api.Group("/schedules")
	schedules.Use(mutationsOnly(routes.RequireAuth(authEnabled)))
	routes.ScheduleRoutes(schedules)

	policy := api.Group("/policy")
	policy.Use(mutationsOnly(routes.RequireAuth(authEnabled)))
	routes.PolicyRoutes(policy)

	routes.ReportRoute(api.Group("/report"))
	routes.BayRoutes(api.Group("/bays"))

	return r
}

// mutationsOnly applies a guard to everything except safe reads.
func mutationsOnly(guard gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			c.Next()
		default:
			guard(c)
		}
	}
}
