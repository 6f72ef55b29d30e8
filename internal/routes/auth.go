package routes

import (
	"net/http"

	"bay-sanitation/internal/auth"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "session"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func sessions(c *gin.Context) *auth.Sessions {
	return c.MustGet(CtxSessions).(*auth.Sessions)
}

// AuthRoutes registers login/logout. The authenticator is an injected
// collaborator; nothing below the HTTP layer sees identity.
func AuthRoutes(r *gin.RouterGroup) {

	r.POST("/login", func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}

		authenticator := c.MustGet(CtxAuth).(auth.Authenticator)
		principal, err := authenticator.Authenticate(req.Username, req.Password)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		token, err := sessions(c).Issue(principal)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true, "principal": principal})
	})

	r.POST("/logout", func(c *gin.Context) {
		c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}

// RequireAuth guards mutating routes behind a valid session cookie or
// bearer token. With login unconfigured (no password hash) the guard is
// a no-op so a private deployment keeps the original open behavior.
func RequireAuth(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			if header := c.GetHeader("Authorization"); len(header) > 7 && header[:7] == "Bearer " {
				token = header[7:]
			}
		}
		if token == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		principal, err := sessions(c).Decode(token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set("Principal", principal)
		c.Next()
	}
}
