package middleware

import (
	"net/http"

	"marseille-immobilier/internal/auth"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const identityKey = "Identity"

// InjectIdentity turns the session into an explicit auth.Identity stored
// on the request context. Anonymous requests get a zero identity.
func InjectIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		uidRaw := sess.Get("user_id")
		nameRaw := sess.Get("username")
		if uid, ok := uidRaw.(uint); ok && uid > 0 {
			name, _ := nameRaw.(string)
			c.Set(identityKey, auth.Identity{UserID: uid, Username: name})
		}

		c.Next()
	}
}

// RequireAuth redirects anonymous requests on admin pages to the login
// form.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Identity(c).Valid() {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity returns the caller identity injected for this request, zero
// when anonymous.
func Identity(c *gin.Context) auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(auth.Identity); ok {
			return id
		}
	}
	return auth.Identity{}
}
