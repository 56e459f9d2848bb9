package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"commune/internal/pkg"
)

const (
	// SessionName is the cookie the signed session rides in.
	SessionName = "session"
	// SessionTokenKey is the session key the bearer token lives under.
	SessionTokenKey = "jwt"
	// ContextUserIDKey holds the resolved caller id on the gin context.
	ContextUserIDKey = "user_id"
)

// Sessions resolves the caller from the session cookie. Absence of a
// session, a bad cookie signature, or a tampered token all degrade to an
// anonymous request; authentication is only enforced by an explicit gate.
func Sessions(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Get(c.Request, SessionName)
		if err != nil || sess == nil {
			c.Next()
			return
		}
		raw, ok := sess.Values[SessionTokenKey].(string)
		if !ok || raw == "" {
			c.Next()
			return
		}
		id, err := pkg.DecodeToken(raw)
		if err != nil {
			c.Next()
			return
		}
		c.Set(ContextUserIDKey, id)
		c.Next()
	}
}

// CallerID returns the resolved caller id, if any.
func CallerID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
