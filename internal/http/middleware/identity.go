package middleware

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDHeader carries the caller's user identifier. There is no
	// authentication; the header only partitions per-user state.
	UserIDHeader = "X-User-ID"
	// userIDKey is the Gin context key holding the resolved user id.
	userIDKey = "userID"
	// maxUserIDLen matches the user_id column width.
	maxUserIDLen = 64
)

// UserIdentity resolves the acting user from X-User-ID and stores it under
// "userID". A blank or oversized header falls back to defaultID.
func UserIdentity(defaultID string) gin.HandlerFunc {
	defaultID = strings.TrimSpace(defaultID)
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if uid == "" || utf8.RuneCountInString(uid) > maxUserIDLen {
			uid = defaultID
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}

// UserIDFrom returns the user id set by UserIdentity, or "".
func UserIDFrom(c *gin.Context) string {
	v, _ := c.Get(userIDKey)
	return asString(v)
}
