package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/transport-edu-backend/internal/http/middleware"
	"github.com/tbourn/transport-edu-backend/internal/services"
)

// ErrorResponse is the error envelope every endpoint returns.
//
//	HTTP/1.1 404 Not Found
//	{"request_id": "123e4567-e89b-12d3-a456-426614174000", "code": "unknown_level", "message": "unknown quiz level"}
type ErrorResponse struct {
	// Echo of X-Request-ID, for matching a client report to server logs
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable machine-readable code, one of the ErrCode constants
	Code string `json:"code" example:"not_found"`
	// Safe to show to users
	Message string `json:"message" example:"resource not found"`
}

// errorReply is what failErr writes for one class of service error. An empty
// msg passes the validation text through.
type errorReply struct {
	status int
	code   string
	msg    string
}

var kindReplies = map[services.Kind]errorReply{
	services.KindInvalidInput:        {http.StatusBadRequest, ErrCodeBadRequest, ""},
	services.KindNotFound:            {http.StatusNotFound, ErrCodeNotFound, "resource not found"},
	services.KindConstraintViolation: {http.StatusConflict, ErrCodeConflict, "constraint violation"},
	services.KindStorageUnavailable:  {http.StatusServiceUnavailable, ErrCodeStorageUnavailable, "storage unavailable"},
}

var internalReply = errorReply{http.StatusInternalServerError, ErrCodeInternal, "internal server error"}

// replyFor resolves a service error to its envelope. An unknown quiz level is
// a missing resource, not bad input, and a cancelled request reads as an
// unavailable store.
func replyFor(err error) errorReply {
	switch {
	case errors.Is(err, services.ErrUnknownLevel):
		return errorReply{http.StatusNotFound, ErrCodeUnknownLevel, publicMessage(err)}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errorReply{http.StatusServiceUnavailable, ErrCodeStorageUnavailable, "request cancelled"}
	}
	r, ok := kindReplies[services.KindOf(err)]
	if !ok {
		return internalReply
	}
	if r.msg == "" {
		r.msg = publicMessage(err)
	}
	return r
}

// publicMessage returns the validation message wrapped by an invalid-input
// error. Other errors keep their full text; callers only expose it for
// invalid input.
func publicMessage(err error) string {
	var se *services.StoreError
	if errors.As(err, &se) && se.Kind == services.KindInvalidInput && se.Err != nil {
		return se.Err.Error()
	}
	return err.Error()
}

// failErr writes the envelope for a service error. The cause of a 5xx is
// attached to the context so fail and the access log both record it.
func failErr(c *gin.Context, err error) {
	r := replyFor(err)
	if r.status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	fail(c, r.status, r.code, r.msg)
}

// fail aborts the request with an ErrorResponse. 5xx replies are logged on
// the request logger together with the last attached error.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		ev := middleware.LoggerFrom(c).Error().Int("status", status).Str("code", code)
		if last := c.Errors.Last(); last != nil {
			ev = ev.Err(last.Err)
		}
		ev.Str("message", msg).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	})
}

// Fail lets the router answer with the same envelope, e.g. for health checks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

func ok(c *gin.Context, status int, body any) { c.JSON(status, body) }

func noContent(c *gin.Context) { c.Status(http.StatusNoContent) }

// weakETag sets a weak ETag derived from (count, latest) and reports whether
// the request's If-None-Match already matches it. The tag is per user, so
// responses vary on X-User-ID.
func weakETag(c *gin.Context, kind string, count int64, latest *time.Time) bool {
	var ts int64
	if latest != nil {
		ts = latest.UnixNano()
	}
	etag := fmt.Sprintf(`W/"%s:%d:%d"`, kind, count, ts)
	c.Header("ETag", etag)
	c.Writer.Header().Add("Vary", middleware.UserIDHeader)
	return c.GetHeader("If-None-Match") == etag
}
