package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/transport-edu-backend/internal/repo"
	"github.com/tbourn/transport-edu-backend/internal/services"
)

// SetProgressRequest toggles the completion flag of a page.
type SetProgressRequest struct {
	Completed *bool `json:"completed" binding:"required" example:"true"`
}

// GetProgress godoc
// @ID          getProgress
// @Summary     Learning progress
// @Description Completion state of every dashboard page plus the completion percentage (one decimal). Supports weak ETag.
// @Tags        Progress
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID"  example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
//
// @Success     200  {object} services.ProgressSummary
// @Success     304  {string} string "Not Modified"
// @Failure     503  {object} handlers.ErrorResponse "Storage unavailable"
// @Router      /progress [get]
func (h *Handlers) GetProgress(c *gin.Context) {
	ctx := c.Request.Context()
	uid := h.userID(c)

	if svc, ok := h.progSvc.(*services.ProgressService); ok && svc.DB != nil {
		if count, latest, err := repo.ProgressStats(ctx, svc.DB, uid); err == nil {
			if weakETag(c, "progress", count, latest) {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	sum, err := h.progSvc.Summary(ctx, uid)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, sum)
}

// GetPageProgress godoc
// @ID          getPageProgress
// @Summary     Progress of one page
// @Tags        Progress
// @Produce     json
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Param       page       path    string  true  "Page name"  example(기술 비교)
// @Success     200  {object} services.PageStatus
// @Failure     400  {object} handlers.ErrorResponse "Unknown page"
// @Failure     503  {object} handlers.ErrorResponse "Storage unavailable"
// @Router      /progress/{page} [get]
func (h *Handlers) GetPageProgress(c *gin.Context) {
	st, err := h.progSvc.Page(c.Request.Context(), h.userID(c), c.Param("page"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, st)
}

// SetProgress godoc
// @ID          setProgress
// @Summary     Mark a page complete or incomplete
// @Description The first call records the visit; later calls only flip the flag.
// @Tags        Progress
// @Accept      json
//
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Param       page       path    string  true  "Page name"  example(기술 비교)
// @Param       body       body    handlers.SetProgressRequest  true  "Completion flag"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Unknown page or bad body"
// @Failure     503  {object} handlers.ErrorResponse "Storage unavailable"
// @Router      /progress/{page} [put]
func (h *Handlers) SetProgress(c *gin.Context) {
	var req SetProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "completed is required")
		return
	}
	if err := h.progSvc.SetCompletion(c.Request.Context(), h.userID(c), c.Param("page"), *req.Completed); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}
