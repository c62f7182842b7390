// Bookmark HTTP handlers.
//
// This file exposes REST endpoints for a user's bookmarks:
//   - GET    /bookmarks            (list, ETag support)
//   - POST   /bookmarks            (add; duplicates are reported, not stored)
//   - GET    /bookmarks/{itemId}   (is the item bookmarked?)
//   - DELETE /bookmarks/{itemId}   (remove; idempotent)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/transport-edu-backend/internal/domain"
	"github.com/tbourn/transport-edu-backend/internal/repo"
	"github.com/tbourn/transport-edu-backend/internal/services"
)

//
// DTOs
//

// AddBookmarkRequest is the JSON payload for bookmarking a catalog item.
type AddBookmarkRequest struct {
	// ItemType is one of 장비, 용어, 기술.
	ItemType string `json:"item_type" binding:"required" example:"장비"`
	// ItemID is the catalog key (model, term or technology name).
	ItemID string `json:"item_id" binding:"required,max=100" example:"OPN-3100"`
	// Title optionally overrides the catalog title.
	Title string `json:"title" binding:"max=200" example:"OPN-3100"`
	// Category optionally overrides the catalog category.
	Category string `json:"category" binding:"max=50" example:"장비 상세"`
}

// AddBookmarkResponse reports whether a new bookmark was stored.
type AddBookmarkResponse struct {
	Added  bool   `json:"added"`
	ItemID string `json:"item_id" example:"OPN-3100"`
}

// RemoveBookmarkResponse reports whether a bookmark was deleted.
type RemoveBookmarkResponse struct {
	Removed bool   `json:"removed"`
	ItemID  string `json:"item_id" example:"OPN-3100"`
}

// BookmarkStatusResponse answers an existence check.
type BookmarkStatusResponse struct {
	ItemID     string `json:"item_id" example:"OPN-3100"`
	Bookmarked bool   `json:"bookmarked"`
}

// ListBookmarksResponse wraps a user's bookmarks, newest first.
type ListBookmarksResponse struct {
	Bookmarks []domain.Bookmark `json:"bookmarks"`
	Count     int               `json:"count"`
}

//
// Handlers
//

// ListBookmarks godoc
// @ID          listBookmarks
// @Summary     List bookmarks
// @Description Returns the user's bookmarks, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Bookmarks
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID"                     example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
//
// @Success     200  {object} handlers.ListBookmarksResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     503  {object} handlers.ErrorResponse "Storage unavailable"
// @Router      /bookmarks [get]
func (h *Handlers) ListBookmarks(c *gin.Context) {
	ctx := c.Request.Context()
	uid := h.userID(c)

	// ETag pre-check (best effort).
	if svc, ok := h.bmSvc.(*services.BookmarkService); ok && svc.DB != nil {
		if count, latest, err := repo.BookmarksStats(ctx, svc.DB, uid); err == nil {
			if weakETag(c, "bookmarks", count, latest) {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.bmSvc.List(ctx, uid)
	if err != nil {
		failErr(c, err)
		return
	}
	if items == nil {
		items = []domain.Bookmark{}
	}
	ok(c, http.StatusOK, ListBookmarksResponse{Bookmarks: items, Count: len(items)})
}

// AddBookmark godoc
// @ID          addBookmark
// @Summary     Bookmark a catalog item
// @Description Stores a bookmark. Title and category default to the catalog entry. Adding an existing bookmark returns 200 with added=false.
// @Tags        Bookmarks
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Param       body       body    handlers.AddBookmarkRequest  true  "Bookmark payload"
//
// @Success     201  {object}  handlers.AddBookmarkResponse "Created"
// @Success     200  {object}  handlers.AddBookmarkResponse "Already bookmarked"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     503  {object}  handlers.ErrorResponse  "Storage unavailable"
// @Router      /bookmarks [post]
func (h *Handlers) AddBookmark(c *gin.Context) {
	var req AddBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "item_type and item_id are required")
		return
	}

	itemID := strings.TrimSpace(req.ItemID)
	added, err := h.bmSvc.Add(c.Request.Context(), h.userID(c),
		domain.ItemType(strings.TrimSpace(req.ItemType)), itemID, req.Title, req.Category)
	if err != nil {
		failErr(c, err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	ok(c, status, AddBookmarkResponse{Added: added, ItemID: itemID})
}

// GetBookmark godoc
// @ID          getBookmark
// @Summary     Check a bookmark
// @Description Reports whether the user has bookmarked the item.
// @Tags        Bookmarks
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Param       itemId     path    string  true  "Catalog item id"  example(OPN-3100)
//
// @Success     200  {object} handlers.BookmarkStatusResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Router      /bookmarks/{itemId} [get]
func (h *Handlers) GetBookmark(c *gin.Context) {
	itemID := strings.TrimSpace(c.Param("itemId"))
	found, err := h.bmSvc.Exists(c.Request.Context(), h.userID(c), itemID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, BookmarkStatusResponse{ItemID: itemID, Bookmarked: found})
}

// RemoveBookmark godoc
// @ID          removeBookmark
// @Summary     Remove a bookmark
// @Description Deletes the bookmark if present. Removing a missing bookmark returns removed=false.
// @Tags        Bookmarks
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Param       itemId     path    string  true  "Catalog item id"  example(OPN-3100)
//
// @Success     200  {object} handlers.RemoveBookmarkResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     503  {object} handlers.ErrorResponse "Storage unavailable"
// @Router      /bookmarks/{itemId} [delete]
func (h *Handlers) RemoveBookmark(c *gin.Context) {
	itemID := strings.TrimSpace(c.Param("itemId"))
	removed, err := h.bmSvc.Remove(c.Request.Context(), h.userID(c), itemID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, RemoveBookmarkResponse{Removed: removed, ItemID: itemID})
}
