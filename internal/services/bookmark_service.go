// Package services – BookmarkService
//
// This file implements the BookmarkService, which manages a user's saved
// references to catalog items (equipment, glossary terms, technologies).
// It validates and normalizes input, fills in titles from the catalog when
// the caller omits them, and delegates persistence to the repository inside a
// per-call transaction.
//
// Adding an item twice and removing an item that is not bookmarked are
// logical no-ops reported as (false, nil), never as errors.
package services

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/tbourn/transport-edu-backend/internal/domain"
)

// BookmarkRepo defines the repository contract required by BookmarkService.
type BookmarkRepo interface {
	// InsertBookmark inserts unless (user_id, item_id) exists; reports whether a row was added.
	InsertBookmark(ctx context.Context, db *gorm.DB, b *domain.Bookmark) (bool, error)
	// DeleteBookmark removes (user_id, item_id); reports whether a row was removed.
	DeleteBookmark(ctx context.Context, db *gorm.DB, userID, itemID string) (bool, error)
	// ListBookmarks returns a user's bookmarks, newest first.
	ListBookmarks(ctx context.Context, db *gorm.DB, userID string) ([]domain.Bookmark, error)
	// BookmarkExists reports whether (user_id, item_id) exists.
	BookmarkExists(ctx context.Context, db *gorm.DB, userID, itemID string) (bool, error)
}

// ItemResolver looks up display metadata for a catalog item.
type ItemResolver interface {
	Resolve(itemType domain.ItemType, itemID string) (title, category string, ok bool)
}

// BookmarkService provides bookmark operations scoped to a user.
type BookmarkService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the bookmark repository used by this service.
	Repo BookmarkRepo
	// Catalog optionally supplies titles and categories for known items.
	Catalog ItemResolver

	// TitleMaxLen caps stored titles by rune length.
	TitleMaxLen int
	// CategoryMaxLen caps stored categories by rune length.
	CategoryMaxLen int
}

// NewBookmarkService constructs a BookmarkService with column-sized limits.
func NewBookmarkService(db *gorm.DB, r BookmarkRepo, catalog ItemResolver) *BookmarkService {
	return &BookmarkService{
		DB:             db,
		Repo:           r,
		Catalog:        catalog,
		TitleMaxLen:    200,
		CategoryMaxLen: 50,
	}
}

// Add bookmarks itemID for userID. It returns false, nil when the item is
// already bookmarked; the stored row is left untouched in that case.
func (s *BookmarkService) Add(ctx context.Context, userID string, itemType domain.ItemType, itemID, title, category string) (added bool, err error) {
	ctx, op := startOp(ctx, "services/BookmarkService", "bookmark.add",
		attribute.String("user.id", userID),
		attribute.String("item.id", itemID),
		attribute.String("item.type", string(itemType)),
	)
	defer op.done(&err)

	userID, itemID = strings.TrimSpace(userID), strings.TrimSpace(itemID)
	switch {
	case userID == "":
		return false, invalid(op.name, ErrEmptyUserID)
	case itemID == "":
		return false, invalid(op.name, ErrEmptyItemID)
	case !itemType.Valid():
		return false, invalid(op.name, ErrInvalidItemType)
	}

	title = normalizeText(title)
	category = normalizeText(category)
	if s.Catalog != nil && (title == "" || category == "") {
		if t, c, ok := s.Catalog.Resolve(itemType, itemID); ok {
			if title == "" {
				title = t
			}
			if category == "" {
				category = c
			}
		}
	}
	if title == "" {
		title = itemID
	}

	b := &domain.Bookmark{
		UserID:   userID,
		ItemType: itemType,
		ItemID:   itemID,
		Title:    clipRunes(title, s.TitleMaxLen),
		Category: clipRunes(category, s.CategoryMaxLen),
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var terr error
		added, terr = s.Repo.InsertBookmark(ctx, tx, b)
		return terr
	})
	if err != nil {
		return false, storeErr(op.name, err)
	}
	op.noop = !added
	return added, nil
}

// Remove deletes the bookmark for itemID. It returns false, nil when nothing
// was bookmarked under that id.
func (s *BookmarkService) Remove(ctx context.Context, userID, itemID string) (removed bool, err error) {
	ctx, op := startOp(ctx, "services/BookmarkService", "bookmark.remove",
		attribute.String("user.id", userID),
		attribute.String("item.id", itemID),
	)
	defer op.done(&err)

	userID, itemID = strings.TrimSpace(userID), strings.TrimSpace(itemID)
	if userID == "" {
		return false, invalid(op.name, ErrEmptyUserID)
	}
	if itemID == "" {
		return false, invalid(op.name, ErrEmptyItemID)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var terr error
		removed, terr = s.Repo.DeleteBookmark(ctx, tx, userID, itemID)
		return terr
	})
	if err != nil {
		return false, storeErr(op.name, err)
	}
	op.noop = !removed
	return removed, nil
}

// List returns userID's bookmarks, newest first. An unknown user yields an
// empty slice.
func (s *BookmarkService) List(ctx context.Context, userID string) (out []domain.Bookmark, err error) {
	ctx, op := startOp(ctx, "services/BookmarkService", "bookmark.list",
		attribute.String("user.id", userID),
	)
	defer op.done(&err)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalid(op.name, ErrEmptyUserID)
	}
	out, err = s.Repo.ListBookmarks(ctx, s.DB, userID)
	if err != nil {
		return nil, storeErr(op.name, err)
	}
	return out, nil
}

// Exists reports whether userID has bookmarked itemID.
func (s *BookmarkService) Exists(ctx context.Context, userID, itemID string) (found bool, err error) {
	ctx, op := startOp(ctx, "services/BookmarkService", "bookmark.exists",
		attribute.String("user.id", userID),
		attribute.String("item.id", itemID),
	)
	defer op.done(&err)

	userID, itemID = strings.TrimSpace(userID), strings.TrimSpace(itemID)
	if userID == "" {
		return false, invalid(op.name, ErrEmptyUserID)
	}
	found, err = s.Repo.BookmarkExists(ctx, s.DB, userID, itemID)
	if err != nil {
		return false, storeErr(op.name, err)
	}
	return found, nil
}

// clipRunes truncates s to max runes; max <= 0 disables clipping.
func clipRunes(s string, max int) string {
	if max > 0 && utf8.RuneCountInString(s) > max {
		return string([]rune(s)[:max])
	}
	return s
}

// normalizeText trims whitespace and collapses multiple spaces to one.
func normalizeText(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)
