// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Bookmark model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only
// persistence and query composition.
//
// Error semantics:
//   - A duplicate (user_id, item_id) insert is not an error: InsertBookmark
//     reports it through its boolean result using ON CONFLICT DO NOTHING.
//   - Deleting a bookmark that does not exist is not an error either.
//   - On DB errors (connectivity issues, schema problems, etc.) the raw gorm
//     error is propagated.
//
// Functions:
//
//   - InsertBookmark(ctx, db, b) -> (inserted bool, error)
//   - DeleteBookmark(ctx, db, userID, itemID) -> (deleted bool, error)
//   - ListBookmarks(ctx, db, userID) -> []domain.Bookmark, error
//   - BookmarkExists(ctx, db, userID, itemID) -> bool, error
//   - GetBookmark(ctx, db, userID, itemID) -> *domain.Bookmark, error
//
// Usage:
//
//	inserted, err := repo.InsertBookmark(ctx, db, &domain.Bookmark{...})
//	if err != nil {
//	    // handle DB failure
//	} else if !inserted {
//	    // already bookmarked
//	}
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/transport-edu-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// InsertBookmark inserts b unless the (user_id, item_id) pair already exists.
// The check and the insert are one statement, so two concurrent adds of the
// same item yield exactly one row. CreatedAt defaults to now (UTC).
func InsertBookmark(ctx context.Context, db *gorm.DB, b *domain.Bookmark) (bool, error) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
			DoNothing: true,
		}).
		Create(b)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// DeleteBookmark removes the bookmark for (userID, itemID). It reports whether
// a row was actually deleted.
func DeleteBookmark(ctx context.Context, db *gorm.DB, userID, itemID string) (bool, error) {
	res := db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&domain.Bookmark{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListBookmarks returns all bookmarks of userID, newest first. Rows created in
// the same instant fall back to id order so the listing is stable.
func ListBookmarks(ctx context.Context, db *gorm.DB, userID string) ([]domain.Bookmark, error) {
	out := []domain.Bookmark{}
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Order("id desc").
		Find(&out).Error
	return out, err
}

// BookmarkExists reports whether userID has bookmarked itemID.
func BookmarkExists(ctx context.Context, db *gorm.DB, userID, itemID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Bookmark{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&n).Error
	return n > 0, err
}

// GetBookmark fetches a single bookmark, or ErrNotFound if missing.
func GetBookmark(ctx context.Context, db *gorm.DB, userID, itemID string) (*domain.Bookmark, error) {
	var b domain.Bookmark
	err := db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Bookmarks adapts the bookmark functions to a method set, for services that
// take the repository as an interface.
type Bookmarks struct{}

func (Bookmarks) InsertBookmark(ctx context.Context, db *gorm.DB, b *domain.Bookmark) (bool, error) {
	return InsertBookmark(ctx, db, b)
}

func (Bookmarks) DeleteBookmark(ctx context.Context, db *gorm.DB, userID, itemID string) (bool, error) {
	return DeleteBookmark(ctx, db, userID, itemID)
}

func (Bookmarks) ListBookmarks(ctx context.Context, db *gorm.DB, userID string) ([]domain.Bookmark, error) {
	return ListBookmarks(ctx, db, userID)
}

func (Bookmarks) BookmarkExists(ctx context.Context, db *gorm.DB, userID, itemID string) (bool, error) {
	return BookmarkExists(ctx, db, userID, itemID)
}
