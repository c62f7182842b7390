// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// LearningProgress model.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving business rules (valid page names, summaries) to
// the services package.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/transport-edu-backend/internal/domain"
)

// UpsertProgress records the completion flag for (userID, pageName) in a
// single INSERT ... ON CONFLICT DO UPDATE statement.
//
// On first insert both visited_at and updated_at are set to now. On conflict
// only completed and updated_at change; visited_at keeps its original value.
func UpsertProgress(ctx context.Context, db *gorm.DB, userID, pageName string, completed bool, now time.Time) error {
	row := &domain.LearningProgress{
		UserID:    userID,
		PageName:  pageName,
		Completed: completed,
		VisitedAt: now,
		UpdatedAt: now,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "page_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
		}).
		Create(row).Error
}

// ListProgress returns every progress row for userID in page-creation order.
func ListProgress(ctx context.Context, db *gorm.DB, userID string) ([]domain.LearningProgress, error) {
	out := []domain.LearningProgress{}
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// GetProgress fetches the row for (userID, pageName), or ErrNotFound.
func GetProgress(ctx context.Context, db *gorm.DB, userID, pageName string) (*domain.LearningProgress, error) {
	var p domain.LearningProgress
	err := db.WithContext(ctx).
		Where("user_id = ? AND page_name = ?", userID, pageName).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

