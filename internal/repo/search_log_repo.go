package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/transport-edu-backend/internal/domain"
)

// CreateSearchLog stores a web-search query and its summary.
func CreateSearchLog(ctx context.Context, db *gorm.DB, query, summary string) (*domain.SearchLog, error) {
	l := &domain.SearchLog{
		Query:     query,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

// ListSearchLogs returns the most recent logs, newest first.
func ListSearchLogs(ctx context.Context, db *gorm.DB, limit int) ([]domain.SearchLog, error) {
	out := []domain.SearchLog{}
	if limit <= 0 {
		limit = 20
	}
	err := db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DeleteSearchLogsBefore removes logs created before cutoff and returns how
// many rows were deleted.
func DeleteSearchLogsBefore(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&domain.SearchLog{})
	return res.RowsAffected, res.Error
}
