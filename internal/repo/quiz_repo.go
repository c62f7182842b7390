// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the QuizResult
// model. Quiz results are append-only: there is no update or delete here.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/transport-edu-backend/internal/domain"
)

// CreateQuizResult appends a quiz attempt. CompletedAt defaults to now (UTC).
func CreateQuizResult(ctx context.Context, db *gorm.DB, r *domain.QuizResult) error {
	if r.CompletedAt.IsZero() {
		r.CompletedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(r).Error
}

// ListQuizResults returns attempts for userID, most recent first. A limit of
// zero or less returns every attempt.
func ListQuizResults(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.QuizResult, error) {
	out := []domain.QuizResult{}
	q := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at desc").
		Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// GetQuizResult fetches one attempt by id, scoped to userID.
func GetQuizResult(ctx context.Context, db *gorm.DB, id uint, userID string) (*domain.QuizResult, error) {
	var r domain.QuizResult
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// QuizAggregate summarizes a user's attempts.
type QuizAggregate struct {
	Attempts    int64
	AvgPercent  float64
	BestPercent float64
}

// AggregateQuizResults computes attempt count plus average and best percentage
// for userID. Attempts with zero questions count as 0%.
func AggregateQuizResults(ctx context.Context, db *gorm.DB, userID string) (QuizAggregate, error) {
	var agg QuizAggregate
	const pct = "CASE WHEN total_questions > 0 THEN score * 100.0 / total_questions ELSE 0 END"
	err := db.WithContext(ctx).
		Model(&domain.QuizResult{}).
		Select("COUNT(*) AS attempts, COALESCE(AVG("+pct+"), 0) AS avg_percent, COALESCE(MAX("+pct+"), 0) AS best_percent").
		Where("user_id = ?", userID).
		Scan(&agg).Error
	return agg, err
}
