// Package services – ProgressService
//
// ProgressService tracks which dashboard pages a user has completed. A page
// moves from "not visited" to complete/incomplete on its first toggle and can
// flip between those two states afterwards; it never returns to "not visited".
package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/tbourn/transport-edu-backend/internal/domain"
	"github.com/tbourn/transport-edu-backend/internal/repo"
)

// ProgressService records per-page completion flags.
type ProgressService struct {
	DB *gorm.DB
	// Now returns the current time; defaults to time.Now().UTC().
	Now func() time.Time
}

// PageStatus is the completion state of one page. Visited is false when the
// page has never been toggled.
type PageStatus struct {
	Page      string     `json:"page"`
	Visited   bool       `json:"visited"`
	Completed bool       `json:"completed"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ProgressSummary aggregates a user's progress over the fixed page list.
type ProgressSummary struct {
	Completed int          `json:"completed"`
	Total     int          `json:"total"`
	Percent   float64      `json:"percent" example:"42.9"`
	Pages     []PageStatus `json:"pages"`
}

// SetCompletion sets the completion flag of pageName for userID. The first
// call inserts the row with both timestamps; later calls change the flag and
// updated_at only.
func (s *ProgressService) SetCompletion(ctx context.Context, userID, pageName string, completed bool) (err error) {
	ctx, op := startOp(ctx, "services/ProgressService", "progress.set",
		attribute.String("user.id", userID),
		attribute.String("page", pageName),
		attribute.Bool("completed", completed),
	)
	defer op.done(&err)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return invalid(op.name, ErrEmptyUserID)
	}
	if !domain.ValidPage(pageName) {
		return invalid(op.name, ErrInvalidPage)
	}

	now := s.now()
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.UpsertProgress(ctx, tx, userID, pageName, completed, now)
	})
	return storeErr(op.name, err)
}

// ListForUser returns every progress row recorded for userID.
func (s *ProgressService) ListForUser(ctx context.Context, userID string) (out []domain.LearningProgress, err error) {
	ctx, op := startOp(ctx, "services/ProgressService", "progress.list",
		attribute.String("user.id", userID),
	)
	defer op.done(&err)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalid(op.name, ErrEmptyUserID)
	}
	out, err = repo.ListProgress(ctx, s.DB, userID)
	if err != nil {
		return nil, storeErr(op.name, err)
	}
	return out, nil
}

// Page returns the state of one page. A page that was never toggled comes
// back with Visited=false rather than an error.
func (s *ProgressService) Page(ctx context.Context, userID, pageName string) (st PageStatus, err error) {
	ctx, op := startOp(ctx, "services/ProgressService", "progress.get",
		attribute.String("user.id", userID),
		attribute.String("page", pageName),
	)
	defer op.done(&err)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return PageStatus{}, invalid(op.name, ErrEmptyUserID)
	}
	if !domain.ValidPage(pageName) {
		return PageStatus{}, invalid(op.name, ErrInvalidPage)
	}

	st = PageStatus{Page: pageName}
	row, err := repo.GetProgress(ctx, s.DB, userID, pageName)
	if errors.Is(err, repo.ErrNotFound) {
		return st, nil
	}
	if err != nil {
		return PageStatus{}, storeErr(op.name, err)
	}
	ts := row.UpdatedAt
	st.Visited, st.Completed, st.UpdatedAt = true, row.Completed, &ts
	return st, nil
}

// Summary reports completed pages out of the fixed page list, with the
// percentage rounded to one decimal (3 of 7 → 42.9).
func (s *ProgressService) Summary(ctx context.Context, userID string) (ProgressSummary, error) {
	rows, err := s.ListForUser(ctx, userID)
	if err != nil {
		return ProgressSummary{}, err
	}
	return Summarize(rows), nil
}

// Summarize builds a ProgressSummary from raw rows. Rows for pages outside
// domain.Pages are ignored.
func Summarize(rows []domain.LearningProgress) ProgressSummary {
	byPage := make(map[string]domain.LearningProgress, len(rows))
	for _, r := range rows {
		byPage[r.PageName] = r
	}

	sum := ProgressSummary{Total: len(domain.Pages), Pages: make([]PageStatus, 0, len(domain.Pages))}
	for _, p := range domain.Pages {
		st := PageStatus{Page: p}
		if r, ok := byPage[p]; ok {
			ts := r.UpdatedAt
			st.Visited = true
			st.Completed = r.Completed
			st.UpdatedAt = &ts
			if r.Completed {
				sum.Completed++
			}
		}
		sum.Pages = append(sum.Pages, st)
	}
	sum.Percent = CompletionPercent(sum.Completed, sum.Total)
	return sum
}

// CompletionPercent returns completed/total*100 rounded to one decimal place.
func CompletionPercent(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

func (s *ProgressService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
