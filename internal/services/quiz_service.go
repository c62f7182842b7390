// Package services – QuizService
//
// QuizService keeps the append-only quiz ledger. Record stores an attempt
// as given; Submit grades answers against the quiz bank first. Submissions
// may carry an idempotency key so that a retried POST returns the stored
// attempt instead of appending a second one.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tbourn/transport-edu-backend/internal/catalog"
	"github.com/tbourn/transport-edu-backend/internal/domain"
	"github.com/tbourn/transport-edu-backend/internal/repo"
)

// QuizBank supplies the questions of a difficulty level.
type QuizBank interface {
	Quiz(level string) ([]catalog.Question, bool)
}

// QuizService records and grades quiz attempts.
type QuizService struct {
	DB   *gorm.DB
	Bank QuizBank
	// IdemTTL is how long a submission key is remembered; defaults to 24h.
	IdemTTL time.Duration
	// RecentLimit caps the attempts returned by Stats; defaults to 10.
	RecentLimit int
}

// QuizStats summarizes a user's quiz history.
type QuizStats struct {
	Attempts    int64               `json:"attempts"`
	AvgPercent  float64             `json:"avg_percent"  example:"66.7"`
	BestPercent float64             `json:"best_percent" example:"100"`
	Recent      []domain.QuizResult `json:"recent"`
}

// Record appends a quiz attempt. score must lie in [0, total].
func (s *QuizService) Record(ctx context.Context, userID, level string, score, total int, detail []domain.AnswerDetail) (res *domain.QuizResult, err error) {
	ctx, op := startOp(ctx, "services/QuizService", "quiz.record",
		attribute.String("user.id", userID),
		attribute.String("quiz.level", level),
		attribute.Int("quiz.score", score),
		attribute.Int("quiz.total", total),
	)
	defer op.done(&err)

	r, err := s.build(op.name, userID, level, score, total, detail)
	if err != nil {
		return nil, err
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.CreateQuizResult(ctx, tx, r)
	})
	if err != nil {
		return nil, storeErr(op.name, err)
	}
	return r, nil
}

// Submit grades answers (question index → chosen option) for level and
// records the attempt. Unanswered questions count as wrong. When idemKey is
// set and a live record exists for it, the stored attempt is returned with
// replayed=true and nothing is appended.
func (s *QuizService) Submit(ctx context.Context, userID, level string, answers map[int]string, idemKey string) (res *domain.QuizResult, replayed bool, err error) {
	ctx, op := startOp(ctx, "services/QuizService", "quiz.submit",
		attribute.String("user.id", userID),
		attribute.String("quiz.level", level),
		attribute.Bool("idempotent", idemKey != ""),
	)
	defer op.done(&err)

	userID, level = strings.TrimSpace(userID), strings.TrimSpace(level)
	if userID == "" {
		return nil, false, invalid(op.name, ErrEmptyUserID)
	}
	questions, ok := s.Bank.Quiz(level)
	if !ok {
		return nil, false, invalid(op.name, ErrUnknownLevel)
	}

	score, detail := Grade(questions, answers)
	r, err := s.build(op.name, userID, level, score, len(questions), detail)
	if err != nil {
		return nil, false, err
	}

	scope := SubmissionScope(level)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if idemKey != "" {
			prev, perr := s.replay(ctx, tx, userID, scope, idemKey)
			if perr != nil {
				return perr
			}
			if prev != nil {
				res, replayed = prev, true
				return nil
			}
		}
		if terr := repo.CreateQuizResult(ctx, tx, r); terr != nil {
			return terr
		}
		if idemKey != "" {
			_, terr := repo.CreateIdempotency(ctx, tx, userID, scope, idemKey,
				strconv.FormatUint(uint64(r.ID), 10), http.StatusCreated, s.idemTTL())
			if terr != nil {
				return terr
			}
		}
		res = r
		return nil
	})
	if errors.Is(err, repo.ErrDuplicate) {
		// A concurrent submission with the same key won; return its attempt.
		prev, perr := s.replay(ctx, s.DB, userID, scope, idemKey)
		if perr == nil && prev != nil {
			op.noop = true
			return prev, true, nil
		}
		return nil, false, storeErr(op.name, errors.Join(err, perr))
	}
	if err != nil {
		return nil, false, storeErr(op.name, err)
	}
	op.noop = replayed
	return res, replayed, nil
}

// replay returns the attempt remembered under key, or nil when none is live.
func (s *QuizService) replay(ctx context.Context, db *gorm.DB, userID, scope, key string) (*domain.QuizResult, error) {
	rec, err := repo.GetIdempotency(ctx, db, userID, scope, key, time.Now().UTC())
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseUint(rec.ResourceID, 10, 64)
	if err != nil {
		return nil, nil
	}
	return repo.GetQuizResult(ctx, db, uint(id), userID)
}

// History returns userID's attempts, most recent first. limit <= 0 returns all.
func (s *QuizService) History(ctx context.Context, userID string, limit int) (out []domain.QuizResult, err error) {
	ctx, op := startOp(ctx, "services/QuizService", "quiz.history",
		attribute.String("user.id", userID),
		attribute.Int("limit", limit),
	)
	defer op.done(&err)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalid(op.name, ErrEmptyUserID)
	}
	out, err = repo.ListQuizResults(ctx, s.DB, userID, limit)
	if err != nil {
		return nil, storeErr(op.name, err)
	}
	return out, nil
}

// Get returns one attempt owned by userID.
func (s *QuizService) Get(ctx context.Context, userID string, id uint) (res *domain.QuizResult, err error) {
	ctx, op := startOp(ctx, "services/QuizService", "quiz.get",
		attribute.String("user.id", userID),
		attribute.Int64("quiz.result_id", int64(id)),
	)
	defer op.done(&err)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalid(op.name, ErrEmptyUserID)
	}
	res, err = repo.GetQuizResult(ctx, s.DB, id, userID)
	if err != nil {
		return nil, storeErr(op.name, err)
	}
	return res, nil
}

// Stats returns attempt count, average and best percentage, and the most
// recent attempts.
func (s *QuizService) Stats(ctx context.Context, userID string) (st QuizStats, err error) {
	ctx, op := startOp(ctx, "services/QuizService", "quiz.stats",
		attribute.String("user.id", userID),
	)
	defer op.done(&err)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return QuizStats{}, invalid(op.name, ErrEmptyUserID)
	}
	agg, err := repo.AggregateQuizResults(ctx, s.DB, userID)
	if err != nil {
		return QuizStats{}, storeErr(op.name, err)
	}
	recent, err := repo.ListQuizResults(ctx, s.DB, userID, s.recentLimit())
	if err != nil {
		return QuizStats{}, storeErr(op.name, err)
	}
	return QuizStats{
		Attempts:    agg.Attempts,
		AvgPercent:  round1(agg.AvgPercent),
		BestPercent: round1(agg.BestPercent),
		Recent:      recent,
	}, nil
}

func (s *QuizService) build(op, userID, level string, score, total int, detail []domain.AnswerDetail) (*domain.QuizResult, error) {
	userID, level = strings.TrimSpace(userID), strings.TrimSpace(level)
	switch {
	case userID == "":
		return nil, invalid(op, ErrEmptyUserID)
	case level == "":
		return nil, invalid(op, ErrUnknownLevel)
	case total < 0 || score < 0 || score > total:
		return nil, invalid(op, ErrInvalidScore)
	}
	if detail == nil {
		detail = []domain.AnswerDetail{}
	}
	raw, err := json.Marshal(detail)
	if err != nil {
		return nil, invalid(op, err)
	}
	return &domain.QuizResult{
		UserID:         userID,
		QuizID:         level,
		Score:          score,
		TotalQuestions: total,
		Answers:        datatypes.JSON(raw),
	}, nil
}

func (s *QuizService) idemTTL() time.Duration {
	if s.IdemTTL > 0 {
		return s.IdemTTL
	}
	return 24 * time.Hour
}

func (s *QuizService) recentLimit() int {
	if s.RecentLimit > 0 {
		return s.RecentLimit
	}
	return 10
}

// SubmissionScope is the idempotency scope for submissions of level.
func SubmissionScope(level string) string { return "quiz:" + level }

// Grade scores answers against questions and returns per-question detail in
// question order.
func Grade(questions []catalog.Question, answers map[int]string) (int, []domain.AnswerDetail) {
	score := 0
	detail := make([]domain.AnswerDetail, 0, len(questions))
	for i, q := range questions {
		given := strings.TrimSpace(answers[i])
		ok := given != "" && given == q.Answer
		if ok {
			score++
		}
		detail = append(detail, domain.AnswerDetail{
			Question:      q.Question,
			UserAnswer:    given,
			CorrectAnswer: q.Answer,
			Correct:       ok,
			Explanation:   q.Explanation,
		})
	}
	return score, detail
}

// Percentage returns score/total as a percentage; 0 when total is 0.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// Verdict returns the feedback line shown for a percentage.
func Verdict(percent float64) string {
	switch {
	case percent >= 80:
		return "🎉 훌륭합니다!"
	case percent >= 60:
		return "👍 잘하셨습니다!"
	}
	return "💪 조금 더 학습이 필요합니다."
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
