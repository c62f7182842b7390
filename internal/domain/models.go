// Package domain defines the persistence models for per-user learning state:
// bookmarks, learning progress and quiz results. These types are mapped with
// GORM and form the core data layer of the dashboard backend.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ItemType classifies what a bookmark points at in the content catalog.
type ItemType string

const (
	ItemEquipment  ItemType = "장비"
	ItemTerm       ItemType = "용어"
	ItemTechnology ItemType = "기술"
)

// Valid reports whether t is one of the known catalog item kinds.
func (t ItemType) Valid() bool {
	switch t {
	case ItemEquipment, ItemTerm, ItemTechnology:
		return true
	}
	return false
}

// Pages is the fixed, ordered set of dashboard pages that can be tracked for
// learning progress. Completion percentages are computed against its length.
var Pages = []string{
	"홈 (대시보드)",
	"기술 비교",
	"장비 상세 정보",
	"용어 사전",
	"망 구성도",
	"장비 추천",
	"퀴즈",
}

// ValidPage reports whether name is part of Pages.
func ValidPage(name string) bool {
	for _, p := range Pages {
		if p == name {
			return true
		}
	}
	return false
}

// Bookmark is a saved reference from a user to a catalog item. A user holds at
// most one bookmark per item id; rows are created and deleted, never updated.
//
// Fields:
//   - ID: auto-increment primary key.
//   - UserID / ItemID: unique pair (ux_bookmarks_user_item).
//   - ItemType: one of ItemEquipment, ItemTerm, ItemTechnology.
//   - Title / Category: display text captured at bookmark time.
//   - CreatedAt: insertion time (UTC); lists are ordered by it, newest first.
type Bookmark struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id"    gorm:"type:varchar(64);not null;uniqueIndex:ux_bookmarks_user_item,priority:1;index:idx_bookmarks_user_created,priority:1"`
	ItemType  ItemType  `json:"item_type"  gorm:"type:varchar(16);not null"`
	ItemID    string    `json:"item_id"    gorm:"type:varchar(100);not null;uniqueIndex:ux_bookmarks_user_item,priority:2"`
	Title     string    `json:"title"      gorm:"type:varchar(200);not null"`
	Category  string    `json:"category"   gorm:"type:varchar(50)"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index:idx_bookmarks_user_created,priority:2"`
}

// TableName returns the database table name for Bookmark.
func (Bookmark) TableName() string { return "bookmarks" }

// LearningProgress records whether a user has completed a dashboard page.
// The row appears on the first toggle and is updated in place afterwards;
// VisitedAt keeps the first-visit time while UpdatedAt follows every change.
type LearningProgress struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id"    gorm:"type:varchar(64);not null;uniqueIndex:ux_progress_user_page,priority:1"`
	PageName  string    `json:"page_name"  gorm:"type:varchar(100);not null;uniqueIndex:ux_progress_user_page,priority:2"`
	Completed bool      `json:"completed"  gorm:"not null"`
	VisitedAt time.Time `json:"visited_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// TableName returns the database table name for LearningProgress.
func (LearningProgress) TableName() string { return "learning_progress" }

// AnswerDetail is the per-question outcome stored with a quiz attempt.
type AnswerDetail struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation,omitempty"`
}

// QuizResult is one completed quiz attempt. Results are append-only and
// listed most recent first.
type QuizResult struct {
	ID             uint           `json:"id"              gorm:"primaryKey;autoIncrement"`
	UserID         string         `json:"user_id"         gorm:"type:varchar(64);not null;index:idx_quiz_user_completed,priority:1"`
	QuizID         string         `json:"quiz_id"         gorm:"type:varchar(50);not null"`
	Score          int            `json:"score"           gorm:"not null;check:score >= 0"`
	TotalQuestions int            `json:"total_questions" gorm:"not null;check:total_questions >= 0"`
	Answers        datatypes.JSON `json:"answers"         swaggertype:"array,object"`
	CompletedAt    time.Time      `json:"completed_at"    gorm:"not null;index:idx_quiz_user_completed,priority:2"`
}

// TableName returns the database table name for QuizResult.
func (QuizResult) TableName() string { return "quiz_results" }

// Percentage returns the attempt's score as a percentage of total questions.
func (q QuizResult) Percentage() float64 {
	if q.TotalQuestions <= 0 {
		return 0
	}
	return float64(q.Score) / float64(q.TotalQuestions) * 100
}

// SearchLog stores a web-search query together with the summary it produced.
type SearchLog struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Query     string    `json:"query"      gorm:"type:varchar(500);not null"`
	Summary   string    `json:"summary"    gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
}

// TableName returns the database table name for SearchLog.
func (SearchLog) TableName() string { return "search_logs" }
