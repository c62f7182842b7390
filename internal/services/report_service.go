// Package services – ReportService
//
// ReportService exports a user's learning state as an .xlsx workbook with
// three sheets: page progress, quiz history and bookmarks.
package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/tbourn/transport-edu-backend/internal/domain"
	"github.com/tbourn/transport-edu-backend/internal/repo"
)

// Sheet names of the exported workbook.
const (
	SheetProgress  = "학습 진도"
	SheetQuiz      = "퀴즈 기록"
	SheetBookmarks = "즐겨찾기"
)

const reportTimeLayout = "2006-01-02 15:04"

// ReportService builds learning reports.
type ReportService struct {
	DB *gorm.DB
}

// Export returns the workbook bytes for userID.
func (s *ReportService) Export(ctx context.Context, userID string) (out []byte, err error) {
	ctx, op := startOp(ctx, "services/ReportService", "report.export",
		attribute.String("user.id", userID),
	)
	defer op.done(&err)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalid(op.name, ErrEmptyUserID)
	}

	// One transaction so the three sheets describe the same snapshot.
	var (
		progress  []domain.LearningProgress
		quizzes   []domain.QuizResult
		bookmarks []domain.Bookmark
	)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var terr error
		if progress, terr = repo.ListProgress(ctx, tx, userID); terr != nil {
			return terr
		}
		if quizzes, terr = repo.ListQuizResults(ctx, tx, userID, 0); terr != nil {
			return terr
		}
		bookmarks, terr = repo.ListBookmarks(ctx, tx, userID)
		return terr
	})
	if err != nil {
		return nil, storeErr(op.name, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sum := Summarize(progress)
	progressRows := make([][]any, 0, len(sum.Pages)+2)
	for _, p := range sum.Pages {
		state, updated := "미방문", ""
		if p.Visited {
			state = "진행 중"
			if p.Completed {
				state = "완료"
			}
			updated = p.UpdatedAt.Format(reportTimeLayout)
		}
		progressRows = append(progressRows, []any{p.Page, state, updated})
	}
	progressRows = append(progressRows, []any{}, []any{"진도율", fmt.Sprintf("%d/%d", sum.Completed, sum.Total), sum.Percent})

	quizRows := make([][]any, 0, len(quizzes))
	for _, q := range quizzes {
		quizRows = append(quizRows, []any{
			q.QuizID, q.Score, q.TotalQuestions,
			math.Round(q.Percentage()), q.CompletedAt.Format(reportTimeLayout),
		})
	}

	bookmarkRows := make([][]any, 0, len(bookmarks))
	for _, b := range bookmarks {
		bookmarkRows = append(bookmarkRows, []any{
			string(b.ItemType), b.ItemID, b.Title, b.Category, b.CreatedAt.Format(reportTimeLayout),
		})
	}

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetProgress, []any{"페이지", "상태", "최근 변경"}, progressRows},
		{SheetQuiz, []any{"난이도", "점수", "문항 수", "정답률(%)", "응시 시각"}, quizRows},
		{SheetBookmarks, []any{"유형", "항목", "제목", "분류", "추가 시각"}, bookmarkRows},
	}
	for i, sh := range sheets {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), sh.name)
		} else {
			_, err = f.NewSheet(sh.name)
		}
		if err == nil {
			err = writeSheet(f, sh.name, sh.header, sh.rows)
		}
		if err != nil {
			return nil, &StoreError{Op: op.name, Kind: KindUnknown, Err: err}
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &StoreError{Op: op.name, Kind: KindUnknown, Err: err}
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, 18)
}
