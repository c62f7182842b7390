package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/tbourn/transport-edu-backend/internal/domain"
)

func seedReport(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	ctx := context.Background()

	bm := NewBookmarkService(db, repoShim{}, nil)
	if _, err := bm.Add(ctx, userID, domain.ItemEquipment, "APN-60A", "APN-60A", "장비 상세"); err != nil {
		t.Fatalf("seed bookmark: %v", err)
	}
	pg := &ProgressService{DB: db}
	if err := pg.SetCompletion(ctx, userID, domain.Pages[0], true); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if err := pg.SetCompletion(ctx, userID, domain.Pages[1], false); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if _, err := (&QuizService{DB: db}).Record(ctx, userID, "기본", 2, 3, nil); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
}

func TestReport_Export(t *testing.T) {
	db := newSvcDB(t, true)
	seedReport(t, db, "u1")

	raw, err := (&ReportService{DB: db}).Export(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); !reflect.DeepEqual(got, []string{SheetProgress, SheetQuiz, SheetBookmarks}) {
		t.Fatalf("sheets=%v", got)
	}

	rows, err := f.GetRows(SheetProgress)
	if err != nil || len(rows) < 8 {
		t.Fatalf("progress rows=%d err=%v", len(rows), err)
	}
	if !reflect.DeepEqual(rows[0], []string{"페이지", "상태", "최근 변경"}) {
		t.Fatalf("header=%v", rows[0])
	}
	if rows[1][0] != domain.Pages[0] || rows[1][1] != "완료" || rows[2][1] != "진행 중" || rows[3][1] != "미방문" {
		t.Fatalf("states=%v %v %v", rows[1], rows[2], rows[3])
	}
	if last := rows[len(rows)-1]; last[0] != "진도율" || last[1] != "1/7" {
		t.Fatalf("total row=%v", last)
	}

	qrows, err := f.GetRows(SheetQuiz)
	if err != nil || len(qrows) != 2 {
		t.Fatalf("quiz rows=%d err=%v", len(qrows), err)
	}
	if !reflect.DeepEqual(qrows[1][:4], []string{"기본", "2", "3", "67"}) {
		t.Fatalf("quiz row=%v", qrows[1])
	}

	brows, err := f.GetRows(SheetBookmarks)
	if err != nil || len(brows) != 2 || brows[1][1] != "APN-60A" {
		t.Fatalf("bookmark rows=%v err=%v", brows, err)
	}
}

func TestReport_ReadsShareOneTransaction(t *testing.T) {
	db := newSvcDB(t, true)
	seedReport(t, db, "u1")

	var inTx, outside int
	err := db.Callback().Query().Before("gorm:query").Register("test:report_tx", func(d *gorm.DB) {
		if _, ok := d.Statement.ConnPool.(*sql.Tx); ok {
			inTx++
		} else {
			outside++
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	if _, err := (&ReportService{DB: db}).Export(context.Background(), "u1"); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if inTx != 3 || outside != 0 {
		t.Fatalf("queries in tx=%d outside=%d; want 3 and 0", inTx, outside)
	}
}

func TestReport_Errors(t *testing.T) {
	if _, err := (&ReportService{DB: newSvcDB(t, true)}).Export(context.Background(), " "); !errors.Is(err, ErrEmptyUserID) {
		t.Fatalf("blank user: %v", err)
	}
	if _, err := (&ReportService{DB: newSvcDB(t, false)}).Export(context.Background(), "u1"); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("missing tables: %v", err)
	}
}
