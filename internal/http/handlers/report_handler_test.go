package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/tbourn/transport-edu-backend/internal/services"
)

func TestExportReport_Workbook(t *testing.T) {
	r := newTestEngine(t, newHandlerDB(t))
	hdr := map[string]string{"X-User-ID": "reporter"}
	yes := true
	do(t, r, http.MethodPut, "/progress/"+url.PathEscape("퀴즈"), SetProgressRequest{Completed: &yes}, hdr)
	do(t, r, http.MethodPost, "/bookmarks", AddBookmarkRequest{ItemType: "장비", ItemID: "OPN-3000"}, hdr)

	w := do(t, r, http.MethodGet, "/report.xlsx", nil, hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxMIME {
		t.Fatalf("content-type=%q", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, `attachment; filename="learning-report-`) || !strings.HasSuffix(cd, `.xlsx"`) {
		t.Fatalf("content-disposition=%q", cd)
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("cache-control=%q", w.Header().Get("Cache-Control"))
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	if len(f.GetSheetList()) < 3 {
		t.Fatalf("sheets=%v", f.GetSheetList())
	}
}

type failingReports struct{ err error }

func (f failingReports) Export(context.Context, string) ([]byte, error) { return nil, f.err }

func TestExportReport_Errors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"render failure", &services.StoreError{Op: "report.export", Kind: services.KindUnknown, Err: errors.New("excelize")}, http.StatusInternalServerError, ErrCodeExportFailed},
		{"storage", &services.StoreError{Op: "report.export", Kind: services.KindStorageUnavailable, Err: errors.New("db down")}, http.StatusServiceUnavailable, ErrCodeStorageUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := New(Deps{Reports: failingReports{err: tc.err}})
			r := gin.New()
			r.GET("/report.xlsx", h.ExportReport)

			w := do(t, r, http.MethodGet, "/report.xlsx", nil, nil)
			if w.Code != tc.status {
				t.Fatalf("status=%d want %d", w.Code, tc.status)
			}
			if got := decode[ErrorResponse](t, w).Code; got != tc.code {
				t.Fatalf("code=%q want %q", got, tc.code)
			}
			if w.Header().Get("Content-Disposition") != "" {
				t.Fatal("error response carries an attachment header")
			}
		})
	}
}
