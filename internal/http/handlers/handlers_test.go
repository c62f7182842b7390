package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/transport-edu-backend/internal/catalog"
	"github.com/tbourn/transport-edu-backend/internal/http/middleware"
	"github.com/tbourn/transport-edu-backend/internal/repo"
	"github.com/tbourn/transport-edu-backend/internal/search"
	"github.com/tbourn/transport-edu-backend/internal/services"
	"github.com/tbourn/transport-edu-backend/internal/websearch"
)

// ---------- helpers ----------

func newHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

type fakeSearcher struct {
	out []websearch.Result
}

func (f fakeSearcher) Search(context.Context, string, string) []websearch.Result { return f.out }

// newTestEngine wires real services over a fresh database and mounts every
// handler the way the router does, minus rate limiting and telemetry.
func newTestEngine(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	cat := catalog.MustLoad()
	h := New(Deps{
		Bookmarks: services.NewBookmarkService(db, repo.Bookmarks{}, cat),
		Progress:  &services.ProgressService{DB: db},
		Quizzes:   &services.QuizService{DB: db, Bank: cat},
		WebSearch: &services.WebSearchService{DB: db, Client: fakeSearcher{out: []websearch.Result{
			{Text: "**POTN** 신규 도입", Citations: []websearch.Citation{{Title: "뉴스", URL: "https://news.example/1"}}},
		}}},
		Reports: &services.ReportService{DB: db},
		Catalog: cat,
		Index:   search.FromCatalog(cat),
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.UserIdentity("default"))
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, nil))

	r.GET("/bookmarks", h.ListBookmarks)
	r.POST("/bookmarks", h.AddBookmark)
	r.GET("/bookmarks/:itemId", h.GetBookmark)
	r.DELETE("/bookmarks/:itemId", h.RemoveBookmark)

	r.GET("/progress", h.GetProgress)
	r.GET("/progress/:page", h.GetPageProgress)
	r.PUT("/progress/:page", h.SetProgress)

	r.GET("/quizzes", h.ListQuizLevels)
	r.GET("/quizzes/:level", h.GetQuiz)
	r.POST("/quizzes/:level/submissions", h.SubmitQuiz)
	r.POST("/quiz-results", h.RecordQuizResult)
	r.GET("/quiz-results", h.ListQuizResults)
	r.GET("/quiz-results/stats", h.QuizStats)
	r.GET("/quiz-results/:id", h.GetQuizResult)

	r.GET("/catalog/search", h.SearchCatalog)
	r.GET("/catalog/pages", h.ListPages)
	r.GET("/catalog/equipment", h.ListEquipment)
	r.GET("/catalog/equipment/:model", h.GetEquipment)
	r.GET("/catalog/terms", h.ListTerms)
	r.GET("/catalog/terms/:term", h.GetTerm)
	r.GET("/catalog/technologies", h.ListTechnologies)
	r.GET("/catalog/technologies/:name", h.GetTechnology)
	r.GET("/catalog/encryption", h.ListEncryption)

	r.POST("/web-search", h.WebSearch)
	r.GET("/web-search/logs", h.ListSearchLogs)

	r.GET("/report.xlsx", h.ExportReport)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

// ---------- New / userID ----------

func TestNew_Defaults(t *testing.T) {
	h := New(Deps{})
	if h.defaultUser != "default" || h.defaultCountry != "KR" {
		t.Fatalf("defaults = %q/%q", h.defaultUser, h.defaultCountry)
	}
	h = New(Deps{DefaultUserID: " kiosk ", DefaultCountry: "US"})
	if h.defaultUser != "kiosk" || h.defaultCountry != "US" {
		t.Fatalf("overrides = %q/%q", h.defaultUser, h.defaultCountry)
	}
}

func TestUserID_FallbackOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(Deps{DefaultUserID: "fallback"})

	cases := []struct {
		name   string
		mw     bool
		header string
		want   string
	}{
		{"middleware", true, "u1", "u1"},
		{"header only", false, "u2", "u2"},
		{"none", false, "", "fallback"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			if tc.mw {
				r.Use(middleware.UserIdentity("mw-default"))
			}
			var got string
			r.GET("/", func(c *gin.Context) { got = h.userID(c) })
			hdr := map[string]string{}
			if tc.header != "" {
				hdr[middleware.UserIDHeader] = tc.header
			}
			do(t, r, http.MethodGet, "/", nil, hdr)
			if got != tc.want {
				t.Fatalf("userID=%q want %q", got, tc.want)
			}
		})
	}
}
