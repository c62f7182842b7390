// Package handlers exposes the REST endpoints of the learning dashboard:
// bookmarks, learning progress, quizzes, the content catalog, web search and
// the learning report.
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/transport-edu-backend/internal/catalog"
	"github.com/tbourn/transport-edu-backend/internal/domain"
	"github.com/tbourn/transport-edu-backend/internal/http/middleware"
	"github.com/tbourn/transport-edu-backend/internal/search"
	"github.com/tbourn/transport-edu-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// BookmarkService manages a user's saved catalog items.
type BookmarkService interface {
	Add(ctx context.Context, userID string, itemType domain.ItemType, itemID, title, category string) (bool, error)
	Remove(ctx context.Context, userID, itemID string) (bool, error)
	List(ctx context.Context, userID string) ([]domain.Bookmark, error)
	Exists(ctx context.Context, userID, itemID string) (bool, error)
}

// ProgressService tracks per-page completion.
type ProgressService interface {
	SetCompletion(ctx context.Context, userID, pageName string, completed bool) error
	Page(ctx context.Context, userID, pageName string) (services.PageStatus, error)
	Summary(ctx context.Context, userID string) (services.ProgressSummary, error)
}

// QuizService grades and records quiz attempts.
type QuizService interface {
	Record(ctx context.Context, userID, level string, score, total int, detail []domain.AnswerDetail) (*domain.QuizResult, error)
	Submit(ctx context.Context, userID, level string, answers map[int]string, idemKey string) (*domain.QuizResult, bool, error)
	History(ctx context.Context, userID string, limit int) ([]domain.QuizResult, error)
	Get(ctx context.Context, userID string, id uint) (*domain.QuizResult, error)
	Stats(ctx context.Context, userID string) (services.QuizStats, error)
}

// WebSearchService runs web searches and lists the search log.
type WebSearchService interface {
	Search(ctx context.Context, query, country string) ([]services.WebSearchItem, error)
	RecentSearches(ctx context.Context, limit int) ([]domain.SearchLog, error)
}

// ReportService renders the learning report workbook.
type ReportService interface {
	Export(ctx context.Context, userID string) ([]byte, error)
}

// Catalog is the read-only content consumed by the catalog endpoints.
type Catalog interface {
	Pages() []string
	Technologies() []catalog.Technology
	Technology(name string) (catalog.Technology, bool)
	AllEquipment() []catalog.Equipment
	Equipment(model string) (catalog.Equipment, bool)
	Glossary(category string) []catalog.Term
	Term(term string) (catalog.Term, bool)
	Encryption() []catalog.Encryption
	Levels() []string
	Quiz(level string) ([]catalog.Question, bool)
}

//
// Handler wiring
//

// Deps carries the collaborators of Handlers. Nil services leave their
// endpoints unregistered by the router.
type Deps struct {
	Bookmarks BookmarkService
	Progress  ProgressService
	Quizzes   QuizService
	WebSearch WebSearchService
	Reports   ReportService
	Catalog   Catalog
	Index     search.Index
	// DefaultUserID is used when no identity middleware ran.
	DefaultUserID string
	// DefaultCountry is applied to web searches without a country.
	DefaultCountry string
}

// Handlers groups the HTTP endpoints. It depends on abstract service
// interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	bmSvc     BookmarkService
	progSvc   ProgressService
	quizSvc   QuizService
	webSvc    WebSearchService
	reportSvc ReportService
	cat       Catalog
	idx       search.Index

	defaultUser    string
	defaultCountry string
}

// New constructs a Handlers instance bound to the given services.
func New(d Deps) *Handlers {
	def := strings.TrimSpace(d.DefaultUserID)
	if def == "" {
		def = "default"
	}
	country := d.DefaultCountry
	if country == "" {
		country = "KR"
	}
	return &Handlers{
		bmSvc:          d.Bookmarks,
		progSvc:        d.Progress,
		quizSvc:        d.Quizzes,
		webSvc:         d.WebSearch,
		reportSvc:      d.Reports,
		cat:            d.Catalog,
		idx:            d.Index,
		defaultUser:    def,
		defaultCountry: country,
	}
}

// userID returns the identity resolved by middleware.UserIdentity. Without
// that middleware it reads X-User-ID directly and finally falls back to the
// configured default user.
func (h *Handlers) userID(c *gin.Context) string {
	if uid := middleware.UserIDFrom(c); uid != "" {
		return uid
	}
	if c.Request != nil {
		if v := strings.TrimSpace(c.GetHeader(middleware.UserIDHeader)); v != "" {
			return v
		}
	}
	return h.defaultUser
}
