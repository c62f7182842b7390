// Package services – WebSearchService
//
// WebSearchService wraps the web-search client: it renders each summary to
// sanitized HTML for display and appends successful searches to the search
// log. Search failures are reported in-band by the client and are never
// logged as searches.
package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/tbourn/transport-edu-backend/internal/domain"
	"github.com/tbourn/transport-edu-backend/internal/observability"
	"github.com/tbourn/transport-edu-backend/internal/repo"
	"github.com/tbourn/transport-edu-backend/internal/utils"
	"github.com/tbourn/transport-edu-backend/internal/websearch"
)

// Searcher runs one web search and always returns at least one result.
type Searcher interface {
	Search(ctx context.Context, query, country string) []websearch.Result
}

// WebSearchService performs web searches and keeps the search log.
type WebSearchService struct {
	DB     *gorm.DB
	Client Searcher
	// QueryMaxLen caps the query length in runes; defaults to 500.
	QueryMaxLen int
}

// WebSearchItem is a search result with its summary rendered to HTML.
type WebSearchItem struct {
	websearch.Result
	HTML string `json:"html"`
}

// Search runs query in the given country context. A blank query is invalid
// input; every other outcome, including upstream failures, yields items.
func (s *WebSearchService) Search(ctx context.Context, query, country string) (items []WebSearchItem, err error) {
	ctx, op := startOp(ctx, "services/WebSearchService", "websearch.search",
		attribute.String("country", country),
	)
	defer op.done(&err)

	query = normalizeText(query)
	if query == "" {
		return nil, invalid(op.name, ErrEmptyQuery)
	}
	max := s.QueryMaxLen
	if max <= 0 {
		max = 500
	}
	query = clipRunes(query, max)

	results := s.Client.Search(ctx, query, websearch.NormalizeCountry(country))
	items = make([]WebSearchItem, 0, len(results))
	texts := make([]string, 0, len(results))
	failed := false
	for _, r := range results {
		items = append(items, WebSearchItem{Result: r, HTML: utils.RenderMarkdown(r.Text)})
		if r.Failed {
			failed = true
			continue
		}
		texts = append(texts, r.Text)
	}

	if failed || len(texts) == 0 {
		observability.ObserveWebSearch("failed")
		op.noop = true
		return items, nil
	}
	observability.ObserveWebSearch("ok")

	if _, lerr := repo.CreateSearchLog(ctx, s.DB, query, strings.Join(texts, "\n\n")); lerr != nil {
		zerolog.Ctx(ctx).Warn().Err(lerr).Str("op", op.name).Msg("search log write failed")
	}
	return items, nil
}

// RecentSearches returns the newest search log entries. limit <= 0 means 20.
func (s *WebSearchService) RecentSearches(ctx context.Context, limit int) (out []domain.SearchLog, err error) {
	ctx, op := startOp(ctx, "services/WebSearchService", "websearch.recent",
		attribute.Int("limit", limit),
	)
	defer op.done(&err)

	out, err = repo.ListSearchLogs(ctx, s.DB, limit)
	if err != nil {
		return nil, storeErr(op.name, err)
	}
	return out, nil
}
