package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/transport-edu-backend/internal/domain"
	"github.com/tbourn/transport-edu-backend/internal/services"
	"github.com/tbourn/transport-edu-backend/internal/utils"
	"github.com/tbourn/transport-edu-backend/internal/websearch"
)

const (
	defaultLogLimit = 20
	maxLogLimit     = 100
)

// WebSearchRequest is a web search query.
type WebSearchRequest struct {
	Query string `json:"query" binding:"required" example:"POTN 최신 동향"`
	// Country is KR, US, JP or EU; defaults to the configured country.
	Country string `json:"country" example:"KR"`
}

// WebSearchResponse carries the search results. Upstream failures arrive as
// a single item with failed=true and an explanatory text.
type WebSearchResponse struct {
	Query   string                   `json:"query"`
	Country string                   `json:"country" example:"KR"`
	Results []services.WebSearchItem `json:"results"`
}

// SearchLogsResponse lists recorded searches, newest first.
type SearchLogsResponse struct {
	Logs []domain.SearchLog `json:"logs"`
}

// WebSearch godoc
// @ID          webSearch
// @Summary     Web search
// @Description Searches the web for transport-network news and summarizes the findings with citations. Rate limited per client IP.
// @Tags        WebSearch
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.WebSearchRequest  true  "Query"
// @Success     200  {object} handlers.WebSearchResponse
// @Failure     400  {object} handlers.ErrorResponse "Empty query"
// @Failure     429  {object} handlers.ErrorResponse "Rate limited"
// @Router      /web-search [post]
func (h *Handlers) WebSearch(c *gin.Context) {
	var req WebSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query is required")
		return
	}
	country := h.defaultCountry
	if strings.TrimSpace(req.Country) != "" {
		country = websearch.NormalizeCountry(req.Country)
	}

	items, err := h.webSvc.Search(c.Request.Context(), req.Query, country)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, WebSearchResponse{Query: strings.TrimSpace(req.Query), Country: country, Results: items})
}

// ListSearchLogs godoc
// @ID          listSearchLogs
// @Summary     Recent web searches
// @Tags        WebSearch
// @Produce     json
// @Param       limit  query  int  false  "Max entries"  minimum(1) maximum(100) default(20)
// @Success     200  {object} handlers.SearchLogsResponse
// @Failure     503  {object} handlers.ErrorResponse "Storage unavailable"
// @Router      /web-search/logs [get]
func (h *Handlers) ListSearchLogs(c *gin.Context) {
	limit := utils.ClampLimit(c.Query("limit"), defaultLogLimit, maxLogLimit)
	logs, err := h.webSvc.RecentSearches(c.Request.Context(), limit)
	if err != nil {
		failErr(c, err)
		return
	}
	if logs == nil {
		logs = []domain.SearchLog{}
	}
	ok(c, http.StatusOK, SearchLogsResponse{Logs: logs})
}
