package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func TestWebSearch_DefaultsCountryAndLogs(t *testing.T) {
	r := newTestEngine(t, newHandlerDB(t))

	w := do(t, r, http.MethodPost, "/web-search", WebSearchRequest{Query: "  POTN 동향 "}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got := decode[WebSearchResponse](t, w)
	if got.Query != "POTN 동향" || got.Country != "KR" {
		t.Fatalf("query=%q country=%q", got.Query, got.Country)
	}
	if len(got.Results) != 1 {
		t.Fatalf("results=%d; want 1", len(got.Results))
	}
	if !strings.Contains(got.Results[0].HTML, "<strong>POTN</strong>") {
		t.Fatalf("html=%q", got.Results[0].HTML)
	}
	if u := got.Results[0].Citations[0].URL; u != "https://news.example/1" {
		t.Fatalf("citation=%q", u)
	}

	w = do(t, r, http.MethodPost, "/web-search", WebSearchRequest{Query: "PTN", Country: "jp"}, nil)
	if w.Code != http.StatusOK || decode[WebSearchResponse](t, w).Country != "JP" {
		t.Fatalf("jp status=%d body=%s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/web-search/logs?limit=1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d", w.Code)
	}
	logs := decode[SearchLogsResponse](t, w).Logs
	if len(logs) != 1 || logs[0].Query != "PTN" {
		t.Fatalf("logs=%+v", logs)
	}
}

func TestWebSearch_RejectsBlankQuery(t *testing.T) {
	r := newTestEngine(t, newHandlerDB(t))

	for _, body := range []any{WebSearchRequest{Query: "   "}, map[string]string{}} {
		if w := do(t, r, http.MethodPost, "/web-search", body, nil); w.Code != http.StatusBadRequest {
			t.Fatalf("body %+v: status=%d", body, w.Code)
		}
	}

	w := do(t, r, http.MethodGet, "/web-search/logs", nil, nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != `{"logs":[]}` {
		t.Fatalf("logs status=%d body=%s", w.Code, w.Body.String())
	}
}
