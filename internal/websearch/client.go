// Package websearch queries the OpenAI Responses API with the
// web_search_preview tool and turns the reply into summaries with citations.
//
// The client never fails from the caller's point of view: a missing key, a
// transport error or an unparseable reply all come back as a single Result
// whose Text explains what went wrong.
package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Defaults for Config fields left empty.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4.1"
	DefaultCountry = "KR"
	DefaultTimeout = 60 * time.Second
)

// Countries lists the accepted country contexts.
var Countries = []string{"KR", "US", "JP", "EU"}

// Messages returned in place of results.
const (
	MsgMissingKey  = "⚠️ OPENAI_API_KEY가 설정되지 않았습니다."
	MsgParseFailed = "검색 결과를 파싱하지 못했습니다. 쿼리를 바꿔 다시 시도해보세요."
	msgCallFailed  = "⚠️ OpenAI 호출 오류: "
)

// Citation is a source referenced by a summary.
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Result is one summary block.
type Result struct {
	Text      string     `json:"text"`
	Citations []Citation `json:"citations"`
	// Failed marks a result that carries an error message instead of content.
	Failed bool `json:"failed,omitempty"`
}

// Config configures a Client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// RPS limits outgoing calls; 0 disables limiting.
	RPS float64
}

// Client is safe for concurrent use.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	now     func() time.Time
}

// New returns a Client with defaults applied.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		now:  time.Now,
	}
	if cfg.RPS > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}
	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return strings.TrimSpace(c.cfg.APIKey) != "" }

// NormalizeCountry upper-cases country and falls back to DefaultCountry for
// unknown values.
func NormalizeCountry(country string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	for _, c := range Countries {
		if c == country {
			return c
		}
	}
	return DefaultCountry
}

var seoul = time.FixedZone("KST", 9*60*60)

// Prompt builds the model input for query in country on day.
func Prompt(query, country string, day time.Time) string {
	return fmt.Sprintf(
		"Today is %s. Country context: %s. Find positive, verifiable news related to: %s. "+
			"Summarize concisely (3-5 bullets). Provide inline citations.",
		day.In(seoul).Format("2006-01-02"), country, query,
	)
}

type toolSpec struct {
	Type string `json:"type"`
}

type request struct {
	Model       string     `json:"model"`
	Tools       []toolSpec `json:"tools"`
	Input       string     `json:"input"`
	Temperature float64    `json:"temperature"`
	TopP        float64    `json:"top_p"`
}

type annotation struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type content struct {
	Type        string       `json:"type"`
	Text        string       `json:"text"`
	Annotations []annotation `json:"annotations"`
}

type outputItem struct {
	Type    string    `json:"type"`
	Content []content `json:"content"`
}

type response struct {
	Output []outputItem `json:"output"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Search runs a web search. It always returns at least one Result.
func (c *Client) Search(ctx context.Context, query, country string) []Result {
	if !c.Configured() {
		return []Result{failed(MsgMissingKey)}
	}
	out, err := c.search(ctx, query, NormalizeCountry(country))
	if err != nil {
		return []Result{failed(msgCallFailed + err.Error())}
	}
	if len(out) == 0 {
		return []Result{failed(MsgParseFailed)}
	}
	return out
}

func (c *Client) search(ctx context.Context, query, country string) ([]Result, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(request{
		Model:       c.cfg.Model,
		Tools:       []toolSpec{{Type: "web_search_preview"}},
		Input:       Prompt(query, country, c.now()),
		Temperature: 0.3,
		TopP:        1.0,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var decoded response
	decErr := json.Unmarshal(raw, &decoded)
	if resp.StatusCode/100 != 2 {
		if decErr == nil && decoded.Error != nil && decoded.Error.Message != "" {
			return nil, errors.New(decoded.Error.Message)
		}
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	if decErr != nil {
		// Undecodable body counts as "nothing parsed".
		return nil, nil
	}
	return parse(decoded), nil
}

func parse(r response) []Result {
	var out []Result
	for _, item := range r.Output {
		if item.Type != "message" {
			continue
		}
		for _, c := range item.Content {
			if c.Type != "output_text" {
				continue
			}
			cites := make([]Citation, 0, len(c.Annotations))
			for _, a := range c.Annotations {
				if a.Type != "url_citation" {
					continue
				}
				title := a.Title
				if title == "" {
					title = "Source"
				}
				cites = append(cites, Citation{Title: title, URL: a.URL})
			}
			out = append(out, Result{Text: c.Text, Citations: cites})
		}
	}
	return out
}

func failed(msg string) Result {
	return Result{Text: msg, Citations: []Citation{}, Failed: true}
}
