// Package search provides a deterministic, concurrency-safe in-memory index
// over the content catalog (equipment, glossary, technologies).
//
//   - No logging in the library (callers decide how/what to log)
//   - Functional options (Option pattern)
//   - Immutable, read-only index after construction (safe for concurrent use)
//   - Deterministic scoring and sorting (stable order for ties)
//
// A document matches when the case-folded query is a substring of its title
// or of one of its searchable fields. Matches are ranked by Jaccard similarity
// between the query token set and the document token set,
// score = |Q ∩ D| / |Q ∪ D|, with a bonus for title hits.
package search

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Field is one searchable text of a document.
type Field struct {
	Name string
	Text string
}

// Document is an indexable catalog entry.
type Document struct {
	Type     string // 장비, 용어 or 기술
	Title    string
	Category string
	Summary  string
	Fields   []Field
	// FieldSnippets reports a field hit as "name: text" instead of Summary.
	FieldSnippets bool
}

// Result is a ranked match.
type Result struct {
	Type     string  `json:"type"`
	Title    string  `json:"title"`
	Snippet  string  `json:"snippet"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// Index is the minimal interface implemented by all search indices.
type Index interface {
	Search(query string, k int) []Result
}

// ----------------------------------------------------------------------------
// Options

type Option func(*config)

type config struct {
	stopwords  map[string]struct{}
	titleBoost float64
	maxDocs    int
}

func defaultConfig() config {
	return config{titleBoost: 0.5}
}

// WithStopwords drops the given words from query and document token sets.
func WithStopwords(words []string) Option {
	return func(c *config) {
		m := make(map[string]struct{}, len(words))
		for _, w := range words {
			w = fold(strings.TrimSpace(w))
			if w != "" {
				m[w] = struct{}{}
			}
		}
		if len(m) > 0 {
			c.stopwords = m
		}
	}
}

// WithTitleBoost sets the score bonus for a title hit.
func WithTitleBoost(b float64) Option {
	return func(c *config) {
		if b >= 0 {
			c.titleBoost = b
		}
	}
}

// WithMaxDocs caps how many documents are indexed.
func WithMaxDocs(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDocs = n
		}
	}
}

// ----------------------------------------------------------------------------
// Implementation

type entry struct {
	doc    Document
	title  string   // folded
	fields []string // folded, aligned with doc.Fields
	tokens map[string]struct{}
}

type index struct {
	cfg     config
	entries []entry
}

// NewIndex builds an Index from docs. Documents with an empty title are skipped.
func NewIndex(docs []Document, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	entries := make([]entry, 0, len(docs))
	for _, d := range docs {
		if strings.TrimSpace(d.Title) == "" {
			continue
		}
		e := entry{doc: d, title: fold(d.Title), fields: make([]string, len(d.Fields))}
		all := []string{d.Title}
		for i, f := range d.Fields {
			e.fields[i] = fold(f.Text)
			all = append(all, f.Text)
		}
		e.tokens = tokenize(strings.Join(all, " "), cfg.stopwords)
		entries = append(entries, e)
		if cfg.maxDocs > 0 && len(entries) >= cfg.maxDocs {
			break
		}
	}
	return &index{cfg: cfg, entries: entries}
}

// Search returns up to k matches for query, best first. k <= 0 returns all.
func (i *index) Search(query string, k int) []Result {
	q := fold(strings.TrimSpace(query))
	if q == "" || len(i.entries) == 0 {
		return nil
	}
	qTokens := tokenize(q, i.cfg.stopwords)

	type scored struct {
		res   Result
		order int
	}
	buf := make([]scored, 0)
	for n, e := range i.entries {
		snippet, titleHit, ok := e.match(q)
		if !ok {
			continue
		}
		score := jaccard(qTokens, e.tokens)
		if titleHit {
			score += i.cfg.titleBoost
			if e.title == q {
				score += i.cfg.titleBoost
			}
		}
		buf = append(buf, scored{
			res: Result{
				Type:     e.doc.Type,
				Title:    e.doc.Title,
				Snippet:  snippet,
				Category: e.doc.Category,
				Score:    score,
			},
			order: n,
		})
	}
	if len(buf) == 0 {
		return nil
	}

	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].res.Score != buf[b].res.Score {
			return buf[a].res.Score > buf[b].res.Score
		}
		return buf[a].order < buf[b].order
	})

	if k <= 0 || k > len(buf) {
		k = len(buf)
	}
	out := make([]Result, k)
	for j := 0; j < k; j++ {
		out[j] = buf[j].res
	}
	return out
}

// match reports the snippet to show and whether the title itself matched.
func (e entry) match(q string) (snippet string, titleHit, ok bool) {
	if strings.Contains(e.title, q) {
		return e.doc.Summary, true, true
	}
	for i, f := range e.fields {
		if strings.Contains(f, q) {
			if e.doc.FieldSnippets {
				return e.doc.Fields[i].Name + ": " + e.doc.Fields[i].Text, false, true
			}
			return e.doc.Summary, false, true
		}
	}
	return "", false, false
}

// ----------------------------------------------------------------------------
// Helpers

// fold applies Unicode case folding. A Caser is stateful, so one is created
// per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

var wordRE = regexp.MustCompile(`[\p{L}\p{N}]+`)

func tokenize(s string, stop map[string]struct{}) map[string]struct{} {
	words := wordRE.FindAllString(fold(s), -1)
	if len(words) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if stop != nil {
			if _, skip := stop[w]; skip {
				continue
			}
		}
		out[w] = struct{}{}
	}
	return out
}

func jaccard(a, b map[string]struct{}) float64 {
	over := overlap(a, b)
	if over == 0 {
		return 0
	}
	union := len(a) + len(b) - over
	if union <= 0 {
		return 0
	}
	return float64(over) / float64(union)
}

func overlap(a, b map[string]struct{}) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	n := 0
	if len(a) > len(b) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}
