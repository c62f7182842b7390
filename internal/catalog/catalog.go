// Package catalog holds the read-only educational content: technology
// comparison (MSPP/PTN/POTN), equipment models, the glossary, encryption
// options and the quiz bank. The content ships embedded as YAML, is parsed
// once at startup and never changes afterwards, so a *Catalog is safe for
// concurrent use without locking.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tbourn/transport-edu-backend/internal/domain"
)

//go:embed data/catalog.yaml
var embedded embed.FS

// Category labels attached to search results and bookmarks.
const (
	CategoryEquipment  = "장비 상세"
	CategoryGlossary   = "용어 사전"
	CategoryTechnology = "기술 비교"
)

// Attribute is one ordered key/value row of a technology comparison.
type Attribute struct {
	Key   string `yaml:"key"   json:"key"`
	Value string `yaml:"value" json:"value"`
}

// Technology is a transport technology family (MSPP, PTN, POTN).
type Technology struct {
	Name       string      `yaml:"name"       json:"name"`
	Purpose    string      `yaml:"purpose"    json:"purpose"`
	Attributes []Attribute `yaml:"attributes" json:"attributes"`
}

// Attr returns the value of key, or "".
func (t Technology) Attr(key string) string {
	for _, a := range t.Attributes {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// Equipment is one product model. Detail fields (Capacity onwards) are empty
// for models that only appear in the specs table.
type Equipment struct {
	Model       string   `yaml:"model"       json:"model"`
	Class       string   `yaml:"class"       json:"class"`
	Switching   string   `yaml:"switching"   json:"switching"`
	RackUnits   int      `yaml:"rack_units"  json:"rack_units"`
	Ports10G    int      `yaml:"ports_10g"   json:"ports_10g"`
	Ports1G     int      `yaml:"ports_1g"    json:"ports_1g"`
	PowerWatts  int      `yaml:"power_watts" json:"power_watts"`
	Summary     string   `yaml:"summary"     json:"summary"`
	Capacity    string   `yaml:"capacity"    json:"capacity,omitempty"`
	Size        string   `yaml:"size"        json:"size,omitempty"`
	Interfaces  []string `yaml:"interfaces"  json:"interfaces,omitempty"`
	Application string   `yaml:"application" json:"application,omitempty"`
	Features    []string `yaml:"features"    json:"features,omitempty"`
}

// Detailed reports whether the model carries the full detail sheet.
func (e Equipment) Detailed() bool { return e.Capacity != "" }

// Term is a glossary entry.
type Term struct {
	Term        string `yaml:"term"        json:"term"`
	Definition  string `yaml:"definition"  json:"definition"`
	Description string `yaml:"description" json:"description"`
	Easy        string `yaml:"easy"        json:"easy"`
	Category    string `yaml:"category"    json:"category"`
}

// Encryption describes one link-encryption option.
type Encryption struct {
	Name       string   `yaml:"name"       json:"name"`
	Layer      string   `yaml:"layer"      json:"layer"`
	Unit       string   `yaml:"unit"       json:"unit"`
	Efficiency string   `yaml:"efficiency" json:"efficiency"`
	Algorithm  string   `yaml:"algorithm"  json:"algorithm"`
	Key        string   `yaml:"key"        json:"key"`
	Pros       []string `yaml:"pros"       json:"pros"`
	Cons       []string `yaml:"cons"       json:"cons"`
	Equipment  string   `yaml:"equipment"  json:"equipment"`
}

// Question is one multiple-choice quiz item.
type Question struct {
	Question    string   `yaml:"question"    json:"question"`
	Options     []string `yaml:"options"     json:"options"`
	Answer      string   `yaml:"answer"      json:"-"`
	Explanation string   `yaml:"explanation" json:"-"`
}

// Quiz is the question set of one difficulty level.
type Quiz struct {
	Level     string     `yaml:"level"     json:"level"`
	Questions []Question `yaml:"questions" json:"questions"`
}

type document struct {
	Pages        []string     `yaml:"pages"`
	Technologies []Technology `yaml:"technologies"`
	Equipment    []Equipment  `yaml:"equipment"`
	Glossary     []Term       `yaml:"glossary"`
	Encryption   []Encryption `yaml:"encryption"`
	Quizzes      []Quiz       `yaml:"quizzes"`
}

// Catalog is the parsed, indexed content.
type Catalog struct {
	doc     document
	byModel map[string]int
	byTerm  map[string]int
	byTech  map[string]int
	byLevel map[string]int
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	raw, err := embedded.ReadFile("data/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return Parse(bytes.NewReader(raw))
}

// MustLoad is like Load but panics on error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a catalog document from r and validates it.
func Parse(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		doc:     doc,
		byModel: make(map[string]int, len(doc.Equipment)),
		byTerm:  make(map[string]int, len(doc.Glossary)),
		byTech:  make(map[string]int, len(doc.Technologies)),
		byLevel: make(map[string]int, len(doc.Quizzes)),
	}
	for i, e := range doc.Equipment {
		c.byModel[strings.ToUpper(e.Model)] = i
	}
	for i, t := range doc.Glossary {
		c.byTerm[strings.ToUpper(t.Term)] = i
	}
	for i, t := range doc.Technologies {
		c.byTech[strings.ToUpper(t.Name)] = i
	}
	for i, q := range doc.Quizzes {
		c.byLevel[q.Level] = i
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	for _, q := range c.doc.Quizzes {
		for i, item := range q.Questions {
			found := false
			for _, o := range item.Options {
				if o == item.Answer {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, fmt.Errorf("quiz %s #%d: answer %q is not an option", q.Level, i+1, item.Answer))
			}
		}
	}
	if len(c.byModel) != len(c.doc.Equipment) {
		errs = append(errs, errors.New("duplicate equipment model"))
	}
	if len(c.byTerm) != len(c.doc.Glossary) {
		errs = append(errs, errors.New("duplicate glossary term"))
	}
	return errors.Join(errs...)
}

// Pages returns the learning pages in display order.
func (c *Catalog) Pages() []string { return append([]string(nil), c.doc.Pages...) }

// Technologies returns all technology families.
func (c *Catalog) Technologies() []Technology { return c.doc.Technologies }

// Technology looks up a technology family by name (case-insensitive).
func (c *Catalog) Technology(name string) (Technology, bool) {
	i, ok := c.byTech[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Technology{}, false
	}
	return c.doc.Technologies[i], true
}

// AllEquipment returns every model in catalog order.
func (c *Catalog) AllEquipment() []Equipment { return c.doc.Equipment }

// Equipment looks up a model (case-insensitive).
func (c *Catalog) Equipment(model string) (Equipment, bool) {
	i, ok := c.byModel[strings.ToUpper(strings.TrimSpace(model))]
	if !ok {
		return Equipment{}, false
	}
	return c.doc.Equipment[i], true
}

// Glossary returns all terms, optionally filtered by category ("" or "전체" for all).
func (c *Catalog) Glossary(category string) []Term {
	if category == "" || category == "전체" {
		return c.doc.Glossary
	}
	out := make([]Term, 0)
	for _, t := range c.doc.Glossary {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Term looks up a glossary entry (case-insensitive).
func (c *Catalog) Term(term string) (Term, bool) {
	i, ok := c.byTerm[strings.ToUpper(strings.TrimSpace(term))]
	if !ok {
		return Term{}, false
	}
	return c.doc.Glossary[i], true
}

// Encryption returns the encryption comparison rows.
func (c *Catalog) Encryption() []Encryption { return c.doc.Encryption }

// Levels returns quiz levels in catalog order.
func (c *Catalog) Levels() []string {
	out := make([]string, 0, len(c.doc.Quizzes))
	for _, q := range c.doc.Quizzes {
		out = append(out, q.Level)
	}
	return out
}

// Quiz returns the questions of level.
func (c *Catalog) Quiz(level string) ([]Question, bool) {
	i, ok := c.byLevel[strings.TrimSpace(level)]
	if !ok {
		return nil, false
	}
	return c.doc.Quizzes[i].Questions, true
}

// Resolve returns display title and category for a bookmarkable item.
func (c *Catalog) Resolve(itemType domain.ItemType, itemID string) (title, category string, ok bool) {
	switch itemType {
	case domain.ItemEquipment:
		if e, found := c.Equipment(itemID); found {
			return e.Model, CategoryEquipment, true
		}
	case domain.ItemTerm:
		if t, found := c.Term(itemID); found {
			return t.Term + " - " + t.Definition, CategoryGlossary, true
		}
	case domain.ItemTechnology:
		if t, found := c.Technology(itemID); found {
			return t.Name, CategoryTechnology, true
		}
	}
	return "", "", false
}
