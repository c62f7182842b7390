package search

import (
	"github.com/tbourn/transport-edu-backend/internal/catalog"
	"github.com/tbourn/transport-edu-backend/internal/domain"
)

// FromCatalog indexes every equipment model, glossary term and technology of c.
//
// Equipment matches on model name or features; terms on the term, the
// technical description or the plain-language explanation; technologies on
// their name or any comparison attribute value.
func FromCatalog(c *catalog.Catalog, opts ...Option) Index {
	docs := make([]Document, 0, len(c.AllEquipment())+len(c.Glossary(""))+len(c.Technologies()))

	for _, e := range c.AllEquipment() {
		if !e.Detailed() {
			continue
		}
		fields := make([]Field, 0, len(e.Features))
		for _, f := range e.Features {
			fields = append(fields, Field{Name: "특징", Text: f})
		}
		docs = append(docs, Document{
			Type:     string(domain.ItemEquipment),
			Title:    e.Model,
			Category: catalog.CategoryEquipment,
			Summary:  e.Capacity + " | " + e.Application,
			Fields:   fields,
		})
	}

	for _, t := range c.Glossary("") {
		docs = append(docs, Document{
			Type:     string(domain.ItemTerm),
			Title:    t.Term,
			Category: catalog.CategoryGlossary,
			Summary:  t.Easy,
			Fields: []Field{
				{Name: "설명", Text: t.Description},
				{Name: "쉬운설명", Text: t.Easy},
			},
		})
	}

	for _, t := range c.Technologies() {
		fields := make([]Field, 0, len(t.Attributes))
		for _, a := range t.Attributes {
			fields = append(fields, Field{Name: a.Key, Text: a.Value})
		}
		docs = append(docs, Document{
			Type:          string(domain.ItemTechnology),
			Title:         t.Name,
			Category:      catalog.CategoryTechnology,
			Summary:       t.Purpose,
			Fields:        fields,
			FieldSnippets: true,
		})
	}

	return NewIndex(docs, opts...)
}
