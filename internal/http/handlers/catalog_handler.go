// Catalog HTTP handlers.
//
// Read-only views over the embedded content plus the keyword search index.
// Nothing here touches storage.
package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/transport-edu-backend/internal/catalog"
	"github.com/tbourn/transport-edu-backend/internal/search"
	"github.com/tbourn/transport-edu-backend/internal/utils"
)

const (
	defaultSearchK = 20
	maxSearchK     = 100
	maxQueryRunes  = 200
)

// SearchResponse wraps catalog search hits, best first.
type SearchResponse struct {
	Query   string          `json:"query" example:"POTN"`
	Results []search.Result `json:"results"`
}

// PagesResponse lists the trackable dashboard pages in display order.
type PagesResponse struct {
	Pages []string `json:"pages"`
}

// SearchCatalog godoc
// @ID          searchCatalog
// @Summary     Search the catalog
// @Description Case-insensitive keyword search over equipment, glossary terms and technologies.
// @Tags        Catalog
// @Produce     json
// @Param       q  query  string  true   "Keyword"  example(OTN)
// @Param       k  query  int     false  "Max results"  minimum(1) maximum(100) default(20)
// @Success     200  {object} handlers.SearchResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing or oversized query"
// @Router      /catalog/search [get]
func (h *Handlers) SearchCatalog(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "q is required")
		return
	}
	if utf8.RuneCountInString(q) > maxQueryRunes {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "q is too long")
		return
	}
	k := utils.ClampLimit(c.Query("k"), defaultSearchK, maxSearchK)
	hits := h.idx.Search(q, k)
	if hits == nil {
		hits = []search.Result{}
	}
	ok(c, http.StatusOK, SearchResponse{Query: q, Results: hits})
}

// ListPages godoc
// @ID          listPages
// @Summary     Dashboard pages
// @Tags        Catalog
// @Produce     json
// @Success     200  {object} handlers.PagesResponse
// @Router      /catalog/pages [get]
func (h *Handlers) ListPages(c *gin.Context) {
	ok(c, http.StatusOK, PagesResponse{Pages: h.cat.Pages()})
}

// ListEquipment godoc
// @ID          listEquipment
// @Summary     Equipment models
// @Tags        Catalog
// @Produce     json
// @Success     200  {array} catalog.Equipment
// @Router      /catalog/equipment [get]
func (h *Handlers) ListEquipment(c *gin.Context) {
	ok(c, http.StatusOK, h.cat.AllEquipment())
}

// GetEquipment godoc
// @ID          getEquipment
// @Summary     One equipment model
// @Tags        Catalog
// @Produce     json
// @Param       model  path  string  true  "Model name (case-insensitive)"  example(OPN-3100)
// @Success     200  {object} catalog.Equipment
// @Failure     404  {object} handlers.ErrorResponse "Unknown model"
// @Router      /catalog/equipment/{model} [get]
func (h *Handlers) GetEquipment(c *gin.Context) {
	e, found := h.cat.Equipment(c.Param("model"))
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "equipment not found")
		return
	}
	ok(c, http.StatusOK, e)
}

// ListTerms godoc
// @ID          listTerms
// @Summary     Glossary
// @Tags        Catalog
// @Produce     json
// @Param       category  query  string  false  "Category filter (전체 for all)"
// @Success     200  {array} catalog.Term
// @Router      /catalog/terms [get]
func (h *Handlers) ListTerms(c *gin.Context) {
	terms := h.cat.Glossary(strings.TrimSpace(c.Query("category")))
	if terms == nil {
		terms = []catalog.Term{}
	}
	ok(c, http.StatusOK, terms)
}

// GetTerm godoc
// @ID          getTerm
// @Summary     One glossary term
// @Tags        Catalog
// @Produce     json
// @Param       term  path  string  true  "Term (case-insensitive)"  example(OTN)
// @Success     200  {object} catalog.Term
// @Failure     404  {object} handlers.ErrorResponse "Unknown term"
// @Router      /catalog/terms/{term} [get]
func (h *Handlers) GetTerm(c *gin.Context) {
	t, found := h.cat.Term(c.Param("term"))
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "term not found")
		return
	}
	ok(c, http.StatusOK, t)
}

// ListTechnologies godoc
// @ID          listTechnologies
// @Summary     Technology comparison
// @Tags        Catalog
// @Produce     json
// @Success     200  {array} catalog.Technology
// @Router      /catalog/technologies [get]
func (h *Handlers) ListTechnologies(c *gin.Context) {
	ok(c, http.StatusOK, h.cat.Technologies())
}

// GetTechnology godoc
// @ID          getTechnology
// @Summary     One technology family
// @Tags        Catalog
// @Produce     json
// @Param       name  path  string  true  "MSPP, PTN or POTN"  example(POTN)
// @Success     200  {object} catalog.Technology
// @Failure     404  {object} handlers.ErrorResponse "Unknown technology"
// @Router      /catalog/technologies/{name} [get]
func (h *Handlers) GetTechnology(c *gin.Context) {
	t, found := h.cat.Technology(c.Param("name"))
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "technology not found")
		return
	}
	ok(c, http.StatusOK, t)
}

// ListEncryption godoc
// @ID          listEncryption
// @Summary     Link encryption options
// @Tags        Catalog
// @Produce     json
// @Success     200  {array} catalog.Encryption
// @Router      /catalog/encryption [get]
func (h *Handlers) ListEncryption(c *gin.Context) {
	ok(c, http.StatusOK, h.cat.Encryption())
}
