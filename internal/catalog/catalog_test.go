package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/transport-edu-backend/internal/domain"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, domain.Pages, c.Pages(), "catalog pages must match tracked pages")
	assert.Len(t, c.Technologies(), 3)
	assert.Len(t, c.AllEquipment(), 11)
	assert.Len(t, c.Glossary(""), 16)
	assert.Equal(t, []string{"기본", "중급"}, c.Levels())
	assert.Len(t, c.Encryption(), 3)
}

func TestLookups_CaseInsensitive(t *testing.T) {
	c := MustLoad()

	e, ok := c.Equipment("apn-s40")
	require.True(t, ok)
	assert.Equal(t, "APN-S40", e.Model)
	assert.Equal(t, "44Gbps", e.Capacity)
	assert.True(t, e.Detailed())

	table, ok := c.Equipment("APN-20A")
	require.True(t, ok)
	assert.False(t, table.Detailed(), "APN-20A only exists in the specs table")

	term, ok := c.Term("mpls-tp")
	require.True(t, ok)
	assert.Equal(t, "프로토콜", term.Category)

	tech, ok := c.Technology("potn")
	require.True(t, ok)
	assert.Equal(t, "2.4Tbps 이하", tech.Attr("스위칭용량"))
	assert.Empty(t, tech.Attr("없는키"))

	_, ok = c.Equipment("XYZ-1")
	assert.False(t, ok)
}

func TestGlossary_CategoryFilter(t *testing.T) {
	c := MustLoad()
	sec := c.Glossary("보안/암호화")
	require.Len(t, sec, 3)
	for _, term := range sec {
		assert.Equal(t, "보안/암호화", term.Category)
	}
	assert.Len(t, c.Glossary("전체"), 16)
	assert.Empty(t, c.Glossary("없음"))
}

func TestQuiz_AnswersAreOptions(t *testing.T) {
	c := MustLoad()
	for _, level := range c.Levels() {
		qs, ok := c.Quiz(level)
		require.True(t, ok)
		require.Len(t, qs, 3)
		for _, q := range qs {
			assert.Contains(t, q.Options, q.Answer)
		}
	}
	_, ok := c.Quiz("고급")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	c := MustLoad()

	title, cat, ok := c.Resolve(domain.ItemEquipment, "opn-3000")
	require.True(t, ok)
	assert.Equal(t, "OPN-3000", title)
	assert.Equal(t, CategoryEquipment, cat)

	title, cat, ok = c.Resolve(domain.ItemTerm, "OTN")
	require.True(t, ok)
	assert.Equal(t, "OTN - Optical Transport Network", title)
	assert.Equal(t, CategoryGlossary, cat)

	_, cat, ok = c.Resolve(domain.ItemTechnology, "MSPP")
	require.True(t, ok)
	assert.Equal(t, CategoryTechnology, cat)

	_, _, ok = c.Resolve(domain.ItemTechnology, "OPN-3000")
	assert.False(t, ok)
}

func TestParse_RejectsBadAnswerAndUnknownFields(t *testing.T) {
	bad := `
quizzes:
  - level: 기본
    questions:
      - question: q
        options: [a, b]
        answer: c
        explanation: e
`
	_, err := Parse(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an option")

	_, err = Parse(strings.NewReader("unknown_field: 1\n"))
	require.Error(t, err)
}
