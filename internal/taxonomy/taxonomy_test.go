package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_Order(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 13)
	assert.Equal(t, ProgrammingLanguages, cats[0])
	assert.Equal(t, Security, cats[len(cats)-1])
}

func TestTerms(t *testing.T) {
	langs := Terms(ProgrammingLanguages)
	assert.Contains(t, langs, "python")
	assert.Contains(t, langs, "typescript")

	assert.Nil(t, Terms(Category("no_such_category")))
}

func TestTerms_ReturnsCopy(t *testing.T) {
	first := Terms(Databases)
	require.NotEmpty(t, first)
	first[0] = "mutated"

	second := Terms(Databases)
	assert.NotEqual(t, "mutated", second[0])
}

func TestTerms_CanonicalLowercase(t *testing.T) {
	Walk(func(category Category, term string) {
		assert.Equal(t, strings.ToLower(term), term, "term %q in %s is not lowercase", term, category)
		assert.Equal(t, strings.TrimSpace(term), term, "term %q in %s has surrounding whitespace", term, category)
		assert.NotEmpty(t, term)
	})
}

func TestWalk_VisitsEveryTermOnce(t *testing.T) {
	visits := 0
	seenCategories := map[Category]bool{}
	Walk(func(category Category, term string) {
		visits++
		seenCategories[category] = true
	})

	assert.Equal(t, TermCount(), visits)
	assert.Len(t, seenCategories, len(Categories()))
}

func TestTermCount(t *testing.T) {
	total := 0
	for _, category := range Categories() {
		total += len(Terms(category))
	}
	assert.Equal(t, total, TermCount())
	assert.Greater(t, TermCount(), 100)
}
