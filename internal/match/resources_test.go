package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citesmart/backend/internal/match"
)

func TestLoadResourcesUnsupportedLanguage(t *testing.T) {
	_, err := match.LoadResources("klingon", false)
	assert.ErrorIs(t, err, match.ErrResourceUnavailable)
}

func TestTermSetRemovesStopwords(t *testing.T) {
	res, err := match.LoadResources("english", false)
	require.NoError(t, err)

	terms := res.TermSet("The cat is on the mat")
	assert.Equal(t, map[string]struct{}{"cat": {}, "mat": {}}, terms)
}

func TestTermSetStemming(t *testing.T) {
	res, err := match.LoadResources("english", true)
	require.NoError(t, err)

	terms := res.TermSet("running runs")
	assert.Equal(t, map[string]struct{}{"run": {}}, terms)
}

func TestSentences(t *testing.T) {
	res, err := match.LoadResources("english", false)
	require.NoError(t, err)

	sents := res.Sentences("The cat sat. The dog barked.")
	require.Len(t, sents, 2)
	assert.Equal(t, "The cat sat.", sents[0])
	assert.Equal(t, "The dog barked.", sents[1])
}

func TestSentencesHandlesAbbreviations(t *testing.T) {
	res, err := match.LoadResources("english", false)
	require.NoError(t, err)

	// A naive split on "." would produce four fragments here.
	sents := res.Sentences("Dr. Smith measured a 3.5 percent gain. Everyone clapped.")
	assert.Len(t, sents, 2)
}
