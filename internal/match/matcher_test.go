package match_test

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citesmart/backend/internal/extract"
	"github.com/citesmart/backend/internal/match"
)

func newMatcher(t *testing.T) *match.Matcher {
	t.Helper()
	res, err := match.LoadResources("english", false)
	require.NoError(t, err)
	return match.NewMatcher(res, match.RegexLocator{}, match.Config{
		Threshold:    0.3,
		WindowRadius: 1,
	}, logrus.New().WithField("test", "matcher"))
}

func onePage(text string) extract.DocumentText {
	return extract.DocumentText{Pages: []extract.PageText{{Number: 1, Raw: text}}}
}

func TestFindSingleMatch(t *testing.T) {
	m := newMatcher(t)
	doc := onePage("The cat sat on the mat. Dogs are loyal animals.")

	results, skips, err := m.Find(doc, "cat mat", "Unknown Author (2026)")
	require.NoError(t, err)
	assert.Empty(t, skips)
	require.Len(t, results, 1)

	r := results[0]
	assert.Contains(t, r.Quote, "The cat sat on the mat.")
	assert.Equal(t, 1, r.Page)
	assert.Equal(t, 1.0, r.Score)
	assert.Equal(t, 2, r.Relevance)
	assert.Equal(t, []string{"cat", "mat"}, r.Terms)
	assert.Equal(t, "Unknown Author (2026)", r.Citation)
}

func TestFindEmptyQuery(t *testing.T) {
	m := newMatcher(t)

	_, _, err := m.Find(onePage("Some text."), "   ", "")
	assert.ErrorIs(t, err, match.ErrEmptyQuery)
}

func TestFindStopwordOnlyQuery(t *testing.T) {
	m := newMatcher(t)

	_, _, err := m.Find(onePage("Some text."), "the is and", "")
	assert.ErrorIs(t, err, match.ErrNoMeaningfulTerms)
}

func TestFindBelowThreshold(t *testing.T) {
	m := newMatcher(t)
	doc := onePage("The photon passed through a filter. Nothing else happened afterwards.")

	// 1 of 4 distinct query terms present: score 0.25, under the 0.3 threshold.
	results, _, err := m.Find(doc, "quantum entanglement photon detector", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindRanksByDescendingScore(t *testing.T) {
	m := newMatcher(t)
	doc := onePage("Alpha and beta live here together. Alpha stands alone nearby. Nothing relevant whatsoever today.")

	results, _, err := m.Find(doc, "alpha beta", "")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 1.0, results[0].Score)
	assert.Equal(t, 0.5, results[1].Score)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestFindDeterministic(t *testing.T) {
	m := newMatcher(t)
	doc := extract.DocumentText{Pages: []extract.PageText{
		{Number: 1, Raw: "Glaciers retreat as temperatures rise. Ice cores record past climate. Glaciers shape valleys."},
		{Number: 3, Raw: "Rising temperatures accelerate glacier melt. Unrelated closing remark."},
	}}

	first, _, err := m.Find(doc, "glaciers temperatures", "cite")
	require.NoError(t, err)
	second, _, err := m.Find(doc, "glaciers temperatures", "cite")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFindQuoteIsVerbatimSubstring(t *testing.T) {
	m := newMatcher(t)
	doc := extract.DocumentText{Pages: []extract.PageText{
		{Number: 1, Raw: "Opening page with\nnothing of interest here."},
		{Number: 2, Raw: "The zygomatic bone forms\nthe cheek. It articulates with the maxilla."},
	}}

	results, _, err := m.Find(doc, "zygomatic cheek", "")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, r := range results {
		raw, ok := doc.Page(r.Page)
		require.True(t, ok)
		assert.True(t, strings.Contains(raw, r.Quote), "quote must appear verbatim on its page")
	}
	assert.Equal(t, 2, results[0].Page)
}

func TestFindWindowIncludesNeighbors(t *testing.T) {
	m := newMatcher(t)
	doc := onePage("First sentence sets context. The keyword target appears here. Final sentence closes out.")

	results, _, err := m.Find(doc, "keyword target", "")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Contains(t, results[0].Quote, "First sentence sets context.")
	assert.Contains(t, results[0].Quote, "Final sentence closes out.")
}

type failingLocator struct{}

func (failingLocator) Locate(window, raw string) (string, bool) { return "", false }

func TestFindRelocationFailureSkipsCandidate(t *testing.T) {
	res, err := match.LoadResources("english", false)
	require.NoError(t, err)
	m := match.NewMatcher(res, failingLocator{}, match.Config{Threshold: 0.3, WindowRadius: 1},
		logrus.New().WithField("test", "matcher"))

	results, skips, err := m.Find(onePage("The cat sat on the mat."), "cat mat", "")
	require.NoError(t, err)
	assert.Empty(t, results)
	require.Len(t, skips, 1)
	assert.Equal(t, 1, skips[0].Page)
}

func TestFindCapsPageText(t *testing.T) {
	res, err := match.LoadResources("english", false)
	require.NoError(t, err)
	m := match.NewMatcher(res, match.RegexLocator{}, match.Config{
		Threshold:    0.3,
		WindowRadius: 1,
		MaxPageChars: 30,
	}, logrus.New().WithField("test", "matcher"))

	// The matching sentence lies beyond the cap and must not be found.
	doc := onePage("Padding padding padding padding. The zygomatic bone forms the cheek.")
	results, _, err := m.Find(doc, "zygomatic cheek", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}
