package match

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/citesmart/backend/internal/extract"
)

// Result is one ranked quote match. Quote is a verbatim substring of the
// raw text of the page it was found on.
type Result struct {
	Quote     string   `json:"quote"`
	Page      int      `json:"page"`
	Score     float64  `json:"similarity"`
	Relevance int      `json:"relevance"`
	Terms     []string `json:"highlighted_terms"`
	Citation  string   `json:"citation"`
}

// Skip records a candidate that was dropped without failing the request.
type Skip struct {
	Page     int
	Sentence int
	Reason   string
}

// Config holds the tunable matching parameters.
type Config struct {
	Threshold     float64 // minimum query recall to accept a sentence
	WindowRadius  int     // neighbor sentences included on each side
	MaxPageChars  int     // page text cap applied before tokenization
	MaxQueryChars int     // query text cap applied before tokenization
}

// Matcher scans page-indexed document text for sentences matching a query
// and expands accepted sentences into verbatim quote windows. It holds
// only read-only state and is safe for concurrent requests.
type Matcher struct {
	Resources *Resources
	Locator   SpanLocator
	Config    Config
	Logger    *logrus.Entry
}

func NewMatcher(res *Resources, locator SpanLocator, cfg Config, logger *logrus.Entry) *Matcher {
	if cfg.WindowRadius < 0 {
		cfg.WindowRadius = 0
	}
	return &Matcher{
		Resources: res,
		Locator:   locator,
		Config:    cfg,
		Logger:    logger,
	}
}

// Find runs the full matching pass: normalize the query, score every
// sentence of every page against it, expand accepted sentences into quote
// windows, relocate each window in the raw page text, and rank the
// results by descending score. A window that cannot be relocated is
// dropped as a Skip; it never fails the request.
func (m *Matcher) Find(doc extract.DocumentText, query, citation string) ([]Result, []Skip, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil, ErrEmptyQuery
	}
	query = truncate(query, m.Config.MaxQueryChars)

	queryTerms := m.Resources.TermSet(query)
	if len(queryTerms) == 0 {
		return nil, nil, ErrNoMeaningfulTerms
	}

	var results []Result
	var skips []Skip

	for _, page := range doc.Pages {
		raw := truncate(page.Raw, m.Config.MaxPageChars)
		if len(raw) < len(page.Raw) {
			m.Logger.Warnf("Page %d truncated to %d chars before tokenization", page.Number, m.Config.MaxPageChars)
		}

		// Sentence boundaries are found on whitespace-collapsed text;
		// relocation maps windows back into the raw text.
		clean := strings.Join(strings.Fields(raw), " ")
		sents := m.Resources.Sentences(clean)

		for i, sentence := range sents {
			sentenceTerms := m.Resources.TermSet(sentence)
			if len(sentenceTerms) == 0 {
				continue
			}

			overlap := Overlap(queryTerms, sentenceTerms)
			score := float64(len(overlap)) / float64(len(queryTerms))
			if score < m.Config.Threshold {
				continue
			}

			window := m.window(sents, i)
			quote, ok := m.Locator.Locate(window, raw)
			if !ok {
				skips = append(skips, Skip{Page: page.Number, Sentence: i, Reason: "window not found in raw page text"})
				continue
			}

			results = append(results, Result{
				Quote:     quote,
				Page:      m.pageFor(doc, page.Number, quote),
				Score:     score,
				Relevance: len(overlap),
				Terms:     overlap,
				Citation:  citation,
			})
		}
	}

	Rank(results)
	return results, skips, nil
}

// window joins the sentence at index with up to WindowRadius neighbors on
// each side, clamped to the page's sentence bounds.
func (m *Matcher) window(sents []string, index int) string {
	start := index - m.Config.WindowRadius
	if start < 0 {
		start = 0
	}
	end := index + m.Config.WindowRadius + 1
	if end > len(sents) {
		end = len(sents)
	}
	return strings.Join(sents[start:end], " ")
}

// pageFor verifies the quote really is a substring of the scored page and
// otherwise falls back to the first page containing it, then to page 1.
func (m *Matcher) pageFor(doc extract.DocumentText, scored int, quote string) int {
	if raw, ok := doc.Page(scored); ok && strings.Contains(raw, quote) {
		return scored
	}
	for _, p := range doc.Pages {
		if strings.Contains(p.Raw, quote) {
			return p.Number
		}
	}
	return 1
}

// Rank orders results by descending score. The sort is stable so ties
// keep their original scan order and repeated runs stay deterministic.
func Rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit]
}
