package match

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

//go:embed stopwords_en.txt
var englishStopwords string

// Resources bundles the read-only language data the matching pipeline
// depends on: a trained sentence tokenizer and a stopword list. It is
// loaded once at process start and shared by all requests.
type Resources struct {
	tokenizer *sentences.DefaultSentenceTokenizer
	stopwords map[string]struct{}
	stemming  bool
}

// LoadResources loads the language resources for the given language.
// Only "english" is supported. When stemming is enabled, term sets are
// reduced to Snowball stems before comparison.
func LoadResources(language string, stemming bool) (*Resources, error) {
	if !strings.EqualFold(language, "english") {
		return nil, fmt.Errorf("%w: unsupported language %q", ErrResourceUnavailable, language)
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: sentence tokenizer: %v", ErrResourceUnavailable, err)
	}

	stopwords := make(map[string]struct{})
	for _, line := range strings.Split(englishStopwords, "\n") {
		word := strings.TrimSpace(line)
		if word != "" {
			stopwords[word] = struct{}{}
		}
	}
	if len(stopwords) == 0 {
		return nil, fmt.Errorf("%w: empty stopword list", ErrResourceUnavailable)
	}

	return &Resources{
		tokenizer: tokenizer,
		stopwords: stopwords,
		stemming:  stemming,
	}, nil
}

// Sentences splits text into sentences using the trained tokenizer.
func (r *Resources) Sentences(text string) []string {
	var out []string
	for _, s := range r.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// TermSet builds the set of distinct normalized word tokens from text
// with stopwords removed.
func (r *Resources) TermSet(text string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, word := range Words(text) {
		if _, stop := r.stopwords[word]; stop {
			continue
		}
		if r.stemming {
			if stemmed, err := snowball.Stem(word, "english", false); err == nil {
				word = stemmed
			}
		}
		terms[word] = struct{}{}
	}
	return terms
}
