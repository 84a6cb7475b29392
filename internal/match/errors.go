package match

import "errors"

var (
	// ErrResourceUnavailable indicates the stopword list or sentence
	// tokenizer data could not be loaded. Operational, not a user error.
	ErrResourceUnavailable = errors.New("language resources unavailable")

	// ErrEmptyQuery indicates the search query was empty or whitespace.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrNoMeaningfulTerms indicates the query reduced to nothing after
	// normalization and stopword removal.
	ErrNoMeaningfulTerms = errors.New("query contains no meaningful terms")
)
