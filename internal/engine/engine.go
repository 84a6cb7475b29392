package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/citesmart/backend/internal/config"
	"github.com/citesmart/backend/internal/extract"
	"github.com/citesmart/backend/internal/match"
	"github.com/citesmart/backend/internal/metadata"
	"github.com/citesmart/backend/internal/storage"
)

// Kind classifies a failed request for the transport layer.
type Kind string

const (
	KindDecodeFailure       Kind = "decode_failure"
	KindNoExtractableText   Kind = "no_extractable_text"
	KindEmptyQuery          Kind = "empty_query"
	KindNoMeaningfulTerms   Kind = "no_meaningful_terms"
	KindResourceUnavailable Kind = "resource_unavailable"
	KindInternal            Kind = "internal"
)

// RequestError is a fatal, classified request failure. Requests fail as a
// whole: there is no partial result alongside a RequestError.
type RequestError struct {
	Kind Kind
	Err  error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Request is one quote search over one uploaded document.
type Request struct {
	Filename string
	Data     []byte
	Query    string
}

// Response carries the ranked matches. An empty Results list is a valid
// outcome, distinct from any error.
type Response struct {
	Query    string         `json:"query"`
	Filename string         `json:"filename"`
	Results  []match.Result `json:"results"`
}

// Engine orchestrates the matching pipeline: validate, extract, resolve
// metadata, match, rank. All fields are read-only after construction, so
// concurrent requests share no mutable state.
type Engine struct {
	Config   *config.Config
	Logger   *logrus.Entry
	PDF      extract.Extractor
	HTML     extract.Extractor
	Matcher  *match.Matcher
	Resolver metadata.Resolver
	Store    *storage.DocumentStore
}

func NewEngine(cfg *config.Config, logger *logrus.Entry, matcher *match.Matcher, resolver metadata.Resolver, store *storage.DocumentStore) *Engine {
	return &Engine{
		Config:   cfg,
		Logger:   logger,
		PDF:      extract.NewPDFExtractor(logger),
		HTML:     extract.NewHTMLExtractor(),
		Matcher:  matcher,
		Resolver: resolver,
		Store:    store,
	}
}

// Match runs one request through the pipeline and returns either the full
// ranked result list or a classified error, never both.
func (e *Engine) Match(ctx context.Context, req Request) (*Response, *RequestError) {
	log := e.Logger.WithField("request_id", uuid.NewString())

	if len(req.Data) == 0 {
		return nil, &RequestError{Kind: KindDecodeFailure, Err: errors.New("no document bytes provided")}
	}

	stored := e.persist(req, log)

	log.Infof("Extracting text from %q (%d bytes)", req.Filename, len(req.Data))
	doc, err := e.extractorFor(req.Filename).Extract(req.Data)
	if err != nil {
		log.WithError(err).Warn("Document decoding failed")
		return nil, &RequestError{Kind: KindDecodeFailure, Err: err}
	}
	if doc.Len() == 0 {
		return nil, &RequestError{Kind: KindNoExtractableText, Err: errors.New("no extractable text; try a text-based document")}
	}

	info := e.Resolver.Resolve(ctx, doc)
	log.Infof("Resolved citation metadata: author=%q year=%s doi=%s", info.Author, info.Year, info.DOI)

	results, skips, err := e.Matcher.Find(doc, req.Query, info.Citation())
	if err != nil {
		return nil, classify(err)
	}
	for _, skip := range skips {
		log.Warnf("Dropped candidate on page %d (sentence %d): %s", skip.Page, skip.Sentence, skip.Reason)
	}

	log.Infof("Found %d matching quotes across %d pages", len(results), doc.Len())
	if results == nil {
		results = []match.Result{}
	}

	return &Response{
		Query:    req.Query,
		Filename: stored,
		Results:  results,
	}, nil
}

// persist stores the upload for later retrieval. Storage trouble is not
// fatal to the search itself.
func (e *Engine) persist(req Request, log *logrus.Entry) string {
	stored, err := e.Store.Save(req.Filename, req.Data)
	if err != nil {
		log.WithError(err).Warn("Failed to store uploaded document")
		return ""
	}
	return stored
}

func (e *Engine) extractorFor(filename string) extract.Extractor {
	if extract.IsHTML(filename) {
		return e.HTML
	}
	return e.PDF
}

func classify(err error) *RequestError {
	switch {
	case errors.Is(err, match.ErrEmptyQuery):
		return &RequestError{Kind: KindEmptyQuery, Err: err}
	case errors.Is(err, match.ErrNoMeaningfulTerms):
		return &RequestError{Kind: KindNoMeaningfulTerms, Err: err}
	case errors.Is(err, match.ErrResourceUnavailable):
		return &RequestError{Kind: KindResourceUnavailable, Err: err}
	default:
		return &RequestError{Kind: KindInternal, Err: err}
	}
}
