package metadata_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/citesmart/backend/internal/extract"
	"github.com/citesmart/backend/internal/metadata"
)

type stubResolver struct {
	info metadata.Info
}

func (s stubResolver) Resolve(_ context.Context, _ extract.DocumentText) metadata.Info {
	return s.info
}

func newCrossRef(inner metadata.Resolver, baseURL string) *metadata.CrossRefResolver {
	return metadata.NewCrossRefResolver(inner, baseURL, 2*time.Second,
		logrus.New().WithField("test", "crossref"))
}

func TestCrossRefRefinesMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/works/10.1234%2Fabcd", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":{"author":[{"given":"Jane","family":"Doe"}],"issued":{"date-parts":[[2020,3]]}}}`))
	}))
	defer server.Close()

	inner := stubResolver{info: metadata.Info{Author: metadata.UnknownAuthor, Year: "1999", DOI: "10.1234/abcd"}}
	info := newCrossRef(inner, server.URL).Resolve(context.Background(), extract.DocumentText{})

	assert.Equal(t, "Jane Doe", info.Author)
	assert.Equal(t, "2020", info.Year)
	assert.Equal(t, "10.1234/abcd", info.DOI)
}

func TestCrossRefFallsBackOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	inner := stubResolver{info: metadata.Info{Author: "Smith", Year: "1999", DOI: "10.1/x"}}
	info := newCrossRef(inner, server.URL).Resolve(context.Background(), extract.DocumentText{})

	assert.Equal(t, inner.info, info)
}

func TestCrossRefSkipsLookupWithoutDOI(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	inner := stubResolver{info: metadata.Info{Author: "Smith", Year: "1999", DOI: metadata.DOINotFound}}
	info := newCrossRef(inner, server.URL).Resolve(context.Background(), extract.DocumentText{})

	assert.Equal(t, inner.info, info)
	assert.Equal(t, 0, requests)
}
