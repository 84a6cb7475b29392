package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/citesmart/backend/internal/extract"
)

// CrossRefResolver refines heuristic metadata through the CrossRef works
// API when a DOI was found in the document. Any lookup failure falls back
// to the wrapped resolver's answer, so matching never depends on the
// network being up.
type CrossRefResolver struct {
	Inner   Resolver
	BaseURL string
	Client  *http.Client
	Logger  *logrus.Entry
}

func NewCrossRefResolver(inner Resolver, baseURL string, timeout time.Duration, logger *logrus.Entry) *CrossRefResolver {
	return &CrossRefResolver{
		Inner:   inner,
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

type crossRefWork struct {
	Message struct {
		Author []struct {
			Given  string `json:"given"`
			Family string `json:"family"`
		} `json:"author"`
		Issued struct {
			DateParts [][]int `json:"date-parts"`
		} `json:"issued"`
	} `json:"message"`
}

func (r *CrossRefResolver) Resolve(ctx context.Context, doc extract.DocumentText) Info {
	info := r.Inner.Resolve(ctx, doc)
	if info.DOI == DOINotFound {
		return info
	}

	work, err := r.lookup(ctx, info.DOI)
	if err != nil {
		r.Logger.WithError(err).Warnf("CrossRef lookup failed for DOI %s", info.DOI)
		return info
	}

	if len(work.Message.Author) > 0 {
		a := work.Message.Author[0]
		name := strings.TrimSpace(a.Given + " " + a.Family)
		if name != "" {
			info.Author = name
		}
	}
	if parts := work.Message.Issued.DateParts; len(parts) > 0 && len(parts[0]) > 0 {
		info.Year = strconv.Itoa(parts[0][0])
	}
	return info
}

func (r *CrossRefResolver) lookup(ctx context.Context, doi string) (*crossRefWork, error) {
	endpoint := fmt.Sprintf("%s/works/%s", strings.TrimRight(r.BaseURL, "/"), url.PathEscape(doi))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "citesmart-backend/1.0")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	var work crossRefWork
	if err := json.NewDecoder(resp.Body).Decode(&work); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &work, nil
}
