package metadata

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/citesmart/backend/internal/extract"
)

// Info is the citation metadata attached to every match. Fields are never
// empty: failed resolution yields the documented placeholders instead.
type Info struct {
	Author string `json:"author"`
	Year   string `json:"year"`
	DOI    string `json:"doi"`
}

const (
	UnknownAuthor = "Unknown Author"
	DOINotFound   = "Not found"
)

// Citation formats the info as "Author (Year)", or just the author when
// no year is known. Never returns an empty string.
func (i Info) Citation() string {
	author := strings.TrimSpace(i.Author)
	if author == "" {
		author = UnknownAuthor
	}
	if year := strings.TrimSpace(i.Year); year != "" {
		return fmt.Sprintf("%s (%s)", author, year)
	}
	return author
}

// Resolver guesses citation metadata for a document. Resolution is best
// effort and never fails: on any problem it returns placeholder values.
type Resolver interface {
	Resolve(ctx context.Context, doc extract.DocumentText) Info
}

var (
	authorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bby\s+([\w\s.,]+?)(?:\d|Abstract|Introduction|$)`),
		regexp.MustCompile(`(?i)\bauthors?[:;\s]+([\w\s.,]+?)(?:\d|Abstract|Introduction|$)`),
		regexp.MustCompile(`(?i)([\w\s.,]+?)\s*\(?\d{4}\)?[,\s]*Department`),
		regexp.MustCompile(`(?i)([\w\s.,]+?)\s*\(?\d{4}\)?[,\s]*University`),
	}
	yearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)copyright\s*(\d{4})`),
		regexp.MustCompile(`(?i)published\s+in\s+(\d{4})`),
		regexp.MustCompile(`\((\d{4})\)`),
		regexp.MustCompile(`\b(\d{4})\b`),
	}
	doiPattern    = regexp.MustCompile(`\b10\.\d{4,9}/[^\s"<>]+`)
	spacePattern  = regexp.MustCompile(`\s+`)
	frontMatter   = 3 // pages scanned for metadata
	yearLow       = 1500
	yearHighSlack = 1 // accept next calendar year (in-press articles)
)

// HeuristicResolver scans the document's front matter with the author,
// year and DOI patterns above. No network access, no external state.
type HeuristicResolver struct{}

func NewHeuristicResolver() *HeuristicResolver {
	return &HeuristicResolver{}
}

func (r *HeuristicResolver) Resolve(_ context.Context, doc extract.DocumentText) Info {
	var sb strings.Builder
	for i, page := range doc.Pages {
		if i >= frontMatter {
			break
		}
		sb.WriteString(page.Raw)
		sb.WriteString("\n")
	}
	text := sb.String()

	info := Info{
		Author: guessAuthor(text),
		Year:   guessYear(text),
		DOI:    guessDOI(text),
	}
	return info
}

func guessAuthor(text string) string {
	for _, pattern := range authorPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		author := spacePattern.ReplaceAllString(m[1], " ")
		author = strings.Trim(author, "., ")
		if author != "" {
			return author
		}
	}
	return UnknownAuthor
}

func guessYear(text string) string {
	maxYear := time.Now().Year() + yearHighSlack
	for _, pattern := range yearPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			year, err := strconv.Atoi(m[1])
			if err == nil && year >= yearLow && year <= maxYear {
				return m[1]
			}
		}
	}
	return strconv.Itoa(time.Now().Year())
}

func guessDOI(text string) string {
	doi := doiPattern.FindString(text)
	if doi == "" {
		return DOINotFound
	}
	return strings.TrimRight(doi, ".,;")
}
