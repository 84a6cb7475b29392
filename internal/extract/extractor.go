package extract

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrDecodeFailure indicates the document bytes could not be parsed at all.
var ErrDecodeFailure = errors.New("document could not be decoded")

// PageText is the raw extracted text of one successfully decoded page.
type PageText struct {
	Number int
	Raw    string
}

// DocumentText holds the extracted pages of one document in page order.
// Pages that failed extraction are absent, not represented as empty entries.
type DocumentText struct {
	Pages []PageText
}

// Len returns the number of decoded pages.
func (d DocumentText) Len() int {
	return len(d.Pages)
}

// Page returns the raw text of the page with the given number.
func (d DocumentText) Page(number int) (string, bool) {
	for _, p := range d.Pages {
		if p.Number == number {
			return p.Raw, true
		}
	}
	return "", false
}

// Extractor turns raw document bytes into page-indexed plain text.
// An empty but valid document yields an empty DocumentText, not an error.
type Extractor interface {
	Extract(data []byte) (DocumentText, error)
}

// IsHTML reports whether a filename looks like an HTML document.
func IsHTML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return true
	}
	return false
}
