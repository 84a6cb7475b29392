package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

// PDFExtractor extracts plain text per page from PDF bytes.
type PDFExtractor struct {
	Logger *logrus.Entry
}

func NewPDFExtractor(logger *logrus.Entry) *PDFExtractor {
	return &PDFExtractor{Logger: logger}
}

// Extract decodes the PDF and returns text keyed by 1-based page number.
// Pages that fail extraction or contain no text are skipped. The pdf
// library panics on some malformed inputs, so the whole pass is guarded.
func (e *PDFExtractor) Extract(data []byte) (doc DocumentText, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = DocumentText{}
			err = fmt.Errorf("%w: %v", ErrDecodeFailure, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return DocumentText{}, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.Logger.WithError(err).Warnf("Skipping page %d: extraction failed", i)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		doc.Pages = append(doc.Pages, PageText{Number: i, Raw: text})
	}

	return doc, nil
}
