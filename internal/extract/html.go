package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLExtractor extracts the visible text of an HTML document as a single
// page, ignoring script and style content.
type HTMLExtractor struct{}

func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract parses the HTML with the streaming tokenizer and collects text
// nodes. The result is one page numbered 1, or no pages when the document
// has no visible text.
func (e *HTMLExtractor) Extract(data []byte) (DocumentText, error) {
	tokenizer := html.NewTokenizer(bytes.NewReader(data))
	var textBuilder strings.Builder
	inScript := false
	inStyle := false

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				text := strings.Join(strings.Fields(textBuilder.String()), " ")
				if text == "" {
					return DocumentText{}, nil
				}
				return DocumentText{Pages: []PageText{{Number: 1, Raw: text}}}, nil
			}
			return DocumentText{}, fmt.Errorf("%w: %v", ErrDecodeFailure, tokenizer.Err())

		case html.StartTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = true
			case "style":
				inStyle = true
			}

		case html.EndTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			}

		case html.TextToken:
			if !inScript && !inStyle {
				text := strings.TrimSpace(tokenizer.Token().Data)
				if text != "" {
					textBuilder.WriteString(text + " ")
				}
			}
		}
	}
}
