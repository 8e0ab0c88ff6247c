package extract

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultContentClass marks the readable body text in the source HTML.
const DefaultContentClass = "readable-text"

// ErrNoContent is returned when no element carries the content class. Falling
// back to the whole document would pull navigation and boilerplate into the
// conversion, so the caller must be told extraction found nothing.
var ErrNoContent = errors.New("no readable content found")

// ReadableContent returns the outer HTML of every element carrying the given
// content class, in document order. Goquery tolerates malformed markup, so
// the only failure mode is an input with no marked content at all.
func ReadableContent(htmlText, contentClass string) ([]string, error) {
	if strings.TrimSpace(htmlText) == "" {
		return nil, ErrNoContent
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(contentClass) == "" {
		contentClass = DefaultContentClass
	}

	parts := []string{}
	doc.Find("." + contentClass).Each(func(_ int, s *goquery.Selection) {
		h, err := goquery.OuterHtml(s)
		if err != nil {
			return
		}
		if strings.TrimSpace(h) != "" {
			parts = append(parts, h)
		}
	})

	if len(parts) == 0 {
		return nil, ErrNoContent
	}
	return parts, nil
}
