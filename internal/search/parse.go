// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed/atom"
	"github.com/rs/zerolog"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// ParseFeed converts an arXiv Atom response into papers in document order.
// It tries a strict Atom parse first and falls back to a permissive HTML
// parse of the same bytes. When neither locates any entry the result is an
// empty slice.
func ParseFeed(body []byte, logger zerolog.Logger) []types.Paper {
	papers, err := parseAtom(body)
	if err == nil {
		return papers
	}
	logger.Debug().Err(err).Msg("strict Atom parse failed, falling back to HTML parser")

	papers, err = parseHTML(body)
	if err != nil {
		logger.Warn().Err(err).Msg("permissive parse failed, returning no papers")
		return []types.Paper{}
	}
	return papers
}

// parseAtom decodes body as an Atom feed.
func parseAtom(body []byte) ([]types.Paper, error) {
	fp := &atom.Parser{}
	feed, err := fp.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	papers := make([]types.Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		p := types.Paper{
			Title:   normalizeSpace(entry.Title),
			Summary: normalizeSpace(entry.Summary),
			Link:    strings.TrimSpace(entry.ID),
		}
		p.ArxivID = extractArxivID(p.Link)
		for _, a := range entry.Authors {
			if a == nil {
				continue
			}
			p.Authors = append(p.Authors, strings.TrimSpace(a.Name))
		}
		for _, c := range entry.Categories {
			if c != nil && c.Term != "" {
				p.Categories = append(p.Categories, c.Term)
			}
		}
		if entry.PublishedParsed != nil {
			p.Published = *entry.PublishedParsed
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// parseHTML locates entry elements with an HTML5 parser, which accepts
// input a strict XML decoder rejects (bare ampersands, unclosed tags).
func parseHTML(body []byte) ([]types.Paper, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	papers := []types.Paper{}
	doc.Find("entry").Each(func(_ int, entry *goquery.Selection) {
		p := types.Paper{
			Title:   normalizeSpace(entry.Find("title").First().Text()),
			Summary: normalizeSpace(entry.Find("summary").First().Text()),
			Link:    strings.TrimSpace(entry.Find("id").First().Text()),
		}
		p.ArxivID = extractArxivID(p.Link)
		entry.Find("author").Each(func(_ int, author *goquery.Selection) {
			p.Authors = append(p.Authors, strings.TrimSpace(author.Find("name").First().Text()))
		})
		entry.Find("category").Each(func(_ int, c *goquery.Selection) {
			if term, ok := c.Attr("term"); ok && term != "" {
				p.Categories = append(p.Categories, term)
			}
		})
		papers = append(papers, p)
	})
	return papers, nil
}
