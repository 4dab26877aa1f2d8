package wordlist

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/at-ishikawa/letterquiz/internal/quiz"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// parseHTML reads glossaries written as <dl> lists (<dt> word, <dd> meaning)
// and as tables whose rows have the word and the meaning in their first two cells.
// Header rows made of <th> cells are skipped.
func parseHTML(content []byte) ([]quiz.Entry, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("html.Parse() > %w", err)
	}

	var entries []quiz.Entry
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Dl:
				entries = append(entries, definitionListEntries(n)...)
				return
			case atom.Tr:
				if entry, ok := tableRowEntry(n); ok {
					entries = append(entries, entry)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return entries, nil
}

func definitionListEntries(dl *html.Node) []quiz.Entry {
	var entries []quiz.Entry
	var current *quiz.Entry
	for c := dl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Dt:
			if current != nil {
				entries = append(entries, *current)
			}
			current = &quiz.Entry{Word: textContent(c)}
		case atom.Dd:
			if current == nil {
				continue
			}
			meaning := textContent(c)
			if current.Meaning != "" {
				meaning = current.Meaning + "; " + meaning
			}
			current.Meaning = meaning
			current.HasMeaning = meaning != ""
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

func tableRowEntry(tr *html.Node) (quiz.Entry, bool) {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.DataAtom == atom.Th {
			return quiz.Entry{}, false
		}
		if c.DataAtom == atom.Td {
			cells = append(cells, textContent(c))
		}
	}
	if len(cells) == 0 || cells[0] == "" {
		return quiz.Entry{}, false
	}

	entry := quiz.Entry{Word: cells[0]}
	if len(cells) > 1 {
		entry.Meaning = cells[1]
		entry.HasMeaning = cells[1] != ""
	}
	return entry, true
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(sb.String(), " "))
}
