// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package htmlindex is the HTML tokenizer/link-extractor collaborator:
// given a document's absolute path, it returns the document's outbound
// links and its word tokens in document order. It has no knowledge of
// the trie, graph, or query engine — internal/search absolutizes links
// and folds words into the index.
package htmlindex

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Result holds one document's extracted links and word tokens.
type Result struct {
	Links []string
	Words []string
}

// Parse reads the file at path and extracts its outbound links and its
// visible-text word tokens, in document order. Link targets are returned
// exactly as they appear in href attributes (the caller absolutizes
// them); duplicate hrefs within the same document are deduplicated here
// so the caller never needs to tolerate a repeated link.
func Parse(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("htmlindex: open %s: %w", path, err)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader extracts links and words from an HTML document read from r.
func ParseReader(r io.Reader) (Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Result{}, fmt.Errorf("htmlindex: parse: %w", err)
	}

	var links []string
	seen := map[string]bool{}
	var words []string

	var skipText bool
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if n.Data == "a" {
				for _, attr := range n.Attr {
					if attr.Key == "href" && attr.Val != "" && !seen[attr.Val] && isFileLink(attr.Val) {
						seen[attr.Val] = true
						links = append(links, attr.Val)
					}
				}
			}
			skip := n.Data == "script" || n.Data == "style"
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if skip {
					skipText = true
				}
				walk(c)
				if skip {
					skipText = false
				}
			}
			return
		case html.TextNode:
			if !skipText {
				words = append(words, tokenizeWords(n.Data)...)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return Result{Links: links, Words: words}, nil
}

// isFileLink reports whether href points inside the indexed tree rather
// than at an absolute/external target. A URL scheme ("http:", "mailto:",
// …) or an opaque part (e.g. "mailto:foo@bar", which net/url parses with
// no scheme-relative authority) marks href as pointing outside the tree,
// so it is not a candidate document link.
func isFileLink(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return true
	}
	return u.Scheme == "" && u.Opaque == ""
}

// tokenizeWords splits text on whitespace and on punctuation other than
// the apostrophe (which stays inside a word), discarding empty fragments,
// yielding word tokens in reading order.
func tokenizeWords(text string) []string {
	var words []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}

	for _, r := range text {
		if unicode.IsSpace(r) || (unicode.IsPunct(r) && r != '\'') {
			flush()
			continue
		}
		b.WriteRune(r)
	}
	flush()

	return words
}
